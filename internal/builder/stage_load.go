package builder

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/wikigen/internal/content"
	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/function"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/markdown"
	"git.home.luguber.info/inful/wikigen/internal/record"
	"git.home.luguber.info/inful/wikigen/internal/render"
	"git.home.luguber.info/inful/wikigen/internal/site"
	"git.home.luguber.info/inful/wikigen/internal/version"
)

// stageLoadRecords prepares the session services and loads every record:
// articles, functions, elements, the wiki version and the navigation tree.
func stageLoadRecords(_ context.Context, s *Session) error {
	if err := s.prepare(); err != nil {
		return err
	}
	cfg := s.Config

	loader := content.NewLoader(s.records, s.markup, cfg.Root)
	s.Articles = content.NewArticles(cfg.Paths.Articles, s.discovery)
	files, err := s.discovery.Records(cfg.Paths.Articles)
	if err != nil {
		return err
	}
	for _, f := range files {
		a, err := loader.Article(f)
		if err != nil {
			return err
		}
		s.Articles.Add(a)
	}
	s.Report.Articles = len(files)

	if files, err = s.discovery.Records(cfg.Paths.Functions); err != nil {
		return err
	}
	for _, f := range files {
		v, err := s.records.LoadFunction(f)
		if err != nil {
			return err
		}
		s.functionRecords = append(s.functionRecords, functionRecord{path: f, variants: v})
	}

	if files, err = s.discovery.Records(cfg.Paths.Elements); err != nil {
		return err
	}
	for _, f := range files {
		e, err := loader.Element(f)
		if err != nil {
			return err
		}
		s.Elements = append(s.Elements, e)
	}
	s.Report.Elements = len(s.Elements)

	if s.WikiVersion, err = version.ReadWikiVersion(cfg.Paths.Version); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryReference, "wiki version file not readable").
			Fatal().WithContext("path", cfg.Paths.Version).Build()
	}
	if s.Navigation, err = s.records.LoadNavigation(cfg.NavigationFile()); err != nil {
		return err
	}

	slog.Info("Loaded records",
		logfields.BuildID(s.ID),
		slog.Int("articles", s.Report.Articles),
		slog.Int("functions", len(s.functionRecords)),
		slog.Int("elements", s.Report.Elements),
		slog.String("wiki_version", s.WikiVersion))
	return nil
}

func (s *Session) prepare() error {
	cfg := s.Config
	disc, err := record.NewDiscovery(cfg.Root, cfg.Paths.IgnoreFile)
	if err != nil {
		return err
	}
	pages, err := render.New(cfg.Paths.Resources)
	if err != nil {
		return err
	}
	s.discovery = disc
	s.records = record.NewLoader()
	s.markup = markdown.NewRenderer()
	s.pages = pages
	s.Report.Templates = pages.Sources()
	s.writer = site.NewWriter(cfg.Output.Directory)
	s.assets = function.NewAssetResolver(cfg.Root, s.writer.NewImageDir(cfg.Output.ImagesDir), cfg.Output.ImagesDir)
	return nil
}
