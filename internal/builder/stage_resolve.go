package builder

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/wikigen/internal/function"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
)

func stageResolveFunctions(ctx context.Context, s *Session) error {
	resolver := function.NewResolver(s.markup, s.assets)
	s.Functions = function.NewCatalog()
	for _, rec := range s.functionRecords {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn, err := resolver.Resolve(rec.path, rec.variants)
		if err != nil {
			return err
		}
		s.Functions.Add(fn)
	}
	s.Report.Functions = s.Functions.Len()

	stats := s.assets.Stats()
	for _, p := range stats.Reused {
		s.Report.addOmission(OmissionDuplicateImageName, p, "base name already stored")
	}
	slog.Info("Resolved functions",
		logfields.BuildID(s.ID),
		logfields.Count(s.Functions.Len()),
		slog.Int("images_copied", stats.ImagesCopied),
		slog.Int("images_reused", len(stats.Reused)))
	return nil
}
