package builder

import (
	"context"

	"git.home.luguber.info/inful/wikigen/internal/relations"
)

func stageResolveRelations(_ context.Context, s *Session) error {
	report := relations.Resolve(s.Functions.All(), s.Index)
	for _, skip := range report.Skipped {
		s.Report.addOmission(skip.Resolution.Status.String(), skip.Function, skip.Resolution.Tag)
	}
	return nil
}
