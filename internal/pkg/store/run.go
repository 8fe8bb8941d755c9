package store

import (
	"context"

	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/store/xpgx"
)

var summaryRunColumns = []string{
	"id", "countries", "detail_rows", "organisation_rows", "project_rows",
	"country_rows", "created_at",
}

func (s *store) InsertSummaryRun(ctx context.Context, run *domain.SummaryRun) error {
	query := builder().Insert(tableSummaryRuns).
		Columns(summaryRunColumns[:6]...).
		Values(run.ID, run.Countries, run.DetailRows, run.OrganisationRows, run.ProjectRows, run.CountryRows)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListSummaryRuns(ctx context.Context, limit uint64) ([]*domain.SummaryRun, error) {
	query := builder().Select(summaryRunColumns...).
		From(tableSummaryRuns).
		OrderBy("created_at desc").
		Limit(limit)

	selected, err := xpgx.Select[*domain.SummaryRun](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
