package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
	"github.com/tangiwai/cordis-summary/internal/pkg/store/xpgx"
)

var projectColumns = []string{
	"project_id", "acronym", "title", "funding_scheme", "sub_call",
	"signature_date", "start_date", "end_date", "framework_programme",
}

func (s *store) ReplaceProjects(ctx context.Context, programme domain.Programme, rows []domain.ProjectRecord) error {
	del := builder().Delete(tableProjects).
		Where(sq.Eq{"framework_programme": programme})
	if _, err := s.pool.Execx(ctx, del); err != nil {
		logger.Errorf(ctx, "delete projects, programme-%s: %s", programme, err.Error())
		return fmt.Errorf("delete projects: %w", err)
	}

	for start := 0; start < len(rows); start += insertChunk {
		end := start + insertChunk
		if end > len(rows) {
			end = len(rows)
		}

		query := builder().Insert(tableProjects).Columns(projectColumns...)
		for _, r := range rows[start:end] {
			query = query.Values(
				r.ProjectID, r.Acronym, r.Title, r.FundingScheme, r.SubCall,
				r.SignatureDate, r.StartDate, r.EndDate, r.FrameworkProgramme,
			)
		}

		if _, err := s.pool.Execx(ctx, query); err != nil {
			logger.Errorf(ctx, "insert projects, programme-%s: %s", programme, err.Error())
			return fmt.Errorf("insert projects: %w", err)
		}
	}

	return nil
}

func (s *store) ListProjects(ctx context.Context) ([]domain.ProjectRecord, error) {
	query := builder().Select(projectColumns...).
		From(tableProjects).
		OrderBy("framework_programme, id")

	selected, err := xpgx.Select[domain.ProjectRecord](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
