package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
	"github.com/tangiwai/cordis-summary/internal/pkg/store/xpgx"
)

var participationColumns = []string{
	"organisation_id", "organisation_name", "short_name", "country", "activity_type",
	"sme", "role", "order_in_project", "ec_contribution", "net_ec_contribution",
	"total_cost", "project_id", "acronym", "framework_programme",
}

// insertChunk keeps each multi-row insert under the postgres parameter cap.
const insertChunk = 1000

// ReplaceParticipations swaps the cached participation rows for one programme.
// The cache mirrors the latest extracted dump, so replace rather than merge.
func (s *store) ReplaceParticipations(ctx context.Context, programme domain.Programme, rows []domain.ParticipationRecord) error {
	del := builder().Delete(tableParticipations).
		Where(sq.Eq{"framework_programme": programme})
	if _, err := s.pool.Execx(ctx, del); err != nil {
		logger.Errorf(ctx, "delete participations, programme-%s: %s", programme, err.Error())
		return fmt.Errorf("delete participations: %w", err)
	}

	for start := 0; start < len(rows); start += insertChunk {
		end := start + insertChunk
		if end > len(rows) {
			end = len(rows)
		}

		query := builder().Insert(tableParticipations).Columns(participationColumns...)
		for _, r := range rows[start:end] {
			query = query.Values(
				r.OrganisationID, r.OrganisationName, r.ShortName, r.Country, r.ActivityType,
				r.SME, r.Role, r.OrderInProject, r.ECContribution, r.NetECContribution,
				r.TotalCost, r.ProjectID, r.Acronym, r.FrameworkProgramme,
			)
		}

		if _, err := s.pool.Execx(ctx, query); err != nil {
			logger.Errorf(ctx, "insert participations, programme-%s: %s", programme, err.Error())
			return fmt.Errorf("insert participations: %w", err)
		}
	}

	return nil
}

// ListParticipations returns every cached participation row across all
// programmes, in the order the dumps were concatenated.
func (s *store) ListParticipations(ctx context.Context) ([]domain.ParticipationRecord, error) {
	query := builder().Select(participationColumns...).
		From(tableParticipations).
		OrderBy("framework_programme, id")

	selected, err := xpgx.Select[domain.ParticipationRecord](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
