package store

import (
	"context"
	"fmt"

	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
	"github.com/tangiwai/cordis-summary/internal/pkg/store/xpgx"
)

var callColumns = []string{
	"ccm2_id", "call_year", "cluster_code", "cluster_name", "destination", "dest_code",
	"pub_date", "open_date", "close_date", "stage2_date", "status", "process",
	"action_type", "call_id", "call_title", "topic_id", "topic_title", "fetched_at",
}

// ReplaceCalls swaps the cached calls table for the latest processed feed.
func (s *store) ReplaceCalls(ctx context.Context, rows []domain.CallRow) error {
	del := builder().Delete(tableCalls)
	if _, err := s.pool.Execx(ctx, del); err != nil {
		logger.Errorf(ctx, "delete calls: %s", err.Error())
		return fmt.Errorf("delete calls: %w", err)
	}

	for start := 0; start < len(rows); start += insertChunk {
		end := start + insertChunk
		if end > len(rows) {
			end = len(rows)
		}

		query := builder().Insert(tableCalls).Columns(callColumns...)
		for _, r := range rows[start:end] {
			query = query.Values(
				r.CCM2ID, r.CallYear, r.ClusterCode, r.ClusterName, r.Destination, r.DestCode,
				r.PubDate, r.OpenDate, r.CloseDate, r.Stage2Date, r.Status, r.Process,
				r.ActionType, r.CallID, r.CallTitle, r.TopicID, r.TopicTitle, r.FetchedAt,
			)
		}

		if _, err := s.pool.Execx(ctx, query); err != nil {
			logger.Errorf(ctx, "insert calls: %s", err.Error())
			return fmt.Errorf("insert calls: %w", err)
		}
	}

	return nil
}

func (s *store) ListCalls(ctx context.Context) ([]domain.CallRow, error) {
	query := builder().Select(callColumns...).
		From(tableCalls).
		OrderBy("call_year, call_id, topic_id")

	selected, err := xpgx.Select[domain.CallRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
