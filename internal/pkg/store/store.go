package store

import (
	"context"
	"time"

	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	ReplaceParticipations(ctx context.Context, programme domain.Programme, rows []domain.ParticipationRecord) error
	ReplaceProjects(ctx context.Context, programme domain.Programme, rows []domain.ProjectRecord) error
	ListParticipations(ctx context.Context) ([]domain.ParticipationRecord, error)
	ListProjects(ctx context.Context) ([]domain.ProjectRecord, error)

	GetMarker(ctx context.Context, programme domain.Programme) (*domain.DatasetMarker, error)
	UpsertMarker(ctx context.Context, programme domain.Programme, pubDate time.Time) error

	InsertSummaryRun(ctx context.Context, run *domain.SummaryRun) error
	ListSummaryRuns(ctx context.Context, limit uint64) ([]*domain.SummaryRun, error)

	ReplaceCalls(ctx context.Context, rows []domain.CallRow) error
	ListCalls(ctx context.Context) ([]domain.CallRow, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
