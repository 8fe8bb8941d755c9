package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/store/xpgx"
)

var markerColumns = []string{"programme", "pub_date", "updated_at"}

// GetMarker returns the stored publication date for a programme's cached
// dump, or ErrDBNotFound when the programme has never been fetched.
func (s *store) GetMarker(ctx context.Context, programme domain.Programme) (*domain.DatasetMarker, error) {
	query := builder().Select(markerColumns...).
		From(tableMarkers).
		Where(sq.Eq{"programme": programme})

	selected, err := xpgx.Get[domain.DatasetMarker](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) UpsertMarker(ctx context.Context, programme domain.Programme, pubDate time.Time) error {
	query := builder().Insert(tableMarkers).
		Columns("programme", "pub_date").
		Values(programme, pubDate).
		Suffix(`on conflict (programme) do update set pub_date=excluded.pub_date, updated_at=now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
