package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
)

const (
	tableParticipations = "participations"
	tableProjects       = "projects"
	tableMarkers        = "dataset_markers"
	tableSummaryRuns    = "summary_runs"
	tableCalls          = "calls"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
