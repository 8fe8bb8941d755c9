package controller

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
	"github.com/tangiwai/cordis-summary/internal/pkg/countries"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
)

func (c *Controller) GetSummary(ctx echo.Context) error {
	preset := ctx.QueryParams().Get("preset")
	var codes []string
	if raw := ctx.QueryParams().Get("countries"); raw != "" {
		codes = strings.Split(raw, ",")
	}

	res, _, err := c.buildSummary(ctx.Request().Context(), preset, codes)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) ListSummaryRuns(ctx echo.Context) error {
	limit := uint64(20)
	if raw := ctx.QueryParams().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return constants.ErrBadRequest
		}
		limit = parsed
	}

	runs, err := c.store.ListSummaryRuns(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, runs)
}

// buildSummary resolves the country set, loads the cached relations, runs the
// pipeline and records the run. The resolved set is returned for callers that
// name output after it.
func (c *Controller) buildSummary(ctx context.Context, preset string, codes []string) (*domain.SummaryResult, []string, error) {
	set, err := c.resolveCountrySet(preset, codes)
	if err != nil {
		return nil, nil, err
	}

	participations, projects, err := c.cordis.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("cordis.Load: %w", err)
	}

	res := c.summarizer.Summarize(ctx, participations, projects, set)

	run := &domain.SummaryRun{
		ID:               uuid.NewString(),
		Countries:        strings.Join(set, ","),
		DetailRows:       len(res.Detail),
		OrganisationRows: len(res.Organisations),
		ProjectRows:      len(res.Projects),
		CountryRows:      len(res.Countries),
		CreatedAt:        time.Now().UTC(),
	}
	if err := c.store.InsertSummaryRun(ctx, run); err != nil {
		// The run record is audit metadata; a failed insert must not cost
		// the caller their result.
		logger.Warnf(ctx, "store.InsertSummaryRun: %v", err)
	}

	return res, set, nil
}

// resolveCountrySet turns a preset name or explicit code list into the codes
// the data uses. Caller codes go through Translate so GB reaches the data as
// UK. Presets are taken as configured, without translation.
func (c *Controller) resolveCountrySet(preset string, codes []string) ([]string, error) {
	if preset != "" {
		set, ok := c.countrySets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q: %w", preset, constants.ErrBadRequest)
		}
		return set, nil
	}

	if len(codes) == 0 {
		return nil, fmt.Errorf("no countries given: %w", constants.ErrBadRequest)
	}

	set := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		set = append(set, countries.Translate(code))
	}
	return set, nil
}
