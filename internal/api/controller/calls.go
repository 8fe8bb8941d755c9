package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tangiwai/cordis-summary/internal/domain/dto"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
)

func (c *Controller) GetCalls(ctx echo.Context) error {
	rows, err := c.calls.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetCallsCalendar(ctx echo.Context) error {
	year := time.Now().UTC().Year()
	if raw := ctx.QueryParams().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return constants.ErrBadRequest
		}
		year = parsed
	}

	entries, err := c.calls.Calendar(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, entries)
}

func (c *Controller) RefreshCalls(ctx echo.Context) error {
	var req dto.CallsRefreshRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	newRows, err := c.calls.Refresh(ctx.Request().Context(), req.NewOnly)
	if err != nil {
		return err
	}

	rows, err := c.calls.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.CallsRefreshResponse{
		Total:    len(rows),
		NewCalls: newRows,
	})
}
