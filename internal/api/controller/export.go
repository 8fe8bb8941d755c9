package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tangiwai/cordis-summary/internal/domain/dto"
	"github.com/tangiwai/cordis-summary/internal/service/export"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (c *Controller) ExportSummary(ctx echo.Context) error {
	var req dto.SummaryRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	res, set, err := c.buildSummary(ctx.Request().Context(), req.Preset, req.Countries)
	if err != nil {
		return err
	}

	f, err := export.SummaryWorkbook(res)
	if err != nil {
		return fmt.Errorf("export.SummaryWorkbook: %w", err)
	}

	name := req.Preset
	if name == "" {
		name = strings.Join(set, "_")
	}
	return writeWorkbook(ctx, f, fmt.Sprintf("CORDIS_summary_%s.xlsx", name))
}

func (c *Controller) ExportCalls(ctx echo.Context) error {
	rows, err := c.calls.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	f, err := export.CallsWorkbook(rows)
	if err != nil {
		return fmt.Errorf("export.CallsWorkbook: %w", err)
	}

	return writeWorkbook(ctx, f, "HE_calls.xlsx")
}

func writeWorkbook(ctx echo.Context, f *excelize.File, filename string) error {
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response())
}
