package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tangiwai/cordis-summary/internal/domain/dto"
	"github.com/tangiwai/cordis-summary/internal/service/cordis"
)

func (c *Controller) RefreshCordis(ctx echo.Context) error {
	var req dto.CordisRefreshRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	newData, err := c.cordis.Refresh(ctx.Request().Context(), cordis.RefreshOpts{
		Local:   req.Local,
		Force:   req.Force,
		NewOnly: req.NewOnly,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.CordisRefreshResponse{NewData: newData})
}
