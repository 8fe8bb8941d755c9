package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
	"github.com/tangiwai/cordis-summary/internal/api/controller"
	"github.com/tangiwai/cordis-summary/internal/pkg/config"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
	"github.com/tangiwai/cordis-summary/internal/pkg/countries"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
	"github.com/tangiwai/cordis-summary/internal/pkg/store"
	"github.com/tangiwai/cordis-summary/internal/service/calls"
	"github.com/tangiwai/cordis-summary/internal/service/cordis"
	"github.com/tangiwai/cordis-summary/internal/service/summary"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cordisService := cordis.NewService(st, config.Sources(), viper.GetString(constants.ViperDataDir))
	callsService := calls.NewService(st, viper.GetString(constants.ViperGrantsURL),
		config.ClusterNames(), config.ClusterColours())
	summarizer := summary.NewSummarizer(countries.Name, config.OrgProfileBaseURL, config.ProjectBaseURL)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(st, cordisService, callsService, summarizer, config.CountrySets())

	cordisGroup := api.Group("/cordis")
	cordisGroup.POST("/refresh", cntrl.RefreshCordis, svc.AdminMiddleware)

	summaryGroup := api.Group("/summary")
	summaryGroup.GET("", cntrl.GetSummary)
	summaryGroup.POST("/export", cntrl.ExportSummary)
	summaryGroup.GET("/runs", cntrl.ListSummaryRuns)

	callsGroup := api.Group("/calls")
	callsGroup.GET("", cntrl.GetCalls)
	callsGroup.GET("/calendar", cntrl.GetCallsCalendar)
	callsGroup.GET("/export", cntrl.ExportCalls)
	callsGroup.POST("/refresh", cntrl.RefreshCalls, svc.AdminMiddleware)

	return svc, nil
}
