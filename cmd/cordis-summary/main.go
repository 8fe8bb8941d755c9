package main

import (
	"context"
	"flag"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"
	"github.com/tangiwai/cordis-summary/internal/api"
	"github.com/tangiwai/cordis-summary/internal/pkg/config"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
	"github.com/tangiwai/cordis-summary/internal/pkg/store"
	"github.com/tangiwai/cordis-summary/internal/pkg/store/xpgx"
	"go.uber.org/zap"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "optional yaml config path")
	flag.Parse()

	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zl)
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()

	if err := config.Load(configPath); err != nil {
		logger.Fatal(ctx, err)
	}

	db, err := pgxpool.New(ctx, viper.GetString(constants.ViperPgDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	pool := xpgx.New(db)
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	svc.Serve(viper.GetString(constants.ViperHTTPAddr))
}
