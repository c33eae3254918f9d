package main

import (
	"github.com/ccparagoncorp/customercare-web-sub001/internal/app"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/config"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
