package main

import (
	"errors"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/idcardgen/internal/api"
	"github.com/youruser/idcardgen/internal/config"
	"github.com/youruser/idcardgen/internal/controller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.SetupLogger(cfg)

	ctl, err := controller.Build(cfg, logger)
	if err != nil {
		log.Fatalf("build controller: %v", err)
	}
	if !ctl.SpreadsheetEnabled() {
		logger.Info("Excel export is not available; the program still works and manifests will be written as CSV")
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(ctl, logger))

	logger.Info("starting server", slog.String("addr", "http://"+cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
