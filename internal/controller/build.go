package controller

import (
	"log/slog"

	"github.com/youruser/idcardgen/internal/config"
	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/manifest"
)

// Build wires a controller from configuration: font, compositor and
// manifest writer.
func Build(cfg *config.Config, logger *slog.Logger) (*Controller, error) {
	face, fallback, err := imagepkg.LoadFace(cfg.Card.FontPath, cfg.Card.FontSize)
	if err != nil {
		return nil, err
	}
	if fallback {
		logger.Warn("preferred font unavailable, using built-in font", slog.String("font", cfg.Card.FontPath))
	}

	writer := manifest.NewWriter(!cfg.DisableXLSX, logger)
	if !writer.SpreadsheetEnabled() {
		logger.Info("spreadsheet export unavailable, manifests will be written as CSV")
	}

	compositor := imagepkg.NewCompositor(cfg.Card.Layout(), face)
	return New(compositor, writer, Options{OutputRoot: cfg.OutputRoot}, logger), nil
}
