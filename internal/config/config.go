package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	imagepkg "github.com/youruser/idcardgen/internal/image"
)

type Config struct {
	OutputRoot  string `env:"IDCARD_OUTPUT_ROOT" envDefault:"."`
	HTTPAddr    string `env:"IDCARD_HTTP_ADDR" envDefault:"127.0.0.1:8080"`
	DisableXLSX bool   `env:"IDCARD_DISABLE_XLSX" envDefault:"false"`
	LogLevel    string `env:"IDCARD_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"IDCARD_LOG_FORMAT" envDefault:"text"`
	Card        CardConfig
}

type CardConfig struct {
	Width       int      `env:"IDCARD_CANVAS_WIDTH" envDefault:"400"`
	Height      int      `env:"IDCARD_CANVAS_HEIGHT" envDefault:"600"`
	ProfileSize int      `env:"IDCARD_PROFILE_SIZE" envDefault:"200"`
	ProfileTop  int      `env:"IDCARD_PROFILE_TOP" envDefault:"50"`
	QRSize      int      `env:"IDCARD_QR_SIZE" envDefault:"100"`
	QRTop       int      `env:"IDCARD_QR_TOP" envDefault:"450"`
	FieldsTop   int      `env:"IDCARD_FIELDS_TOP" envDefault:"300"`
	LinePitch   int      `env:"IDCARD_LINE_PITCH" envDefault:"60"`
	BoxPadding  int      `env:"IDCARD_BOX_PADDING" envDefault:"10"`
	FontPath    string   `env:"IDCARD_FONT_PATH" envDefault:"arial.ttf"`
	FontSize    float64  `env:"IDCARD_FONT_SIZE" envDefault:"20"`
	Labels      []string `env:"IDCARD_LABELS" envDefault:"Field 1:,Field 2:,Field 3:" envSeparator:","`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Card.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c CardConfig) validate() error {
	if len(c.Labels) != 3 {
		return fmt.Errorf("IDCARD_LABELS: want 3 labels, got %d", len(c.Labels))
	}
	for name, v := range map[string]int{
		"IDCARD_CANVAS_WIDTH":  c.Width,
		"IDCARD_CANVAS_HEIGHT": c.Height,
		"IDCARD_PROFILE_SIZE":  c.ProfileSize,
		"IDCARD_QR_SIZE":       c.QRSize,
		"IDCARD_LINE_PITCH":    c.LinePitch,
	} {
		if v <= 0 {
			return fmt.Errorf("%s: must be positive, got %d", name, v)
		}
	}
	return nil
}

// Layout converts the card settings into compositor geometry.
func (c CardConfig) Layout() imagepkg.Layout {
	l := imagepkg.DefaultLayout()
	l.Width = c.Width
	l.Height = c.Height
	l.ProfileSize = c.ProfileSize
	l.ProfileTop = c.ProfileTop
	l.QRSize = c.QRSize
	l.QRTop = c.QRTop
	l.FieldsTop = c.FieldsTop
	l.LinePitch = c.LinePitch
	l.BoxPadding = c.BoxPadding
	copy(l.Labels[:], c.Labels)
	return l
}

// SetupLogger builds the process logger and installs it as the slog default.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
