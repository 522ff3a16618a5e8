package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/simp-lee/logger"
)

// SetupLogger creates a *logger.Logger from the provided LogConfig, sets it
// as the global default via slog.SetDefault, and returns it. The caller is
// responsible for calling Close() on the returned logger.
func SetupLogger(cfg *LogConfig) (*logger.Logger, error) {
	if cfg == nil {
		return nil, errors.New("log config is nil")
	}

	var format logger.OutputFormat
	switch strings.ToLower(cfg.Format) {
	case "json":
		format = logger.FormatJSON
	case "text":
		format = logger.FormatText
	default:
		format = logger.FormatCustom
	}

	// Color is on unless explicitly disabled.
	colorEnabled := true
	if cfg.Color != nil {
		colorEnabled = *cfg.Color
	}

	opts := []logger.Option{
		logger.WithLevel(parseLevel(cfg.Level)),
		logger.WithMiddleware(logger.ContextMiddleware()),
		logger.WithConsoleFormat(format),
		logger.WithConsoleColor(colorEnabled),
	}

	if cfg.FilePath != "" {
		opts = append(opts, logger.WithFilePath(cfg.FilePath))
		opts = append(opts, logger.WithFileFormat(format))

		if cfg.MaxSizeMB > 0 {
			opts = append(opts, logger.WithMaxSizeMB(cfg.MaxSizeMB))
		}
		if cfg.RetentionDays > 0 {
			opts = append(opts, logger.WithRetentionDays(cfg.RetentionDays))
		}
		if cfg.MaxBackups > 0 {
			opts = append(opts, logger.WithMaxBackups(cfg.MaxBackups))
		}
		if cfg.CompressRotated != nil {
			opts = append(opts, logger.WithCompressRotated(*cfg.CompressRotated))
		}
	}

	log, err := logger.New(opts...)
	if err != nil {
		return nil, err
	}

	log.SetDefault()
	return log, nil
}

// parseLevel converts a level name to the corresponding slog.Level.
// Unrecognized values default to slog.LevelInfo.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
