// Package logger builds the zap logger used by the demo site.
//
// Level "debug" selects zap's development config (ISO8601 timestamps,
// caller info); anything else selects the production config. Format is
// "console" or "json".
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("server started")
//
//	// In a request handler:
//	l := logger.WithRequestID(log, c)
package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding: console or json.
	Format string `mapstructure:"format" default:"console"`
}

// RequestIDKey is the echo context key holding the request id.
const RequestIDKey = "request_id"

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config
	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		config.Level = level
	}

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRequestID returns l with the request_id field set from the echo
// context, if the request id middleware stored one.
func WithRequestID(l *zap.Logger, c echo.Context) *zap.Logger {
	if id, ok := c.Get(RequestIDKey).(string); ok && id != "" {
		return l.With(zap.String(RequestIDKey, id))
	}
	return l
}
