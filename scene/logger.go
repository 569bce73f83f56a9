package scene

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger writing to stderr at the configured level
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if l.Level != "" {
		parsed, err := zapcore.ParseLevel(l.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLogging, err)
		}
		level = parsed
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	return config.Build()
}
