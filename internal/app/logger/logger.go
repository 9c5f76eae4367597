// Package logger строит zap-логгер приложения.
package logger

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aseptimu/link-shortener/internal/app/config"
)

// New создаёт логгер, пишущий в stderr, чтобы не смешиваться с меню в stdout.
// Каждая запись несёт run_id: несколько запусков могут работать с одним
// файлом ссылок одновременно.
func New(cfg *config.ConfigType, opts ...zap.Option) (*zap.SugaredLogger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if cfg.LogEncoding == config.EncodingJSON {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	zapConfig := zap.Config{
		Level:            level,
		Development:      cfg.LogEncoding != config.EncodingJSON,
		Encoding:         cfg.LogEncoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	log, err := zapConfig.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.Sugar().With("run_id", uuid.NewString()), nil
}
