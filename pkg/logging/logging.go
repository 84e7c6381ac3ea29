// Package logging builds the zap loggers used by monthgrid commands.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON logger writing to stderr at the given level.
func New(level string) *zap.Logger {
	return zap.New(zapcore.NewCore(encoder(), zapcore.Lock(os.Stderr), parseLevel(level)))
}

// NewFile returns a JSON logger writing to a rotated file. The TUI uses it
// because the terminal belongs to the program.
func NewFile(path, level string) *zap.Logger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	return zap.New(zapcore.NewCore(encoder(), zapcore.AddSync(w), parseLevel(level)))
}

func encoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}
