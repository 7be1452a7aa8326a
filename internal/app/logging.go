package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/incsel/internal/config"
)

// ParseLogLevel parses a level name. Unknown names map to info.
func ParseLogLevel(s string) zapcore.Level {
	switch s {
	case "debug", "DEBUG":
		return zapcore.DebugLevel
	case "info", "INFO":
		return zapcore.InfoLevel
	case "warn", "WARN", "warning", "WARNING":
		return zapcore.WarnLevel
	case "error", "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logging is the application logger and the handle used to change its
// level on reload.
type Logging struct {
	Logger *zap.Logger
	Level  zap.AtomicLevel

	close func()
}

// NewLogger builds a console logger from the logging settings. An empty
// file logs to stderr.
func NewLogger(cfg config.LoggingSettings) (*Logging, error) {
	path := cfg.File
	if path == "" {
		path = "stderr"
	}
	sink, closeSink, err := zap.Open(path)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.NewAtomicLevelAt(ParseLogLevel(cfg.Level))
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, level)

	return &Logging{
		Logger: zap.New(core).Named("incsel"),
		Level:  level,
		close:  closeSink,
	}, nil
}

// SetLevel changes the level by name.
func (l *Logging) SetLevel(name string) {
	l.Level.SetLevel(ParseLogLevel(name))
}

// Close flushes the logger and releases the sink.
func (l *Logging) Close() {
	_ = l.Logger.Sync()
	if l.close != nil {
		l.close()
	}
}
