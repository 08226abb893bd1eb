package observ

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// VerbosityToLevel maps -v counts onto zap levels: 0 warn, 1 info, 2+ debug.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// NewLogger builds a console logger writing to w. Time stamps are omitted so
// that output stays comparable between runs.
func NewLogger(w io.Writer, verbosity int, colored bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if colored {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), VerbosityToLevel(verbosity))
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
