package pkg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const LogTimeFormat = "2006-01-02 15:04:05"

// InitLog opens dest for appending and returns a logger named prefix that
// writes there. The terminal belongs to the UI, so nothing is logged to
// stdout. An empty dest disables logging.
func InitLog(dest, prefix string, debug bool) (*zap.Logger, error) {
	if strings.TrimSpace(dest) == "" {
		return zap.NewNop(), nil
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create log directory")
		}
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(LogTimeFormat)
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(f), level)
	return zap.New(core, zap.AddCaller()).Named(prefix), nil
}
