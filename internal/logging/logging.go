package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levels = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

// LevelOf maps a level name to a zap level, defaulting to info.
func LevelOf(name string) zapcore.Level {
	if lvl, ok := levels[name]; ok {
		return lvl
	}
	return zapcore.InfoLevel
}

// Options configures New.
type Options struct {
	Level string
	// Path is the JSON log file. Empty disables file logging.
	Path string
	// Pane receives info and above as plain lines for the log box.
	Pane zapcore.WriteSyncer
}

// New builds the application logger. The returned close func flushes and
// closes the log file.
func New(opts Options) (*zap.SugaredLogger, func() error, error) {
	var cores []zapcore.Core
	closeFn := func() error { return nil }

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zap.NewAtomicLevelAt(LevelOf(opts.Level))))
		closeFn = f.Close
	}

	if opts.Pane != nil {
		cores = append(cores, zapcore.NewCore(paneEncoder(), opts.Pane, zap.NewAtomicLevelAt(zapcore.InfoLevel)))
	}

	if len(cores) == 0 {
		return zap.NewNop().Sugar(), closeFn, nil
	}
	logger := zap.New(zapcore.NewTee(cores...))
	return logger.Sugar(), func() error {
		_ = logger.Sync()
		return closeFn()
	}, nil
}

// paneEncoder prints "15:04:05 message key=value".
func paneEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "T",
		MessageKey:       "M",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	})
}
