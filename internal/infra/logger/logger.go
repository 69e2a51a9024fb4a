package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Dir is the per-workspace log directory, relative to the root.
var Dir = filepath.Join(".peopletable", "logs")

const fileName = "peopletable.log"

type Config struct {
	Root  string
	Debug bool

	// Output replaces the log file when set; Setup then creates nothing on disk.
	Output io.Writer
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup installs the process-wide logger and returns its cleanup func. A log
// file left open by an earlier Setup is closed.
// On failure the logger stays a discard logger so callers can ignore the error.
func Setup(cfg Config) (func() error, error) {
	out := cfg.Output
	var (
		f    *os.File
		path string
	)

	if out == nil {
		root := filepath.Clean(cfg.Root)
		if root == "" {
			root = "."
		}

		dir := filepath.Join(root, Dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			reset()
			return nil, err
		}

		path = filepath.Join(dir, fileName)
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			reset()
			return nil, err
		}
		out = f
	}

	l := slog.New(newHandler(out, cfg.Debug))

	mu.Lock()
	prev := logFile
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}

	return cleanup, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

// L returns the current process-wide logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the log file path, empty when logging to a custom writer or discarding.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}
