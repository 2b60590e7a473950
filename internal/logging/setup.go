package logging

import (
	"io"
	"log/slog"
	"os"

	console "github.com/phsym/console-slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where log records go.
//
// In debug mode records are pretty-printed to Console (stderr when nil)
// at debug level with source locations. Otherwise they are written as
// JSON at info level to a size-rotated file at FilePath.
type Options struct {
	Debug    bool
	FilePath string
	Console  io.Writer
}

// NewHandler builds the slog.Handler described by opts. The returned
// closer must be called on shutdown to flush the rotating file; it is a
// no-op in debug mode.
func NewHandler(opts Options) (slog.Handler, io.Closer) {
	if opts.Debug {
		w := opts.Console
		if w == nil {
			w = os.Stderr
		}
		return console.NewHandler(w, &console.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		}), nopCloser{}
	}

	logFile := &lumberjack.Logger{
		Filename: opts.FilePath,
		MaxSize:  100,
		MaxAge:   31,
		Compress: true,
	}
	return slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}), logFile
}

// Setup builds the handler, installs it as the slog default and returns
// the Logger wrapping it.
func Setup(opts Options) (*SlogLogger, io.Closer) {
	h, closer := NewHandler(opts)
	l := slog.New(h)
	slog.SetDefault(l)
	return NewSlogLogger(l), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
