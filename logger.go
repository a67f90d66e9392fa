package wordart

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/wordart/internal/logging"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logging.Nop())
}

// SetLogger configures the default logger for wordart. Studios created
// afterwards without an explicit logger use it for the font catalog, the
// pipeline and the encoder. By default wordart produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by wordart:
//   - [slog.LevelDebug]: per-frame and per-font detail
//   - [slog.LevelInfo]: job lifecycle, catalog loads
//   - [slog.LevelWarn]: skipped fonts, cleanup failures
//
// Example:
//
//	wordart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(logging.OrNop(l))
}

// Logger returns the current default logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
