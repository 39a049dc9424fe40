package collision

import (
	"log"
	"sync/atomic"
)

// DefaultLogger wraps a stdlib *log.Logger and latches the velocity
// overflow warning so it fires at most once per instance.
//
// spec.md's Design Notes offer a process-wide latch (the source's
// choice) as equally conformant to a per-instance one; this
// implementation chooses per-instance so that independent
// CollisionIndex/Logger pairs (as in this package's own tests) never
// leak suppression state across each other.
type DefaultLogger struct {
	logger *log.Logger
	warned atomic.Bool
}

// NewDefaultLogger wraps logger. If logger is nil, log.Default() is used.
func NewDefaultLogger(logger *log.Logger) *DefaultLogger {
	if logger == nil {
		logger = log.Default()
	}
	return &DefaultLogger{logger: logger}
}

// WarnVelocityOverflow implements Logger. Only the first call per
// instance is written; subsequent calls are silent.
func (l *DefaultLogger) WarnVelocityOverflow(fromX, fromY, toX, toY, clampedLength float64) {
	if !l.warned.CompareAndSwap(false, true) {
		return
	}
	l.logger.Printf(
		"collision: segment (%.1f,%.1f)-(%.1f,%.1f) exceeds MAX_VELOCITY, clamped to length %.1f",
		fromX, fromY, toX, toY, clampedLength,
	)
}

// noopLogger discards the warning; used when no Logger is configured.
type noopLogger struct{}

func (noopLogger) WarnVelocityOverflow(float64, float64, float64, float64, float64) {}
