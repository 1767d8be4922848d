// Package diag carries structured build diagnostics — state counts and
// recorded conflicts — through a package-level zap logger. Library
// use is silent by default (the logger discards Debug-level entries unless a
// caller opts in).
package diag

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

func init() {
	logger = zap.NewNop().Sugar()
}

// SetLogger installs a caller-provided zap logger, e.g. a production logger
// configured at Debug level to observe build internals.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l.Sugar()
}

// SetDebug installs a development logger at Debug level — convenient for
// tests and the CLI front end.
func SetDebug() {
	l, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	SetLogger(l)
}

// L returns the current diagnostics logger.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
