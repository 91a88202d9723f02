// Package diagnostics is an off-by-default logging sink for the handful of
// operations (Polyfill, H3SetToLinkedGeo) expensive or surprising enough to
// be worth tracing without forcing every caller to pay for a logger. The
// library stays pure and silent until a caller opts in with Enable.
package diagnostics

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.RWMutex
	enabled bool
	log     = logrus.New()
)

func init() {
	log.SetLevel(logrus.InfoLevel)
}

// Enable turns on diagnostic logging. Disabled by default so that importing
// this library never produces output a caller didn't ask for.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns diagnostic logging back off.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// SetOutput redirects where enabled diagnostics are written; logrus.New's
// default (stderr) is used otherwise.
func SetOutput(logger *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = logger
}

// Logf records a formatted diagnostic line if logging is enabled.
func Logf(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	log.Infof(format, args...)
}
