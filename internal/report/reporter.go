// Package report is the error-reporting collaborator. Captured errors are
// forwarded to the structured logger; when the user opts out of error
// reporting the reporter drops captures silently.
package report

import (
	"sync"

	"flashdesk/internal/logger"
)

type Reporter struct {
	logger logger.Logger

	mu       sync.Mutex
	enabled  bool
	captured int
}

func New(log logger.Logger) *Reporter {
	return &Reporter{
		logger:  log,
		enabled: true,
	}
}

func (r *Reporter) SetEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = enabled
}

// ApplyOptOut applies the errorReporting preference. Development builds
// keep reporting on regardless of the preference so local failures stay
// visible.
func (r *Reporter) ApplyOptOut(errorReporting, devBuild bool) {
	r.SetEnabled(errorReporting || devBuild)
}

func (r *Reporter) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Capture records an error with its originating component and context.
func (r *Reporter) Capture(component string, err error, fields map[string]interface{}) {
	if err == nil {
		return
	}

	r.mu.Lock()
	if !r.enabled {
		r.mu.Unlock()
		return
	}
	r.captured++
	r.mu.Unlock()

	r.logger.Error(component, err, fields)
}

// CaptureCount returns how many errors have been recorded. Used by the
// shutdown summary and by tests.
func (r *Reporter) CaptureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.captured
}

// Shutdown logs a final summary so the tail of the log shows whether the
// session recorded failures.
func (r *Reporter) Shutdown() {
	r.mu.Lock()
	captured := r.captured
	enabled := r.enabled
	r.mu.Unlock()

	if !enabled {
		return
	}
	r.logger.Info("Reporter", "session summary", map[string]interface{}{
		"errors_captured": captured,
	})
}
