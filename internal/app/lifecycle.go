package app

import (
	"runtime"

	"flashdesk/internal/logger"
)

// Lifecycle applies the application-level window policies: quit when the
// last window closes (except on the macOS resident convention or when the
// app is tray-resident), and recreate the window on activation.
type Lifecycle struct {
	logger   logger.Logger
	goos     string
	resident bool
	quit     func()
	recreate func()
}

func NewLifecycle(log logger.Logger, resident bool, quit, recreate func()) *Lifecycle {
	return &Lifecycle{
		logger:   log,
		goos:     runtime.GOOS,
		resident: resident,
		quit:     quit,
		recreate: recreate,
	}
}

// HandleAllWindowsClosed decides whether the application terminates once no
// window remains.
func (l *Lifecycle) HandleAllWindowsClosed() {
	if l.resident {
		l.logger.Debug("Lifecycle", "window closed, staying resident in tray", nil)
		return
	}
	if l.goos == "darwin" {
		l.logger.Debug("Lifecycle", "window closed, staying resident per platform convention", nil)
		return
	}
	l.logger.Info("Lifecycle", "all windows closed, terminating", nil)
	l.quit()
}

// HandleActivation recreates the main window when the application is
// activated with no window present.
func (l *Lifecycle) HandleActivation() {
	l.recreate()
}
