package app

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"flashdesk/internal/compat"
	"flashdesk/internal/logger"
	"flashdesk/internal/report"
)

// ExitCodeUnsupported is the process exit status for any fatal host
// compatibility failure.
const ExitCodeUnsupported = 1

// StartupGuard verifies the host before any UI exists. A failed check
// reports the condition, shows a blocking error dialog, and terminates the
// process. There is no retry.
type StartupGuard struct {
	policy   compat.Policy
	reporter *report.Reporter
	logger   logger.Logger

	showDialog func(reason string)
	exit       func(code int)
}

func NewStartupGuard(policy compat.Policy, reporter *report.Reporter, log logger.Logger) *StartupGuard {
	return &StartupGuard{
		policy:     policy,
		reporter:   reporter,
		logger:     log,
		showDialog: showBlockingStartupError,
		exit:       os.Exit,
	}
}

// Verify evaluates the host against the policy. It returns true only when
// the host is supported; otherwise it runs the fatal failure path.
func (g *StartupGuard) Verify(host compat.Host) bool {
	result := g.policy.Evaluate(host)
	if result.Supported() {
		g.logger.Info("Startup", "host supported", map[string]interface{}{
			"os":      host.OS,
			"arch":    host.Arch,
			"version": host.Version,
		})
		return true
	}

	err := fmt.Errorf("startup aborted: %s", result.Reason())
	g.reporter.Capture("Startup", err, map[string]interface{}{
		"status":  result.Status.String(),
		"os":      host.OS,
		"arch":    host.Arch,
		"version": host.Version,
	})
	g.showDialog(result.Reason())
	g.exit(ExitCodeUnsupported)
	return false
}

// showBlockingStartupError raises a minimal throwaway window carrying the
// error dialog; the main window never exists on this path.
func showBlockingStartupError(reason string) {
	a := fyneapp.New()
	w := a.NewWindow(AppName)
	w.Resize(fyne.NewSize(420, 160))
	w.CenterOnScreen()

	d := dialog.NewError(errors.New(reason), w)
	d.SetOnClosed(a.Quit)

	w.Show()
	d.Show()
	a.Run()
}
