package main

import (
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"flashdesk/internal/app"
	"flashdesk/internal/compat"
	"flashdesk/internal/content"
	"flashdesk/internal/logger"
	"flashdesk/internal/report"
	"flashdesk/internal/settings"
	"flashdesk/internal/update"
	"flashdesk/internal/version"
)

func main() {
	// The privileged document scheme must exist before any window does.
	content.Register()

	log := logger.NewConsoleLogger(logger.LevelFromEnvironment())
	reporter := report.New(log)

	log.Info("Main", "starting", map[string]interface{}{
		"version": version.BuildVersion,
	})

	// Fatal compatibility checks run before any UI is created; Verify
	// terminates the process itself on an unsupported host.
	guard := app.NewStartupGuard(compat.DefaultPolicy(), reporter, log)
	if !guard.Verify(compat.DetectHost()) {
		return
	}

	fyneApp := fyneapp.NewWithID(app.AppID)
	store := settings.NewPreferenceStore(fyneApp.Preferences())

	reporter.ApplyOptOut(store.ErrorReporting(), version.IsDevelopment())

	updater := update.NewUpdater(log, version.BuildVersion)
	updater.ApplyOptOut(store.UpdatesEnabled())

	application, err := app.New(fyneApp, store, reporter, updater, log)
	if err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("Main", err, nil)
		os.Exit(1)
	}

	log.Info("Main", "terminated", nil)
}
