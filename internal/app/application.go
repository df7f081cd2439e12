// Package app wires the application shell: startup guard, window and
// lifecycle controllers, shutdown sequencing, and the collaborators they
// depend on.
package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"flashdesk/internal/content"
	"flashdesk/internal/logger"
	"flashdesk/internal/report"
	"flashdesk/internal/settings"
	"flashdesk/internal/update"
	"flashdesk/internal/version"
)

const (
	AppName = "FlashDesk"
	AppID   = "io.flashdesk.desktop"

	DefaultWindowWidth  = 800
	DefaultWindowHeight = 480
)

// Application owns the Fyne app and every shell collaborator.
type Application struct {
	fyneApp  fyne.App
	settings settings.Store
	reporter *report.Reporter
	updater  *update.Updater
	logger   logger.Logger

	state     *WindowState
	windows   *WindowController
	lifecycle *Lifecycle
	shutdown  *ShutdownManager
}

func New(
	fyneApp fyne.App,
	store settings.Store,
	reporter *report.Reporter,
	updater *update.Updater,
	log logger.Logger,
) (*Application, error) {
	welcome, err := content.Welcome()
	if err != nil {
		// The shell still runs without its welcome document.
		reporter.Capture("Application", err, nil)
		welcome = "# " + AppName
	}

	a := &Application{
		fyneApp:  fyneApp,
		settings: store,
		reporter: reporter,
		updater:  updater,
		logger:   log,
		state:    NewWindowState(),
	}

	a.windows = NewWindowController(fyneApp, a.state, store, updater, log, welcome)
	a.windows.SetQuit(a.Quit)

	resident := store.CloseBehavior() == settings.CloseHides
	a.lifecycle = NewLifecycle(log, resident, a.Quit, func() {
		fyne.Do(func() {
			a.windows.EnsureMainWindow()
		})
	})
	a.windows.SetOnClosed(a.lifecycle.HandleAllWindowsClosed)

	a.shutdown = NewShutdownManager(log, a.Quit)
	a.shutdown.Register(reporter)
	a.shutdown.Register(updater)

	fyneApp.Lifecycle().SetOnEnteredForeground(a.handleActivation)
	fyneApp.Lifecycle().SetOnStopped(a.shutdown.Shutdown)

	if resident {
		a.setupTray()
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":       version.BuildVersion,
		"tray_resident": resident,
	})

	return a, nil
}

// Run creates the main window and enters the event loop. It blocks until
// the application quits.
func (a *Application) Run() error {
	a.shutdown.Listen()
	a.windows.EnsureMainWindow()

	a.logger.Info("Application", "entering event loop", nil)
	a.fyneApp.Run()

	return nil
}

// Quit runs the ordered shutdown sequence and stops the event loop. Safe to
// call from any handler; the sequence runs once.
func (a *Application) Quit() {
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}

// handleActivation recreates the main window when the app is brought to the
// foreground with no window present.
func (a *Application) handleActivation() {
	if a.state.Active() {
		return
	}
	a.lifecycle.HandleActivation()
}

// setupTray keeps a Show/Quit menu available while the window is hidden.
// Only desktop drivers support a system tray.
func (a *Application) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		return
	}
	desk.SetSystemTrayMenu(fyne.NewMenu(AppName,
		fyne.NewMenuItem("Show "+AppName, func() {
			fyne.Do(func() {
				a.windows.EnsureMainWindow()
			})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", a.Quit),
	))
}
