package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"

	"flashdesk/internal/content"
	"flashdesk/internal/logger"
	"flashdesk/internal/menus"
	"flashdesk/internal/settings"
	"flashdesk/internal/update"
	"flashdesk/internal/views"
)

// WindowController owns creation and teardown of the single main window.
type WindowController struct {
	fyneApp  fyne.App
	state    *WindowState
	settings settings.Store
	updater  *update.Updater
	logger   logger.Logger

	welcomeDoc string
	view       *views.MainView
	onClosed   func()
	quit       func()

	// checkOnShown runs the shown-triggered update check; tests replace it
	// to observe the trigger synchronously.
	checkOnShown func()
}

func NewWindowController(
	fyneApp fyne.App,
	state *WindowState,
	store settings.Store,
	updater *update.Updater,
	log logger.Logger,
	welcomeDoc string,
) *WindowController {
	c := &WindowController{
		fyneApp:    fyneApp,
		state:      state,
		settings:   store,
		updater:    updater,
		logger:     log,
		welcomeDoc: welcomeDoc,
	}
	c.checkOnShown = func() {
		go c.runUpdateCheck(c.view)
	}
	return c
}

// SetOnClosed registers the hook invoked after the main window closes and
// its handle has been cleared.
func (c *WindowController) SetOnClosed(fn func()) {
	c.onClosed = fn
}

// SetQuit registers the application quit action used by the menu and the
// close policy.
func (c *WindowController) SetQuit(fn func()) {
	c.quit = fn
}

// EnsureMainWindow returns the live main window, creating and showing it if
// none exists. Each freshly created window triggers exactly one update
// check once shown.
func (c *WindowController) EnsureMainWindow() fyne.Window {
	if w := c.state.Current(); w != nil {
		w.Show()
		return w
	}

	w := c.fyneApp.NewWindow(AppName)
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))
	w.CenterOnScreen()

	c.view = c.buildView(w)
	c.attachMenu(w)
	c.applyClosePolicy(w)

	w.SetOnClosed(func() {
		c.logger.Debug("Window", "main window closed", nil)
		c.view = nil
		c.state.Clear()
		if c.onClosed != nil {
			c.onClosed()
		}
	})

	c.state.Set(w)
	c.logger.Info("Window", "main window created", map[string]interface{}{
		"width":  DefaultWindowWidth,
		"height": DefaultWindowHeight,
	})

	w.Show()
	c.checkOnShown()

	return w
}

func (c *WindowController) buildView(w fyne.Window) *views.MainView {
	view := views.NewMainView(w, c.welcomeDoc)
	view.SetSelectImageHandler(func() { c.pickImage(view) })
	view.SetCheckUpdatesHandler(func() { go c.runUpdateCheck(view) })
	return view
}

func (c *WindowController) attachMenu(w fyne.Window) {
	menus.Attach(w, menus.Actions{
		OpenImage: func() {
			if view := c.view; view != nil {
				c.pickImage(view)
			}
		},
		CheckForUpdates: func() {
			go c.runUpdateCheck(c.view)
		},
		ShowAbout: func() {
			view := c.view
			if view == nil {
				return
			}
			about, err := content.About()
			if err != nil {
				view.ShowError(err)
				return
			}
			view.ShowAbout(about)
		},
		Quit: func() {
			if c.quit != nil {
				c.quit()
			}
		},
	})
}

// applyClosePolicy installs the single explicit close behavior: quit lets
// the close proceed (the lifecycle decides whether the app terminates),
// hide keeps the application tray-resident.
func (c *WindowController) applyClosePolicy(w fyne.Window) {
	behavior := c.settings.CloseBehavior()
	c.logger.Debug("Window", "close policy applied", map[string]interface{}{
		"behavior": string(behavior),
	})

	if behavior == settings.CloseHides {
		w.SetCloseIntercept(func() {
			c.logger.Debug("Window", "close intercepted, hiding to tray", nil)
			w.Hide()
		})
	}
}

func (c *WindowController) pickImage(view *views.MainView) {
	view.ShowImagePicker(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			view.ShowError(err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		view.UpdateStatus(fmt.Sprintf("Selected image: %s", reader.URI().Name()))
	})
}

// runUpdateCheck runs off the event thread. The view is captured on the
// event thread before the goroutine starts; the c.view field is only
// touched on the event thread.
func (c *WindowController) runUpdateCheck(view *views.MainView) {
	res, err := c.updater.CheckForUpdates(context.Background())
	if err != nil || view == nil {
		return
	}
	switch {
	case res.Skipped:
		view.UpdateStatus("Update check skipped for this build")
	case res.Outdated:
		view.UpdateStatus(fmt.Sprintf("Update available: %s", res.LatestVersion))
	default:
		view.UpdateStatus("FlashDesk is up to date")
	}
}
