// Package menus builds the main menu for the application window.
package menus

import "fyne.io/fyne/v2"

// Actions carries the callbacks the menu items trigger. Nil callbacks
// produce inert items.
type Actions struct {
	OpenImage       func()
	CheckForUpdates func()
	ShowAbout       func()
	Quit            func()
}

// Build constructs the main menu from the given actions.
func Build(actions Actions) *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Disk Image…", wrap(actions.OpenImage)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", wrap(actions.Quit)),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Check for Updates…", wrap(actions.CheckForUpdates)),
		fyne.NewMenuItem("About FlashDesk", wrap(actions.ShowAbout)),
	)

	return fyne.NewMainMenu(fileMenu, helpMenu)
}

// Attach builds the menu and installs it on the window.
func Attach(window fyne.Window, actions Actions) {
	window.SetMainMenu(Build(actions))
}

func wrap(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}
