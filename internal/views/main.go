// Package views holds the application's UI surfaces.
package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single top-level surface: a toolbar, the welcome
// document, and a status bar.
type MainView struct {
	window    fyne.Window
	toolbar   *widget.Toolbar
	document  *widget.RichText
	statusBar *widget.Label

	// Event handlers - connected by the window controller
	selectImageHandler  func()
	checkUpdatesHandler func()
}

// NewMainView builds the view and sets it as the window content.
func NewMainView(window fyne.Window, documentMarkdown string) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(documentMarkdown)
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents(documentMarkdown string) {
	mv.toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			if mv.selectImageHandler != nil {
				mv.selectImageHandler()
			}
		}),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
			if mv.checkUpdatesHandler != nil {
				mv.checkUpdatesHandler()
			}
		}),
	)
	mv.document = widget.NewRichTextFromMarkdown(documentMarkdown)
	mv.document.Wrapping = fyne.TextWrapWord
	mv.statusBar = widget.NewLabel("Ready")
}

func (mv *MainView) buildLayout() {
	mv.window.SetContent(container.NewBorder(
		mv.toolbar,
		mv.statusBar,
		nil,
		nil,
		container.NewScroll(mv.document),
	))
}

// SetSelectImageHandler sets the handler for the open-image action.
func (mv *MainView) SetSelectImageHandler(handler func()) {
	mv.selectImageHandler = handler
}

// SetCheckUpdatesHandler sets the handler for the manual update check.
func (mv *MainView) SetCheckUpdatesHandler(handler func()) {
	mv.checkUpdatesHandler = handler
}

// UpdateStatus updates the status bar message.
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetText(status)
	})
}

// Status returns the current status bar text.
func (mv *MainView) Status() string {
	return mv.statusBar.Text
}

// ShowError displays an error dialog.
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowAbout renders the about document in a dialog.
func (mv *MainView) ShowAbout(aboutMarkdown string) {
	fyne.Do(func() {
		about := widget.NewRichTextFromMarkdown(aboutMarkdown)
		dialog.ShowCustom("About", "Close", about, mv.window)
	})
}

// ShowImagePicker opens a file dialog for disk image selection.
func (mv *MainView) ShowImagePicker(callback func(fyne.URIReadCloser, error)) {
	fyne.Do(func() {
		dialog.ShowFileOpen(callback, mv.window)
	})
}
