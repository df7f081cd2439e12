// Package settings persists user preferences through the Fyne preferences
// store bound to the application ID.
package settings

import "fyne.io/fyne/v2"

const (
	KeyErrorReporting = "errorReporting"
	KeyUpdatesEnabled = "updatesEnabled"
	KeyCloseBehavior  = "closeBehavior"
)

// CloseBehavior is the single explicit window-close policy.
type CloseBehavior string

const (
	// CloseQuits terminates the application when the main window closes.
	CloseQuits CloseBehavior = "quit"
	// CloseHides keeps the application resident in the system tray.
	CloseHides CloseBehavior = "hide"
)

// Store reads and writes the user-facing feature toggles.
type Store interface {
	ErrorReporting() bool
	SetErrorReporting(enabled bool)
	UpdatesEnabled() bool
	SetUpdatesEnabled(enabled bool)
	CloseBehavior() CloseBehavior
	SetCloseBehavior(behavior CloseBehavior)
}

// PreferenceStore backs Store with fyne.Preferences.
type PreferenceStore struct {
	prefs fyne.Preferences
}

func NewPreferenceStore(prefs fyne.Preferences) *PreferenceStore {
	return &PreferenceStore{prefs: prefs}
}

// ErrorReporting defaults to true: the user opts out, not in.
func (s *PreferenceStore) ErrorReporting() bool {
	return s.prefs.BoolWithFallback(KeyErrorReporting, true)
}

func (s *PreferenceStore) SetErrorReporting(enabled bool) {
	s.prefs.SetBool(KeyErrorReporting, enabled)
}

// UpdatesEnabled defaults to true.
func (s *PreferenceStore) UpdatesEnabled() bool {
	return s.prefs.BoolWithFallback(KeyUpdatesEnabled, true)
}

func (s *PreferenceStore) SetUpdatesEnabled(enabled bool) {
	s.prefs.SetBool(KeyUpdatesEnabled, enabled)
}

func (s *PreferenceStore) CloseBehavior() CloseBehavior {
	switch CloseBehavior(s.prefs.StringWithFallback(KeyCloseBehavior, string(CloseQuits))) {
	case CloseHides:
		return CloseHides
	default:
		return CloseQuits
	}
}

func (s *PreferenceStore) SetCloseBehavior(behavior CloseBehavior) {
	s.prefs.SetString(KeyCloseBehavior, string(behavior))
}
