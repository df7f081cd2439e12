package settings

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *PreferenceStore {
	t.Helper()
	return NewPreferenceStore(test.NewApp().Preferences())
}

func TestDefaultsAreOptIn(t *testing.T) {
	store := newStore(t)

	require.True(t, store.ErrorReporting())
	require.True(t, store.UpdatesEnabled())
	require.Equal(t, CloseQuits, store.CloseBehavior())
}

func TestOptOutRoundTrip(t *testing.T) {
	store := newStore(t)

	store.SetErrorReporting(false)
	store.SetUpdatesEnabled(false)

	require.False(t, store.ErrorReporting())
	require.False(t, store.UpdatesEnabled())
}

func TestCloseBehavior(t *testing.T) {
	store := newStore(t)

	store.SetCloseBehavior(CloseHides)
	require.Equal(t, CloseHides, store.CloseBehavior())

	store.SetCloseBehavior(CloseQuits)
	require.Equal(t, CloseQuits, store.CloseBehavior())
}

func TestCloseBehaviorFallsBackToQuitOnGarbage(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeyCloseBehavior, "minimize")

	store := NewPreferenceStore(app.Preferences())
	require.Equal(t, CloseQuits, store.CloseBehavior())
}
