package app

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"

	"flashdesk/internal/logger"
	"flashdesk/internal/settings"
	"flashdesk/internal/update"
)

func newTestController(t *testing.T) (*WindowController, *update.Updater, *WindowState) {
	t.Helper()

	a := test.NewApp()
	state := NewWindowState()
	store := settings.NewPreferenceStore(a.Preferences())
	// "dev" keeps the checker offline: the check is counted but skipped.
	updater := update.NewUpdater(logger.Nop{}, "dev")

	c := NewWindowController(a, state, store, updater, logger.Nop{}, "# Welcome")
	c.checkOnShown = func() {
		_, _ = c.updater.CheckForUpdates(context.Background())
	}
	return c, updater, state
}

func TestEnsureMainWindowCreatesAndShows(t *testing.T) {
	c, updater, state := newTestController(t)

	w := c.EnsureMainWindow()

	if w == nil {
		t.Fatal("expected a window")
	}
	if state.Current() != w {
		t.Fatal("window handle must be owned by the state")
	}
	if updater.CheckCount() != 1 {
		t.Fatalf("shown window must trigger exactly one update check, got %d", updater.CheckCount())
	}
}

func TestEnsureMainWindowReusesLiveWindow(t *testing.T) {
	c, updater, _ := newTestController(t)

	first := c.EnsureMainWindow()
	second := c.EnsureMainWindow()

	if first != second {
		t.Fatal("a live window must be reused, not recreated")
	}
	if updater.CheckCount() != 1 {
		t.Fatalf("re-showing must not trigger another check, got %d", updater.CheckCount())
	}
}

func TestClosedWindowClearsHandleAndFiresHook(t *testing.T) {
	c, _, state := newTestController(t)

	closedHooks := 0
	c.SetOnClosed(func() { closedHooks++ })

	w := c.EnsureMainWindow()
	w.Close()

	if state.Active() {
		t.Fatal("closing the window must clear the handle")
	}
	if closedHooks != 1 {
		t.Fatalf("expected one closed hook, got %d", closedHooks)
	}
}

func TestActivationAfterCloseRecreatesWindow(t *testing.T) {
	c, updater, state := newTestController(t)

	first := c.EnsureMainWindow()
	first.Close()

	second := c.EnsureMainWindow()

	if second == nil || !state.Active() {
		t.Fatal("a fresh window must exist after reactivation")
	}
	if first == second {
		t.Fatal("reactivation must create a new window")
	}
	if updater.CheckCount() != 2 {
		t.Fatalf("each created window checks once, got %d checks", updater.CheckCount())
	}
}

func TestUpdateCheckSurvivesWindowClose(t *testing.T) {
	c, _, _ := newTestController(t)
	c.checkOnShown = func() {}

	w := c.EnsureMainWindow()
	view := c.view
	w.Close()

	// The check runs against the view captured at spawn time, even after
	// the close handler has released the controller's reference.
	c.runUpdateCheck(view)

	if got := view.Status(); got != "Update check skipped for this build" {
		t.Fatalf("unexpected status after late check: %q", got)
	}
	if c.view != nil {
		t.Fatal("close must release the controller's view reference")
	}
}

func TestMenuAttachedToWindow(t *testing.T) {
	c, _, _ := newTestController(t)

	w := c.EnsureMainWindow()

	menu := w.MainMenu()
	if menu == nil {
		t.Fatal("main window must carry the application menu")
	}
	if len(menu.Items) != 2 {
		t.Fatalf("expected File and Help menus, got %d", len(menu.Items))
	}
}
