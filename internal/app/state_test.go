package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestWindowStateLifecycle(t *testing.T) {
	state := NewWindowState()

	if state.Active() {
		t.Fatal("fresh state must have no window")
	}
	if state.Current() != nil {
		t.Fatal("fresh state must return nil handle")
	}

	a := test.NewApp()
	w := a.NewWindow("test")

	state.Set(w)
	if !state.Active() {
		t.Fatal("state must be active after Set")
	}
	if state.Current() != w {
		t.Fatal("Current must return the stored handle")
	}

	state.Clear()
	if state.Active() {
		t.Fatal("state must be inactive after Clear")
	}
}
