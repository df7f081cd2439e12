package app

import (
	"testing"

	"flashdesk/internal/logger"
)

func TestAllWindowsClosedQuitsOnNonDarwin(t *testing.T) {
	quits := 0
	l := NewLifecycle(logger.Nop{}, false, func() { quits++ }, func() {})
	l.goos = "linux"

	l.HandleAllWindowsClosed()

	if quits != 1 {
		t.Fatalf("expected quit on linux, got %d quits", quits)
	}
}

func TestAllWindowsClosedStaysResidentOnDarwin(t *testing.T) {
	quits := 0
	l := NewLifecycle(logger.Nop{}, false, func() { quits++ }, func() {})
	l.goos = "darwin"

	l.HandleAllWindowsClosed()

	if quits != 0 {
		t.Fatal("darwin convention keeps the app resident without windows")
	}
}

func TestAllWindowsClosedStaysResidentInTrayMode(t *testing.T) {
	quits := 0
	l := NewLifecycle(logger.Nop{}, true, func() { quits++ }, func() {})
	l.goos = "linux"

	l.HandleAllWindowsClosed()

	if quits != 0 {
		t.Fatal("tray-resident app must survive window close")
	}
}

func TestActivationRecreatesWindow(t *testing.T) {
	recreated := 0
	l := NewLifecycle(logger.Nop{}, false, func() {}, func() { recreated++ })

	l.HandleActivation()

	if recreated != 1 {
		t.Fatalf("expected one recreation, got %d", recreated)
	}
}
