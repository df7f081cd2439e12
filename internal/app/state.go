package app

import (
	"sync"

	"fyne.io/fyne/v2"
)

// WindowState owns the optional main-window handle. At most one window is
// active at a time; a cleared handle lets a later activation recreate it.
type WindowState struct {
	mu     sync.Mutex
	window fyne.Window
}

func NewWindowState() *WindowState {
	return &WindowState{}
}

func (s *WindowState) Set(window fyne.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = window
}

func (s *WindowState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = nil
}

func (s *WindowState) Current() fyne.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window
}

func (s *WindowState) Active() bool {
	return s.Current() != nil
}
