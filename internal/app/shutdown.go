package app

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"flashdesk/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// ShutdownManager runs registered components' shutdown hooks once, in
// reverse registration order, with a per-component timeout.
type ShutdownManager struct {
	logger   logger.Logger
	onSignal func()

	mu         sync.Mutex
	components []Shutdownable
	done       chan struct{}
}

func NewShutdownManager(log logger.Logger, onSignal func()) *ShutdownManager {
	return &ShutdownManager{
		logger:   log,
		onSignal: onSignal,
		done:     make(chan struct{}),
	}
}

func (m *ShutdownManager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component)
}

// Listen forwards SIGINT/SIGTERM to the quit path so a terminal interrupt
// behaves like a user-initiated quit.
func (m *ShutdownManager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("Shutdown", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if m.onSignal != nil {
				m.onSignal()
			}
		case <-m.done:
		}
	}()
}

func (m *ShutdownManager) Shutdown() {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
		close(m.done)
	}
	components := make([]Shutdownable, len(m.components))
	copy(components, m.components)
	m.mu.Unlock()

	m.logger.Info("Shutdown", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	for i := len(components) - 1; i >= 0; i-- {
		component := components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			component.Shutdown()
		}()

		select {
		case <-finished:
		case <-time.After(10 * time.Second):
			m.logger.Warning("Shutdown", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info("Shutdown", "shutdown sequence completed", nil)
}

func (m *ShutdownManager) Done() <-chan struct{} {
	return m.done
}
