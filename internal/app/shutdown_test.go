package app

import (
	"testing"

	"flashdesk/internal/logger"
)

type orderedComponent struct {
	name string
	log  *[]string
}

func (c *orderedComponent) Shutdown() {
	*c.log = append(*c.log, c.name)
}

func TestShutdownRunsInReverseRegistrationOrder(t *testing.T) {
	m := NewShutdownManager(logger.Nop{}, nil)

	var order []string
	m.Register(&orderedComponent{name: "first", log: &order})
	m.Register(&orderedComponent{name: "second", log: &order})
	m.Register(&orderedComponent{name: "third", log: &order})

	m.Shutdown()

	if len(order) != 3 || order[0] != "third" || order[2] != "first" {
		t.Fatalf("expected reverse order, got %v", order)
	}
}

func TestShutdownRunsOnlyOnce(t *testing.T) {
	m := NewShutdownManager(logger.Nop{}, nil)

	var order []string
	m.Register(&orderedComponent{name: "only", log: &order})

	m.Shutdown()
	m.Shutdown()

	if len(order) != 1 {
		t.Fatalf("expected a single shutdown pass, got %d", len(order))
	}

	select {
	case <-m.Done():
	default:
		t.Fatal("Done channel must be closed after shutdown")
	}
}
