package gate

import (
	"sync/atomic"

	"qsvault/internal/domain"
)

// Gate is an on/off switch. The zero value is inactive.
type Gate struct {
	active atomic.Bool
}

// New returns an inactive gate.
func New() *Gate { return &Gate{} }

// Activate opens the gate.
func (g *Gate) Activate() { g.active.Store(true) }

// Deactivate closes the gate.
func (g *Gate) Deactivate() { g.active.Store(false) }

// IsActive reports whether the gate is open.
func (g *Gate) IsActive() bool { return g.active.Load() }

// Compile-time assertion that Gate implements domain.ActivationGate.
var _ domain.ActivationGate = (*Gate)(nil)
