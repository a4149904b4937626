package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qsvault/internal/services/gate"
)

func TestGate_Lifecycle(t *testing.T) {
	g := gate.New()
	assert.False(t, g.IsActive())

	g.Activate()
	assert.True(t, g.IsActive())
	g.Activate()
	assert.True(t, g.IsActive())

	g.Deactivate()
	assert.False(t, g.IsActive())
}
