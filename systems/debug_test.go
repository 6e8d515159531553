package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugStatus(t *testing.T) {
	e, player := newTestWorld(t)
	assert.Contains(t, debugStatus(e), "state: Idle (from None, 0 ticks)")
	assert.Contains(t, debugStatus(e), "on solid: false")

	land(t, e, player)
	step(e)
	step(e)
	assert.Contains(t, debugStatus(e), "state: Idle (from Jump, 2 ticks)")
	assert.Contains(t, debugStatus(e), "in air: false  on solid: true")

	Shoot(e, player)
	assert.Contains(t, debugStatus(e), "bullets: 1")
}
