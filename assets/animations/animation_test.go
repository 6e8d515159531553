package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleAdvancesEverySpeedPlusOneTicks(t *testing.T) {
	a := NewCycle(5, 6)

	var advancedAt []int
	for tick := 1; tick <= 21; tick++ {
		prev := a.Frame()
		a.Update()
		if a.Frame() != prev {
			advancedAt = append(advancedAt, tick)
		}
	}

	assert.Equal(t, []int{7, 14, 21}, advancedAt)
	assert.Equal(t, 3, a.Frame())
}

func TestCycleWraps(t *testing.T) {
	a := NewCycle(2, 0)

	a.Update()
	assert.Equal(t, 1, a.Frame())
	assert.False(t, a.Looped)

	a.Update()
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestSingleFrameNeverMoves(t *testing.T) {
	a := NewCycle(1, 0)
	for i := 0; i < 10; i++ {
		a.Update()
		assert.Equal(t, 0, a.Frame())
	}
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestFreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0)
	a.FreezeOnComplete = true

	for i := 0; i < 5; i++ {
		a.Update()
	}
	assert.Equal(t, 2, a.Frame())
	assert.True(t, a.Looped)
}

func TestRestart(t *testing.T) {
	a := NewCycle(4, 0)
	a.Update()
	a.Update()
	assert.Equal(t, 2, a.Frame())

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}

func TestLen(t *testing.T) {
	assert.Equal(t, 6, NewCycle(6, 1).Len())
	assert.Equal(t, 3, NewAnimation(0, 4, 2, 1).Len())
	assert.Equal(t, 1, NewCycle(0, 1).Len())
}
