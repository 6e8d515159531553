package systems

import (
	"testing"

	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/stretchr/testify/assert"
)

func TestSelectAction(t *testing.T) {
	tests := []struct {
		name   string
		inAir  bool
		moving bool
		want   cfg.StateID
	}{
		{"grounded still", false, false, cfg.Idle},
		{"grounded moving", false, true, cfg.Running},
		{"airborne still", true, false, cfg.Jump},
		{"airborne moving", true, true, cfg.Jump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			soldier := &components.SoldierData{MovingRight: tt.moving}
			physics := &components.PhysicsData{InAir: tt.inAir}
			assert.Equal(t, tt.want, selectAction(soldier, physics))
		})
	}
}

func TestStatesFollowMovement(t *testing.T) {
	e, player := newTestWorld(t)
	state := components.State.Get(player)
	soldier := components.Soldier.Get(player)

	step(e)
	assert.Equal(t, cfg.Jump, state.CurrentState)

	land(t, e, player)
	assert.Equal(t, cfg.Idle, state.CurrentState)
	assert.Equal(t, cfg.Jump, state.PreviousState)

	soldier.MovingRight = true
	step(e)
	assert.Equal(t, cfg.Running, state.CurrentState)

	soldier.MovingRight = false
	step(e)
	assert.Equal(t, cfg.Idle, state.CurrentState)
}

func TestDeadSoldierKeepsState(t *testing.T) {
	e, player := newTestWorld(t)
	land(t, e, player)

	soldier := components.Soldier.Get(player)
	soldier.Alive = false
	soldier.MovingRight = true
	step(e)

	assert.Equal(t, cfg.Idle, components.State.Get(player).CurrentState)
}

func TestAnimationAdvancesOnTimerAndWraps(t *testing.T) {
	e, player := newTestWorld(t)
	land(t, e, player)

	anim := components.Animation.Get(player)
	assert.Equal(t, cfg.Idle, anim.CurrentSheet)
	assert.Equal(t, 0, anim.Frame())

	period := cfg.AnimationCooldownTicks + 1
	idleFrames := cfg.AnimationsFor(cfg.Player.CharType)[cfg.Idle].Frames

	for i := 0; i < period-1; i++ {
		step(e)
	}
	assert.Equal(t, 0, anim.Frame())
	step(e)
	assert.Equal(t, 1, anim.Frame())

	for i := 0; i < period*(idleFrames-1); i++ {
		step(e)
	}
	assert.Equal(t, 0, anim.Frame(), "wraps after the last idle frame")
	assert.True(t, anim.CurrentAnimation.Looped)
}

func TestStateChangeResetsFrame(t *testing.T) {
	e, player := newTestWorld(t)
	land(t, e, player)
	anim := components.Animation.Get(player)

	for i := 0; i < 2*(cfg.AnimationCooldownTicks+1); i++ {
		step(e)
	}
	assert.Equal(t, 2, anim.Frame())

	components.Soldier.Get(player).MovingLeft = true
	step(e)
	assert.Equal(t, cfg.Running, anim.CurrentSheet)
	assert.Equal(t, 0, anim.Frame())
}

func TestEnemyFallsAndIdles(t *testing.T) {
	e, _ := newTestWorld(t)
	enemy := createTestEnemy(e)
	land(t, e, enemy)

	for i := 0; i < 30; i++ {
		step(e)
	}

	obj := components.Object.Get(enemy)
	assert.InDelta(t, cfg.Enemy.X, obj.CenterX(), 1e-9, "no horizontal motion")
	assert.InDelta(t, cfg.Physics.FloorY, obj.Bottom(), 1e-9)
	assert.Equal(t, cfg.Idle, components.State.Get(enemy).CurrentState)
	assert.Equal(t, cfg.Enemy.Ammo, components.Soldier.Get(enemy).Ammo)
}
