package systems

import (
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates picks each soldier's action and advances its animation.
func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.StateTimer++

		if e.HasComponent(components.Soldier) {
			soldier := components.Soldier.Get(e)
			physics := components.Physics.Get(e)
			if soldier.Alive {
				setState(state, selectAction(soldier, physics))
			}
		}

		if e.HasComponent(components.Animation) {
			updateAnimation(state, components.Animation.Get(e))
		}
	})
}

// selectAction maps movement and physics state to an action.
func selectAction(soldier *components.SoldierData, physics *components.PhysicsData) cfg.StateID {
	switch {
	case physics.InAir:
		return cfg.Jump
	case soldier.Moving():
		return cfg.Running
	default:
		return cfg.Idle
	}
}

func setState(state *components.StateData, next cfg.StateID) {
	if state.CurrentState == next {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

func updateAnimation(state *components.StateData, animData *components.AnimationData) {
	// A state change restarts the animation, and the first frame gets a full cooldown.
	if animData.SetAnimation(state.CurrentState) {
		return
	}
	if animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Update()
	}
}
