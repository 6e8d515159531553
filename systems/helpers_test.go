package systems

import (
	"testing"

	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testSoldierW = 39.0
	testSoldierH = 60.0
)

// newTestWorld builds a stage with the default floor and one player centred
// on the configured spawn point. No sprites are loaded.
func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateStage(e, float64(cfg.C.Width), float64(cfg.C.Height), cfg.Physics.FloorY)
	player := factory.CreatePlayer(e, factory.SoldierSpec{
		Config: cfg.Player,
		Width:  testSoldierW,
		Height: testSoldierH,
	})
	return e, player
}

// step runs one simulation tick without input polling.
func step(e *ecs.ECS) {
	UpdateSoldiers(e)
	UpdatePhysics(e)
	UpdateStates(e)
	UpdateBullets(e)
	UpdateObjects(e)
}

// land steps until the soldier touches the floor.
func land(t *testing.T, e *ecs.ECS, soldier *donburi.Entry) int {
	t.Helper()
	physics := components.Physics.Get(soldier)
	for i := 1; i <= 120; i++ {
		step(e)
		if !physics.InAir {
			return i
		}
	}
	require.FailNow(t, "soldier never landed")
	return 0
}

func countBullets(e *ecs.ECS) int {
	n := 0
	components.Bullet.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func createTestEnemy(e *ecs.ECS) *donburi.Entry {
	return factory.CreateEnemy(e, factory.SoldierSpec{
		Config: cfg.Enemy,
		Width:  testSoldierW,
		Height: testSoldierH,
	})
}
