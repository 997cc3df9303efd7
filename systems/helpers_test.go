package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld is a bare runner world: a collision space and a run, nothing else.
type testWorld struct {
	ecs     *ecs.ECS
	space   *resolv.Space
	run     *donburi.Entry
	reloads int
	rng     *rand.Rand
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := &testWorld{
		ecs: ecs.NewECS(donburi.NewWorld()),
		rng: rand.New(rand.NewPCG(1, 2)),
	}
	spaceEntry := factory.CreateSpace(w.ecs, 480, 2048, 16, 16)
	w.space = components.Space.Get(spaceEntry)
	w.run = factory.CreateRun(w.ecs, 1000, 0, func() { w.reloads++ })
	return w
}

// player spawns the ball centred on (x, y).
func (w *testWorld) player(x, y float64) *donburi.Entry {
	return factory.CreatePlayer(w.ecs, w.space, x, y)
}

func (w *testWorld) obstacle(x, y, width, height float64) *donburi.Entry {
	return factory.CreateObstacle(w.ecs, w.space, w.rng, x, y, width, height, 0)
}

func (w *testWorld) wall(x, y, width, height float64) *donburi.Entry {
	return factory.CreateWall(w.ecs, w.space, x, y, width, height, 0)
}

func (w *testWorld) runData() *components.RunData {
	return components.Run.Get(w.run)
}

func (w *testWorld) timersPending() int {
	return components.Timers.Get(w.run).Pending()
}

func (w *testWorld) tick(system ecs.System, n int) {
	for i := 0; i < n; i++ {
		system(w.ecs)
	}
}

func (w *testWorld) inSpace(obj *resolv.Object) bool {
	for _, o := range w.space.Objects() {
		if o == obj {
			return true
		}
	}
	return false
}
