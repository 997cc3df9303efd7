package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/rollaway/assets"
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/logging"
	"github.com/automoto/rollaway/systems"
	"github.com/automoto/rollaway/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var (
	tuningSource systems.TuningSource
	tuningPath   string
)

// SetTuningSource makes every runner scene reload path when src reports a
// change. A nil src disables reloading.
func SetTuningSource(src systems.TuningSource, path string) {
	tuningSource = src
	tuningPath = path
}

// RunnerScene is one run down the track. A reset replaces it with a fresh
// RunnerScene, so no state carries over except what is saved to disk.
type RunnerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewRunnerScene creates a new runner scene
func NewRunnerScene(sc SceneChanger) *RunnerScene {
	return &RunnerScene{sceneChanger: sc}
}

func (rs *RunnerScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RunnerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RunnerScene) reload() {
	rs.sceneChanger.ChangeScene(NewRunnerScene(rs.sceneChanger))
}

func (rs *RunnerScene) exitToMenu() {
	rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger))
}

func (rs *RunnerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	if tuningSource != nil {
		ecs.AddSystem(systems.NewUpdateTuning(tuningSource, tuningPath))
	}
	ecs.AddSystem(systems.NewUpdatePause(rs.exitToMenu))

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRun))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Timers last so a reset replaces the scene after this tick's work
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTimers))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawTrack)
	ecs.AddRenderer(cfg.Default, systems.DrawObstacles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	rs.ecs = ecs

	spaceEntry := factory.CreateSpace(rs.ecs,
		cfg.World.SpaceWidth,
		cfg.World.SpaceHeight,
		cfg.World.CellSize, cfg.World.CellSize,
	)
	space := components.Space.Get(spaceEntry)

	// The first segment sits below the spawn segment so the screen bottom is
	// never empty track
	level := assets.NewLevelLoader().MustLoadLevel(assets.DefaultLevel)
	segment := float64(level.SegmentHeight)
	trackBottom := float64(cfg.World.SpaceHeight) - cfg.World.RebaseY/2
	levelEntry := factory.CreateLevelFrom(rs.ecs, &level, trackBottom, uint64(time.Now().UnixNano()))
	levelData := components.Level.Get(levelEntry)

	spawnX := level.SpawnX
	spawnY := trackBottom - 2*segment + level.SpawnY
	factory.CreatePlayer(rs.ecs, space, spawnX, spawnY)

	systems.FillTrack(rs.ecs, space, levelData, spawnY-cfg.Track.SpawnAhead)

	// Snap camera to the start position to prevent panning in from (0,0)
	cameraY := spawnY - (cfg.Camera.PlayerScreenY-0.5)*float64(cfg.C.Height)
	factory.CreateCamera(rs.ecs, float64(cfg.C.Width)/2, cameraY)

	factory.CreateRun(rs.ecs, spawnY, systems.BestDistance(), rs.reload)

	logging.L().Debug("run started",
		zap.String("level", level.Name),
		zap.Float64("spawnX", spawnX),
		zap.Float64("spawnY", spawnY),
	)
}
