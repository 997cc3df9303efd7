package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// TPS is the fixed physics tick rate. One Update is one physics tick.
const TPS = 60

type Config struct {
	Width  int
	Height int
}

// PlayerConfig contains the ball's tuning values. Distances are in world units
// (see WorldConfig.PixelsPerUnit) except MinSwipeDistance, which is in screen pixels.
type PlayerConfig struct {
	DodgeSpeed        float64 `yaml:"dodgeSpeed"`        // How fast the ball moves left/right
	RollSpeed         float64 `yaml:"rollSpeed"`         // How fast the ball moves forwards automatically (0-10)
	SwipeMoveDistance float64 `yaml:"swipeMoveDistance"` // How far the player moves upon swiping
	MinSwipeDistance  float64 `yaml:"minSwipeDistance"`  // How far a swipe must travel before it counts

	// Body
	Mass              float64 `yaml:"mass"`
	Drag              float64 `yaml:"drag"`
	MaxForwardSpeed   float64 `yaml:"maxForwardSpeed"`
	MaxLateralSpeed   float64 `yaml:"maxLateralSpeed"`
	Radius            float64 `yaml:"radius"`
	StartForwardSpeed float64 `yaml:"startForwardSpeed"`
}

// Roll speed range enforced by Validate.
const (
	MinRollSpeed = 0.0
	MaxRollSpeed = 10.0
)

// ObstacleConfig contains obstacle tuning values.
type ObstacleConfig struct {
	WaitTime float64 `yaml:"waitTime"` // Seconds to wait before restarting the level

	// Color randomization ranges (0..1), matching a full HSV pick by default
	HueMin float64 `yaml:"hueMin"`
	HueMax float64 `yaml:"hueMax"`
	SatMin float64 `yaml:"satMin"`
	SatMax float64 `yaml:"satMax"`
	ValMin float64 `yaml:"valMin"`
	ValMax float64 `yaml:"valMax"`
}

// WorldConfig contains coordinate system settings.
type WorldConfig struct {
	PixelsPerUnit float64
	SpaceWidth    int
	SpaceHeight   int
	CellSize      int

	// Floating origin: once the player climbs above RebaseY every object is
	// shifted down by RebaseShift so the run never leaves the collision space.
	RebaseY     float64
	RebaseShift float64
}

// TrackConfig contains endless track spawning settings.
type TrackConfig struct {
	SpawnAhead    float64    `yaml:"spawnAhead"`    // pixels ahead of the player kept populated
	DespawnBehind float64    `yaml:"despawnBehind"` // pixels behind the player before removal
	SafeSegments  int        `yaml:"safeSegments"`  // obstacle-free segments at the start of a run
	WallWidth     float64    `yaml:"-"`
	FloorColor    color.RGBA `yaml:"-"`
	StripeColor   color.RGBA `yaml:"-"`
	WallColor     color.RGBA `yaml:"-"`
}

// ControlsConfig toggles optional control schemes.
type ControlsConfig struct {
	// TouchMovement maps the first touch through the pointer branch of the
	// movement mapper in addition to swipe teleports.
	TouchMovement bool `yaml:"touchMovement"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PlayerScreenY   float64 // where the player sits vertically on screen (0..1)
	LateralDuration float32 // seconds for the lateral ease to catch up
	LateralFollow   bool    // follow the player sideways, otherwise keep the track centred

	CrashShakeIntensity float64 // pixels
	CrashShakeDuration  int     // frames
}

// HUDConfig contains HUD layout values.
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	BestColor color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig contains debug options read from the environment.
type DebugConfig struct {
	SkipMenu     bool
	DrawHitboxes bool
	Verbose      bool
}

var C *Config
var Player PlayerConfig
var Obstacle ObstacleConfig
var World WorldConfig
var Track TrackConfig
var Controls ControlsConfig
var Camera CameraConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Slate        = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	DarkSlate    = color.RGBA{R: 24, G: 26, B: 32, A: 255}
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in default.
func Reset() {
	C = &Config{
		Width:  480,
		Height: 800,
	}

	Player = PlayerConfig{
		DodgeSpeed:        5,
		RollSpeed:         5,
		SwipeMoveDistance: 2,
		MinSwipeDistance:  2,

		Mass:              1,
		Drag:              0.5,
		MaxForwardSpeed:   14,
		MaxLateralSpeed:   8,
		Radius:            0.5,
		StartForwardSpeed: 2,
	}

	Obstacle = ObstacleConfig{
		WaitTime: 2.0,
		HueMin:   0,
		HueMax:   1,
		SatMin:   0,
		SatMax:   1,
		ValMin:   0,
		ValMax:   1,
	}

	World = WorldConfig{
		PixelsPerUnit: 32,
		SpaceWidth:    480,
		SpaceHeight:   8192,
		CellSize:      16,
		RebaseY:       2048,
		RebaseShift:   4096,
	}

	Track = TrackConfig{
		SpawnAhead:    1600,
		DespawnBehind: 400,
		SafeSegments:  2,
		WallWidth:     16,
		FloorColor:    Slate,
		StripeColor:   color.RGBA{R: 56, G: 62, B: 72, A: 255},
		WallColor:     DarkSlate,
	}

	Controls = ControlsConfig{
		TouchMovement: false,
	}

	Camera = CameraConfig{
		PlayerScreenY:   0.75,
		LateralDuration: 0.35,
		LateralFollow:   false,

		CrashShakeIntensity: 6,
		CrashShakeDuration:  24,
	}

	HUD = HUDConfig{
		Margin:    12,
		TextColor: White,
		BestColor: BrightYellow,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    30,
		MenuItemGap:       10,
		MenuOptions:       []string{"RESUME", "EXIT"},
	}

	Menu = MenuConfig{
		BackgroundColor:   DarkSlate,
		TitleColor:        Orange,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            240,
		MenuStartY:        360,
		MenuItemHeight:    30,
		MenuItemGap:       16,
		MenuOptions:       []string{"PLAY", "QUIT"},
	}

	Debug = DebugConfig{}
}
