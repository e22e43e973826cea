package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed  float64 `yaml:"walkSpeed"`  // units per second
	ClimbSpeed float64 `yaml:"climbSpeed"` // units per tick

	// Lives
	StartingLives int `yaml:"startingLives"`

	// Respawn point (feet position)
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`

	// Below this Y the player is returned to the start point
	FallOutY float64 `yaml:"fallOutY"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`

	// Colour multiplier while powered up
	PowerTint color.RGBA `yaml:"-"`
}

// PatrolConfig contains configuration for the patrolling character (Olive)
type PatrolConfig struct {
	Speed float64 `yaml:"speed"`
	MinX  float64 `yaml:"minX"`
	MaxX  float64 `yaml:"maxX"`

	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// EnemyConfig contains configuration for the chasing enemy (Brutus)
type EnemyConfig struct {
	Speed          float64 `yaml:"speed"`          // horizontal units per second
	ClimbSpeed     float64 `yaml:"climbSpeed"`     // vertical units per tick
	ClimbThreshold float64 `yaml:"climbThreshold"` // vertical gap before taking a ladder
	RespawnDelay   float64 `yaml:"respawnDelay"`   // seconds parked after a defeat
	DefeatScore    int     `yaml:"defeatScore"`

	// Off-screen position while defeated
	ParkX float64 `yaml:"parkX"`
	ParkY float64 `yaml:"parkY"`

	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// PickupConfig contains spawner and scoring values for hearts and spinach
type PickupConfig struct {
	HeartInterval  float64 `yaml:"heartInterval"` // seconds between hearts
	HeartOffsetY   float64 `yaml:"heartOffsetY"`  // spawn offset below Olive
	HeartScore     int     `yaml:"heartScore"`
	HeartSwayFreq  float64 `yaml:"heartSwayFreq"`  // radians per second
	HeartSwaySpeed float64 `yaml:"heartSwaySpeed"` // peak horizontal units per second
	HeartFallSpeed float64 `yaml:"heartFallSpeed"` // units per second
	HeartSize      float64 `yaml:"heartSize"`

	SpinachInterval float64 `yaml:"spinachInterval"` // seconds between spinach cans
	SpinachMinX     float64 `yaml:"spinachMinX"`
	SpinachMaxX     float64 `yaml:"spinachMaxX"`
	SpinachY        float64 `yaml:"spinachY"`
	SpinachSize     float64 `yaml:"spinachSize"`
	PowerDuration   float64 `yaml:"powerDuration"` // seconds
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`            // units per second squared
	VerticalSpeedClamp float64 `yaml:"verticalSpeedClamp"` // max units per tick
}

// LevelConfig describes how the ASCII layout maps onto the world
type LevelConfig struct {
	TileWidth      float64 `yaml:"tileWidth"`
	TileHeight     float64 `yaml:"tileHeight"`
	OriginX        float64 `yaml:"originX"`
	OriginY        float64 `yaml:"originY"`
	PlatformHeight float64 `yaml:"platformHeight"`
	SolidChar      string  `yaml:"solidChar"`
	EmptyChar      string  `yaml:"emptyChar"`

	PlatformColor color.RGBA `yaml:"-"`
	LadderColor   color.RGBA `yaml:"-"`
}

// HUDConfig contains HUD label placement
type HUDConfig struct {
	ScoreX, ScoreY float64
	LivesX, LivesY float64
	ScoreColor     color.RGBA
	LivesColor     color.RGBA
	FontSize       float64
	PulseDuration  float32 // seconds the score label grows after a change
	PulseScale     float32
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	Title           string
	Hint            string
	TitleSize       float64
	TextSize        float64
	DropDistance    float32 // pixels the title slides in from
	DropDuration    float32 // seconds
}

// ScreenShakeConfig contains shake strengths (pixels) and lengths (ticks)
type ScreenShakeConfig struct {
	LifeLostIntensity float64
	LifeLostDuration  int
	DefeatIntensity   float64
	DefeatDuration    int
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// Config holds general game configuration
type Config struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	TPS        int        `yaml:"tps"`
	Background color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool // Start with the F1 overlay enabled
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Patrol PatrolConfig
var Enemy EnemyConfig
var Pickup PickupConfig
var Physics PhysicsConfig
var Level LevelConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Pause PauseConfig
var ScreenShake ScreenShakeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	Grey   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	Brown  = color.RGBA{R: 150, G: 75, B: 0, A: 255}
	Night  = color.RGBA{R: 15, G: 15, B: 25, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration block to its built-in defaults.
func Reset() {
	C = &Config{
		Width:      800,
		Height:     600,
		TPS:        60,
		Background: Night,
	}

	Physics = PhysicsConfig{
		Gravity:            1200,
		VerticalSpeedClamp: 16,
	}

	Player = PlayerConfig{
		WalkSpeed:       250,
		ClimbSpeed:      4,
		StartingLives:   3,
		StartX:          400,
		StartY:          410,
		FallOutY:        600,
		CollisionWidth:  14,
		CollisionHeight: 14,
		PowerTint:       Yellow,
	}

	Patrol = PatrolConfig{
		Speed:           100,
		MinX:            100,
		MaxX:            700,
		CollisionWidth:  24,
		CollisionHeight: 40,
	}

	Enemy = EnemyConfig{
		Speed:           110,
		ClimbSpeed:      2,
		ClimbThreshold:  50,
		RespawnDelay:    5,
		ParkX:           -100,
		ParkY:           -100,
		DefeatScore:     100,
		CollisionWidth:  28,
		CollisionHeight: 40,
	}

	Pickup = PickupConfig{
		HeartInterval:   3,
		HeartOffsetY:    20,
		HeartScore:      10,
		HeartSwayFreq:   4,
		HeartSwaySpeed:  50,
		HeartFallSpeed:  75,
		HeartSize:       40, // 16px sprite with a 2.5x pickup area
		SpinachInterval: 10,
		SpinachMinX:     100,
		SpinachMaxX:     700,
		SpinachY:        200,
		SpinachSize:     40,
		PowerDuration:   6,
	}

	Level = LevelConfig{
		TileWidth:      28,
		TileHeight:     65,
		OriginX:        0,
		OriginY:        150,
		PlatformHeight: 8,
		SolidChar:      "=",
		EmptyChar:      " ",
		PlatformColor:  Brown,
		LadderColor:    color.RGBA{R: 40, G: 80, B: 102, A: 102}, // (100,200,255) at 0.4 alpha, premultiplied
	}

	HUD = HUDConfig{
		ScoreX:        20,
		ScoreY:        20,
		LivesX:        20,
		LivesY:        50,
		ScoreColor:    White,
		LivesColor:    Red,
		FontSize:      24,
		PulseDuration: 0.25,
		PulseScale:    1.3,
	}

	GameOver = GameOverConfig{
		BackgroundColor: Night,
		TitleColor:      Red,
		TextColor:       White,
		HintColor:       Grey,
		Title:           "GAME OVER",
		Hint:            "PRESS SPACE TO PLAY AGAIN",
		TitleSize:       48,
		TextSize:        32,
		DropDistance:    120,
		DropDuration:    0.6,
	}

	ScreenShake = ScreenShakeConfig{
		LifeLostIntensity: 8,
		LifeLostDuration:  20,
		DefeatIntensity:   4,
		DefeatDuration:    12,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 180},
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Esc: Resume",
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}

// TickDuration returns the simulated seconds covered by one update tick.
func TickDuration() float64 {
	if C.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(C.TPS)
}
