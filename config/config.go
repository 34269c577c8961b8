package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second)
	Speed      float64
	BoundsSlop float64 // how far past the playfield edge the ship may drift

	// Combat
	MaxHealth     float64
	Radius        float64
	RamDamage     float64 // damage taken from one enemy contact check
	DefaultShip   string
	StartRotation float64
}

// EnemyConfig contains enemy spawn and stat configuration
type EnemyConfig struct {
	BaseSpeed      float64 // pixels per second before any multiplier
	Radius         float64
	DurableRadius  float64
	BaseHealth     float64
	DurableHealth  float64
	SpawnOffset    float64 // distance outside the edge an enemy appears at
	SpeedFloor     float64 // 0.7 in speed = base * (floor + enemySpeed*scale*modifier)
	SpeedScale     float64
	DurableFromLvl float64 // durableChance = level * DurableFromLvl

	BaseSpawnRate       float64
	SpawnRatePerLevel   float64
	PerformanceDerating float64 // extra factor when performance mode is on

	// Per-dimension multipliers applied at spawn time
	Dimensions map[Dimension]DimensionConfig
}

// DimensionConfig describes how a dimension alters the enemies spawned in it
type DimensionConfig struct {
	SizeMultiplier   float64
	SpeedMultiplier  float64
	HealthMultiplier float64
	Color            color.RGBA
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	SpeedScale float64 // ship projectile speed is in pixels per 60Hz frame
	MaxAge     time.Duration
}

// ScoreConfig contains scoring configuration
type ScoreConfig struct {
	BasePoints        int
	DurableMultiplier int
	StreakTimeout     time.Duration
	SurvivalStep      time.Duration // every step adds MultiplierPerStep
	MultiplierPerStep float64
	StreakBonus       float64
	MaxStreakBonus    float64
	MinMultiplier     float64
	MaxMultiplier     float64
	TierScore         int // a ship upgrade becomes available every TierScore points
	MaxUpgradeScore   int
}

// PowerUpTypeConfig describes one power-up kind
type PowerUpTypeConfig struct {
	Duration   time.Duration
	Multiplier float64
	DropWeight float64
	Color      color.RGBA
}

// PowerUpConfig contains power-up configuration
type PowerUpConfig struct {
	Radius          float64
	Lifetime        time.Duration
	MinInterval     time.Duration
	MaxInterval     time.Duration
	DropChance      float64
	MinPointsReward int
	MaxPointsReward int
	Types           map[PowerUpKind]PowerUpTypeConfig
}

// EnvironmentConfig contains configuration for asteroids, gravity wells and wormholes
type EnvironmentConfig struct {
	AsteroidMinInterval time.Duration
	AsteroidMaxInterval time.Duration
	AsteroidMinSize     float64
	AsteroidMaxSize     float64
	AsteroidHealthStep  float64 // health = ceil(size / step)
	AsteroidMinSpeed    float64
	AsteroidMaxSpeed    float64
	AsteroidDamage      float64
	AsteroidFragmentMin int
	AsteroidFragmentMax int
	FragmentMinSize     float64
	AsteroidMaxSpin     float64

	WellMinInterval    time.Duration
	WellMaxInterval    time.Duration
	WellMinRadius      float64
	WellMaxRadius      float64
	WellMinStrength    float64
	WellMaxStrength    float64
	WellDamageRatio    float64 // damage radius = radius * ratio
	WellDamagePerSec   float64
	WellMinLifespan    time.Duration
	WellMaxLifespan    time.Duration
	WellProjectilePull float64
	WellPullScale      float64 // strength 1 pulls this many pixels per second at the centre

	WormholeMinInterval time.Duration
	WormholeMaxInterval time.Duration
	WormholeMinRadius   float64
	WormholeMaxRadius   float64
	WormholeCooldown    time.Duration
	WormholeMinLifespan time.Duration
	WormholeMaxLifespan time.Duration
	TeleportPadding     float64

	SpawnPadding float64
	ExitMargin   float64
}

// EventConfig contains the special event chain configuration
type EventConfig struct {
	PrimaryName   string
	SecondaryName string

	ScoreThreshold int
	CountdownFrom  int
	CountdownStep  time.Duration
	ActiveDuration time.Duration
	SecondaryDelay time.Duration

	DefaultMultiplier       float64
	PrimaryMultiplier       float64
	PostPrimaryMultiplier   float64
	SecondaryMultiplier     float64
	PrimarySpawnModifier    float64
	SecondarySpawnModifier  float64
	DefaultSpawnModifier    float64
	SecondaryDimension      Dimension
	EventPickupBonusPoints  int
	DimensionShiftClearsAll bool
}

// PerformanceConfig contains performance governor configuration
type PerformanceConfig struct {
	SampleInterval       time.Duration
	WindowSize           int
	MediumFPSThreshold   float64
	MaxReduction         float64
	LagFactor            float64
	MildFactor           float64
	MildCapRatio         float64
	RecoveryFactor       float64
	BaselineReduction    float64
	DefaultLowFPS        float64
	TierPresets          map[RenderQualityTier]TierPreset
	ParticleBudgetByTier map[RenderQualityTier]int
}

// TierPreset holds the governor settings a quality tier starts with
type TierPreset struct {
	InitialReduction float64
	LowFPSThreshold  float64
	ExplosionCount   int
	AllowEnvironment bool
}

// NetworkConfig contains peer sync configuration
type NetworkConfig struct {
	PublishEvery int // publish the local ship every N ticks
	Version      string
	PeerStale    time.Duration
}

// UIConfig contains HUD layout values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	HUDLineHeight   int

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	HUDTextColor     color.RGBA
	BackgroundColor  color.RGBA
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	TPS         int
	SpaceMargin int // broadphase space extends this far past each edge
	CellSize    int
	MaxFrameDT  time.Duration
	AppName     string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Score ScoreConfig
var PowerUp PowerUpConfig
var Environment EnvironmentConfig
var Events EventConfig
var Perf PerformanceConfig
var Network NetworkConfig
var UI UIConfig
var GameOver GameOverConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 136, G: 136, B: 136, A: 255}
	Silver       = color.RGBA{R: 200, G: 210, B: 230, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Space        = color.RGBA{R: 5, G: 5, B: 16, A: 255}
)

func init() {
	C = &Config{
		Width:       1280,
		Height:      720,
		TPS:         60,
		SpaceMargin: 160,
		CellSize:    32,
		MaxFrameDT:  100 * time.Millisecond,
		AppName:     "cosmic_survivor",
	}

	Player = PlayerConfig{
		Speed:       195, // 3.25px per 60Hz frame
		BoundsSlop:  100,
		MaxHealth:   3,
		Radius:      15,
		RamDamage:   1,
		DefaultShip: ShipDefault,
	}

	Enemy = EnemyConfig{
		BaseSpeed:      48, // 0.8px per 60Hz frame
		Radius:         20,
		DurableRadius:  30,
		BaseHealth:     1,
		DurableHealth:  3,
		SpawnOffset:    40,
		SpeedFloor:     0.7,
		SpeedScale:     0.7,
		DurableFromLvl: 0.8,

		BaseSpawnRate:       0.01,
		SpawnRatePerLevel:   0.02,
		PerformanceDerating: 0.75,

		Dimensions: map[Dimension]DimensionConfig{
			DimensionNormal:  {SizeMultiplier: 1, SpeedMultiplier: 1, HealthMultiplier: 1, Color: Red},
			DimensionVoid:    {SizeMultiplier: 1.2, SpeedMultiplier: 0.8, HealthMultiplier: 2, Color: Purple},
			DimensionRadiant: {SizeMultiplier: 1, SpeedMultiplier: 1.2, HealthMultiplier: 1, Color: Orange},
			DimensionLunar:   {SizeMultiplier: 1.1, SpeedMultiplier: 0.9, HealthMultiplier: 1, Color: Silver},
		},
	}

	Projectile = ProjectileConfig{
		SpeedScale: 60,
		MaxAge:     4 * time.Second,
	}

	Score = ScoreConfig{
		BasePoints:        100,
		DurableMultiplier: 2,
		StreakTimeout:     5 * time.Second,
		SurvivalStep:      30 * time.Second,
		MultiplierPerStep: 0.1,
		StreakBonus:       0.1,
		MaxStreakBonus:    2,
		MinMultiplier:     1,
		MaxMultiplier:     5,
		TierScore:         10000,
		MaxUpgradeScore:   50000,
	}

	PowerUp = PowerUpConfig{
		Radius:          15,
		Lifetime:        15 * time.Second,
		MinInterval:     10 * time.Second,
		MaxInterval:     20 * time.Second,
		DropChance:      0.3,
		MinPointsReward: 500,
		MaxPointsReward: 1000,
		Types: map[PowerUpKind]PowerUpTypeConfig{
			PowerUpShield:     {Duration: 10 * time.Second, Multiplier: 1, DropWeight: 1, Color: LightBlue},
			PowerUpDamage:     {Duration: 8 * time.Second, Multiplier: 1.5, DropWeight: 1.2, Color: Red},
			PowerUpSpeedBoost: {Duration: 12 * time.Second, Multiplier: 1.5, DropWeight: 1.5, Color: Yellow},
			PowerUpRapidFire:  {Duration: 8 * time.Second, Multiplier: 0.5, DropWeight: 1.2, Color: Orange},
			PowerUpPoints:     {DropWeight: 2, Color: BrightGreen},
		},
	}

	Environment = EnvironmentConfig{
		AsteroidMinInterval: 15 * time.Second,
		AsteroidMaxInterval: 25 * time.Second,
		AsteroidMinSize:     30,
		AsteroidMaxSize:     50,
		AsteroidHealthStep:  15,
		AsteroidMinSpeed:    30,
		AsteroidMaxSpeed:    90,
		AsteroidDamage:      1,
		AsteroidFragmentMin: 3,
		AsteroidFragmentMax: 5,
		FragmentMinSize:     15,
		AsteroidMaxSpin:     1.5,

		WellMinInterval:    25 * time.Second,
		WellMaxInterval:    35 * time.Second,
		WellMinRadius:      100,
		WellMaxRadius:      150,
		WellMinStrength:    0.02,
		WellMaxStrength:    0.07,
		WellDamageRatio:    0.3,
		WellDamagePerSec:   0.5,
		WellMinLifespan:    15 * time.Second,
		WellMaxLifespan:    25 * time.Second,
		WellProjectilePull: 0.5,
		WellPullScale:      2000,

		WormholeMinInterval: 40 * time.Second,
		WormholeMaxInterval: 60 * time.Second,
		WormholeMinRadius:   40,
		WormholeMaxRadius:   60,
		WormholeCooldown:    3 * time.Second,
		WormholeMinLifespan: 10 * time.Second,
		WormholeMaxLifespan: 15 * time.Second,
		TeleportPadding:     100,

		SpawnPadding: 100,
		ExitMargin:   100,
	}

	Events = EventConfig{
		PrimaryName:   "radiant",
		SecondaryName: "lunar",

		ScoreThreshold: 10000,
		CountdownFrom:  5,
		CountdownStep:  time.Second,
		ActiveDuration: 120 * time.Second,
		SecondaryDelay: 15 * time.Second,

		DefaultMultiplier:      1.0,
		PrimaryMultiplier:      2.0,
		PostPrimaryMultiplier:  1.5,
		SecondaryMultiplier:    3.0,
		DefaultSpawnModifier:   1.0,
		PrimarySpawnModifier:   1.0,
		SecondarySpawnModifier: 0.91,
		SecondaryDimension:     DimensionLunar,
		EventPickupBonusPoints: 500,

		DimensionShiftClearsAll: true,
	}

	Perf = PerformanceConfig{
		SampleInterval:     time.Second,
		WindowSize:         5,
		MediumFPSThreshold: 50,
		MaxReduction:       6.0,
		LagFactor:          2.0,
		MildFactor:         1.25,
		MildCapRatio:       0.7,
		RecoveryFactor:     0.8,
		BaselineReduction:  1.0,
		DefaultLowFPS:      40,
		TierPresets: map[RenderQualityTier]TierPreset{
			QualityFull:     {InitialReduction: 1.0, LowFPSThreshold: 40, ExplosionCount: 4, AllowEnvironment: true},
			QualityReduced:  {InitialReduction: 2.0, LowFPSThreshold: 30, ExplosionCount: 2, AllowEnvironment: true},
			QualityMinimal:  {InitialReduction: 2.0, LowFPSThreshold: 30, ExplosionCount: 1, AllowEnvironment: true},
			QualityDisabled: {InitialReduction: 3.0, LowFPSThreshold: 20, ExplosionCount: 0, AllowEnvironment: false},
		},
		ParticleBudgetByTier: map[RenderQualityTier]int{
			QualityFull:     60,
			QualityReduced:  30,
			QualityMinimal:  15,
			QualityDisabled: 0,
		},
	}

	Network = NetworkConfig{
		PublishEvery: 3,
		Version:      "0.1.0",
		PeerStale:    3 * time.Second,
	}

	UI = UIConfig{
		HealthBarWidth:   200,
		HealthBarHeight:  12,
		HealthBarMargin:  16,
		HUDLineHeight:    16,
		HealthBarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 200},
		HealthBarFgColor: BrightGreen,
		HUDTextColor:     White,
		BackgroundColor:  Space,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   BlackOverlay,
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            220,
		MenuStartY:        360,
		MenuItemHeight:    32,
		MenuOptions:       []string{"Retry", "Quit"},
	}
}
