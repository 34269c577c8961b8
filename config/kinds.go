package config

// Dimension is the gameplay dimension tag that themes and strengthens enemies.
type Dimension int

const (
	DimensionNormal Dimension = iota
	DimensionVoid
	DimensionRadiant
	DimensionLunar
)

func (d Dimension) String() string {
	switch d {
	case DimensionVoid:
		return "void"
	case DimensionRadiant:
		return "radiant"
	case DimensionLunar:
		return "lunar"
	default:
		return "normal"
	}
}

// PowerUpKind enumerates the collectible power-ups.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpDamage
	PowerUpSpeedBoost
	PowerUpRapidFire
	PowerUpPoints
	PowerUpKindCount // Must be last - used for array sizing
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpDamage:
		return "damage"
	case PowerUpSpeedBoost:
		return "speedboost"
	case PowerUpRapidFire:
		return "rapidfire"
	case PowerUpPoints:
		return "points"
	default:
		return "unknown"
	}
}

// EnvKind tags the environment element variant.
type EnvKind int

const (
	EnvAsteroid EnvKind = iota
	EnvGravityWell
	EnvWormhole
	EnvKindCount
)

func (k EnvKind) String() string {
	switch k {
	case EnvAsteroid:
		return "asteroid"
	case EnvGravityWell:
		return "gravityWell"
	case EnvWormhole:
		return "wormhole"
	default:
		return "unknown"
	}
}
