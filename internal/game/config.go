package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Physical constants.
const (
	GravityConst  = 6.674e-11 // m^3 kg^-1 s^-2
	EarthG        = 9.807     // m/s^2
	EarthRadius   = 3959.0    // miles
	EarthDensity  = 5514.0    // kg/m^3
	MetresPerMile = 1609.344
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the simulation.
// Distances and radii on screen are in pixels; planet radius is in miles.
type Config struct {
	// System layout
	CenterX       float64 `json:"center_x"`
	CenterY       float64 `json:"center_y"`
	SunRadius     float64 `json:"sun_radius"`
	FirstOrbitGap float64 `json:"first_orbit_gap"` // gap between sun edge and first orbit
	OrbitMargin   float64 `json:"orbit_margin"`    // extra gap between neighbouring planets
	NumPlanets    int     `json:"num_planets"`
	MinInhabited  int     `json:"min_inhabited"`
	MaxInhabited  int     `json:"max_inhabited"`

	// Whole-set regeneration gives up after this many tries.
	MaxGenerationAttempts int `json:"max_generation_attempts"`

	// Planet generation ranges
	MinPopulation    int64   `json:"min_population"`
	MaxPopulation    int64   `json:"max_population"`
	MinEarthLikeness float64 `json:"min_earth_likeness"`
	MaxEarthLikeness float64 `json:"max_earth_likeness"`
	MinDensity       float64 `json:"min_density"` // people per square mile
	MaxDensity       float64 `json:"max_density"`
	MinPlanetSpeed   float64 `json:"min_planet_speed"`
	MaxPlanetSpeed   float64 `json:"max_planet_speed"`
	RadiusToPixel    float64 `json:"radius_to_pixel"` // pixels per mile of planet radius

	// Economy
	GrowthRate float64 `json:"growth_rate"`
	FoodCap    int64   `json:"food_cap"`
	FarmerCap  int64   `json:"farmer_cap"`

	// Ships
	ShipSpeed           float64 `json:"ship_speed"`
	ShipDrag            float64 `json:"ship_drag"` // velocity multiplier per tick
	ShipMetalUsage      int64   `json:"ship_metal_usage"`
	MaxCargoPerResource int64   `json:"max_cargo_per_resource"`
}

// DefaultConfig returns the stock tuning for a 1280x720 window.
func DefaultConfig() Config {
	return Config{
		CenterX:               800,
		CenterY:               360,
		SunRadius:             30,
		FirstOrbitGap:         100,
		OrbitMargin:           50,
		NumPlanets:            5,
		MinInhabited:          2,
		MaxInhabited:          4,
		MaxGenerationAttempts: 10000,

		MinPopulation:    1000,
		MaxPopulation:    1000000,
		MinEarthLikeness: 0.3,
		MaxEarthLikeness: 2.0,
		MinDensity:       0.005,
		MaxDensity:       0.05,
		MinPlanetSpeed:   20,
		MaxPlanetSpeed:   60,
		RadiusToPixel:    0.0025,

		GrowthRate: 0.1,
		FoodCap:    10000,
		FarmerCap:  50000,

		ShipSpeed:           2.0,
		ShipDrag:            0.98,
		ShipMetalUsage:      500,
		MaxCargoPerResource: 10000,
	}
}

// LoadConfig overlays JSON settings onto DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would make generation or ticking meaningless.
func (c Config) Validate() error {
	switch {
	case c.NumPlanets <= 0:
		return fmt.Errorf("%w: num_planets must be positive, got %d", ErrInvalidConfig, c.NumPlanets)
	case c.MinInhabited < 0 || c.MinInhabited > c.MaxInhabited:
		return fmt.Errorf("%w: inhabited range [%d,%d] is empty", ErrInvalidConfig, c.MinInhabited, c.MaxInhabited)
	case c.MinInhabited > c.NumPlanets:
		return fmt.Errorf("%w: min_inhabited %d exceeds num_planets %d", ErrInvalidConfig, c.MinInhabited, c.NumPlanets)
	case c.MaxGenerationAttempts <= 0:
		return fmt.Errorf("%w: max_generation_attempts must be positive", ErrInvalidConfig)
	case c.MinPopulation <= 0 || c.MinPopulation > c.MaxPopulation:
		return fmt.Errorf("%w: population range [%d,%d]", ErrInvalidConfig, c.MinPopulation, c.MaxPopulation)
	case c.MinEarthLikeness <= 0 || c.MinEarthLikeness >= c.MaxEarthLikeness:
		return fmt.Errorf("%w: earth likeness range [%g,%g]", ErrInvalidConfig, c.MinEarthLikeness, c.MaxEarthLikeness)
	case c.MinDensity < 0 || c.MinDensity > c.MaxDensity:
		return fmt.Errorf("%w: density range [%g,%g]", ErrInvalidConfig, c.MinDensity, c.MaxDensity)
	case c.MinPlanetSpeed < 0 || c.MinPlanetSpeed > c.MaxPlanetSpeed:
		return fmt.Errorf("%w: planet speed range [%g,%g]", ErrInvalidConfig, c.MinPlanetSpeed, c.MaxPlanetSpeed)
	case c.SunRadius < 0 || c.RadiusToPixel <= 0:
		return fmt.Errorf("%w: sun_radius and radius_to_pixel must be positive", ErrInvalidConfig)
	case c.ShipDrag <= 0 || c.ShipDrag >= 1:
		return fmt.Errorf("%w: ship_drag must be in (0,1), got %g", ErrInvalidConfig, c.ShipDrag)
	case c.ShipSpeed <= 0:
		return fmt.Errorf("%w: ship_speed must be positive", ErrInvalidConfig)
	case c.FoodCap < 0 || c.FarmerCap < 0 || c.ShipMetalUsage < 0 || c.MaxCargoPerResource < 0:
		return fmt.Errorf("%w: caps and costs must not be negative", ErrInvalidConfig)
	}
	return nil
}
