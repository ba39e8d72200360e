package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// ErrGenerationExhausted means no planet set met the habitability rule
// within Config.MaxGenerationAttempts tries.
var ErrGenerationExhausted = errors.New("solar system generation exhausted")

// GenerateSystem rolls planet sets until the number of inhabited planets falls
// within [MinInhabited, MaxInhabited]. Planets are ordered outward from the sun.
// It returns the accepted set and how many attempts it took.
func GenerateSystem(rng *rand.Rand, cfg Config) ([]*Planet, int, error) {
	planets := make([]*Planet, 0, cfg.NumPlanets)

	for attempt := 1; attempt <= cfg.MaxGenerationAttempts; attempt++ {
		planets = planets[:0]

		dist := cfg.SunRadius + cfg.FirstOrbitGap
		for i := 0; i < cfg.NumPlanets; i++ {
			p := GeneratePlanet(PlanetID(i), dist, rng, cfg)
			planets = append(planets, p)
			dist += p.PixelRadius()*2 + cfg.OrbitMargin
		}

		inhabited := CountInhabited(planets)
		if inhabited >= cfg.MinInhabited && inhabited <= cfg.MaxInhabited {
			slog.Info("solar system generated",
				"planets", len(planets),
				"inhabited", inhabited,
				"attempts", attempt,
			)
			return planets, attempt, nil
		}
	}

	return nil, cfg.MaxGenerationAttempts, fmt.Errorf("%w: no set of %d planets with %d-%d inhabited after %d attempts",
		ErrGenerationExhausted, cfg.NumPlanets, cfg.MinInhabited, cfg.MaxInhabited, cfg.MaxGenerationAttempts)
}

// CountInhabited returns the number of planets with a nonzero population.
func CountInhabited(planets []*Planet) int {
	n := 0
	for _, p := range planets {
		if p.Inhabited() {
			n++
		}
	}
	return n
}
