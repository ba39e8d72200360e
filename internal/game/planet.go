package game

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// PlanetID is a stable index into the world's planet arena.
type PlanetID int

// PlanetPalette is the fixed set of planet colours, in light/dark pairs.
var PlanetPalette = [14]color.RGBA{
	{50, 150, 232, 255}, {40, 170, 110, 255},
	{101, 58, 232, 255}, {90, 48, 200, 255},
	{219, 74, 224, 255}, {190, 65, 200, 255},
	{224, 74, 81, 255}, {210, 90, 81, 255},
	{224, 174, 74, 255}, {210, 150, 50, 255},
	{179, 224, 74, 255}, {160, 200, 50, 255},
	{72, 181, 83, 255}, {50, 200, 78, 255},
}

// Planet is a body orbiting the sun with its own economy.
type Planet struct {
	ID   PlanetID
	Name string

	// Orbit
	DistanceFromSun float64 // pixels
	Angle           float64 // radians
	Speed           float64 // linear orbital speed, pixels per second

	// Physical properties
	EarthLikeness float64
	Radius        float64 // miles
	Mass          float64 // kg
	Gravity       float64 // relative to Earth surface gravity
	Biodiversity  float64 // 1-10
	Capacity      float64 // max population the surface supports
	Color         color.RGBA

	FoodCap   int64
	FarmerCap int64

	Resources Ledger

	pos         Vec2
	center      Vec2
	pixelRadius float64
	growthRate  float64
	outgoing    []launch
}

// launch is a ship that has been paid for but not yet released into space.
type launch struct {
	id      ShipID
	from    PlanetID
	to      PlanetID
	payload Ledger
	origin  Vec2
}

// TickReport summarises notable things that happened during a planet tick.
type TickReport struct {
	NewSpecies bool
}

// randRange returns a uniform float in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// GeneratePlanet rolls a new planet orbiting at the given distance.
func GeneratePlanet(id PlanetID, distance float64, rng *rand.Rand, cfg Config) *Planet {
	p := &Planet{
		ID:              id,
		DistanceFromSun: distance,
		FoodCap:         cfg.FoodCap,
		FarmerCap:       cfg.FarmerCap,
		center:          Vec2{cfg.CenterX, cfg.CenterY},
		growthRate:      cfg.GrowthRate,
	}

	// 40% of planets start empty
	var pop int64
	if rng.Float64() >= 0.4 {
		pop = int64(randRange(rng, float64(cfg.MinPopulation), float64(cfg.MaxPopulation)))
	}

	p.EarthLikeness = randRange(rng, cfg.MinEarthLikeness, cfg.MaxEarthLikeness)
	p.Radius = p.EarthLikeness * EarthRadius

	r := p.Radius * MetresPerMile
	p.Mass = 4.0 / 3.0 * math.Pi * r * r * r * EarthDensity
	p.Gravity = GravityConst * p.Mass / (r * r) / EarthG

	p.Capacity = 4 * math.Pi * p.Radius * p.Radius * randRange(rng, cfg.MinDensity, cfg.MaxDensity)

	// Earth-likeness rescaled onto 1-10; bigger, more earth-like worlds are more diverse
	p.Biodiversity = (p.EarthLikeness-cfg.MinEarthLikeness)*9/(cfg.MaxEarthLikeness-cfg.MinEarthLikeness) + 1

	p.Angle = randRange(rng, 0, 360) * math.Pi / 180
	p.Speed = randRange(rng, cfg.MinPlanetSpeed, cfg.MaxPlanetSpeed)
	p.Color = PlanetPalette[rng.IntN(len(PlanetPalette))]
	p.Name = RandomName(rng)
	p.pixelRadius = p.Radius * cfg.RadiusToPixel

	p.Resources.Set(Population, min(pop, int64(p.Capacity)))
	p.pos = p.Position(p.center)
	return p
}

// Tick advances the planet's orbit and economy by dt seconds.
// Ships queued since the last tick are handed to release.
func (p *Planet) Tick(dt float64, rng *rand.Rand, release func(launch)) TickReport {
	var report TickReport

	p.Angle += math.Atan(p.Speed/p.DistanceFromSun) * dt
	p.pos = p.Position(p.center)

	for len(p.outgoing) > 0 {
		last := len(p.outgoing) - 1
		l := p.outgoing[last]
		p.outgoing = p.outgoing[:last]
		release(l)
	}

	res := &p.Resources
	pop := res.Get(Population)

	// Logistic growth towards capacity
	if pop > 0 {
		a := (p.Capacity - float64(pop)) / float64(pop)
		pop = int64(p.Capacity / (1 + a*math.Exp(-p.growthRate*dt)))
		res.Set(Population, pop)
	}

	farmers := min(pop, p.FarmerCap)

	// New species appear at 1 in 100001, boosted by biodiversity
	odds := max(int(100001/p.Biodiversity), 1)
	if rng.IntN(odds) < 1 {
		res.Set(Species, res.Get(Species)+1)
		report.NewSpecies = true
	}

	res.Set(Metal, res.Get(Metal)+int64(randRange(rng, 0, 10000)))
	res.Set(Wood, res.Get(Wood)+int64(randRange(rng, 0, 10000)))
	res.Set(Water, res.Get(Water)+int64(randRange(rng, 0, 10000)))

	// Weapons are only restocked while someone lives here
	if pop > 0 {
		res.Set(Weaponry, int64(randRange(rng, 0, 10000)))
	}

	// Each farmer grows food in proportion to biodiversity; everyone eats
	var food int64
	if pop > 0 {
		food = int64(float64(farmers) * p.Biodiversity / math.Sqrt(float64(pop)))
	}
	res.Set(Food, min(food, p.FoodCap))

	return report
}

// Position returns the planet's current screen position around center.
func (p *Planet) Position(center Vec2) Vec2 {
	dir := Vec2{math.Cos(p.Angle), math.Sin(p.Angle)}
	return dir.Scale(p.DistanceFromSun).Add(center)
}

// Pos returns the position computed on the last tick.
func (p *Planet) Pos() Vec2 { return p.pos }

// PixelRadius is the on-screen radius used for drawing, hit-testing and docking.
func (p *Planet) PixelRadius() float64 { return p.pixelRadius }

// Contains reports whether point lies inside the planet's disc.
func (p *Planet) Contains(point Vec2) bool {
	return point.Sub(p.pos).LenSq() < p.pixelRadius*p.pixelRadius
}

// Inhabited reports whether anyone lives on the planet.
func (p *Planet) Inhabited() bool {
	return p.Resources.Get(Population) > 0
}

// InhabitantName returns the demonym, or NoInhabitants for an empty planet.
func (p *Planet) InhabitantName() string {
	if !p.Inhabited() {
		return NoInhabitants
	}
	return Demonym(p.Name)
}

// QueuedShips returns how many launched ships are waiting for the next tick.
func (p *Planet) QueuedShips() int { return len(p.outgoing) }

func (p *Planet) enqueue(l launch) {
	p.outgoing = append(p.outgoing, l)
}
