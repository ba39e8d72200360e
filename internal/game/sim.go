package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
)

// Transfer errors returned by DispatchShip.
var (
	ErrUnknownPlanet         = errors.New("unknown planet")
	ErrSamePlanet            = errors.New("sender and destination are the same planet")
	ErrUninhabited           = errors.New("sender has no inhabitants to crew a ship")
	ErrInvalidPayload        = errors.New("payload has a negative quantity")
	ErrCargoLimit            = errors.New("payload exceeds per-resource cargo limit")
	ErrInsufficientResources = errors.New("sender cannot cover payload and ship cost")
)

const (
	commsLogSize  = 50
	commsLogWidth = 38
)

// Sim is the game simulation. It owns the planet arena, the in-flight ships
// and the random source. It is not safe for concurrent use.
type Sim struct {
	Config     Config
	SystemID   uuid.UUID
	Planets    []*Planet
	Log        *MessageLog
	Ticks      uint64
	Generation int    // number of systems generated so far
	Deliveries uint64 // ships docked since the sim started

	seed       uint64
	rng        *rand.Rand
	world      *ecs.World
	shipMap    *ecs.Map2[Cargo, Kinematics]
	shipFilter *ecs.Filter2[Cargo, Kinematics]
	nextShipID ShipID
}

// NewSim validates cfg and generates a fresh solar system from seed.
func NewSim(cfg Config, seed uint64) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sim{
		Config: cfg,
		Log:    NewMessageLog(commsLogSize, commsLogWidth),
		seed:   seed,
		rng:    rand.New(rand.NewPCG(seed, seed>>16|1)),
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate discards the current system and every ship in flight and rolls a
// new set of planets. Ship IDs keep counting from where they were.
func (s *Sim) Regenerate() error {
	planets, attempts, err := GenerateSystem(s.rng, s.Config)
	if err != nil {
		return err
	}

	s.Generation++
	s.Planets = planets
	s.SystemID = uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "solcolony/%d/%d", s.seed, s.Generation))

	s.world = ecs.NewWorld(64)
	s.shipMap = ecs.NewMap2[Cargo, Kinematics](s.world)
	s.shipFilter = ecs.NewFilter2[Cargo, Kinematics](s.world)

	slog.Info("new system",
		"system", s.SystemID,
		"generation", s.Generation,
		"attempts", attempts,
	)
	s.Log.Add(s.Ticks, fmt.Sprintf("Charted a new system of %d planets, %d inhabited.",
		len(planets), CountInhabited(planets)), MsgInfo)
	return nil
}

// Center returns the sun's screen position.
func (s *Sim) Center() Vec2 {
	return Vec2{s.Config.CenterX, s.Config.CenterY}
}

// Planet returns the planet with the given handle.
func (s *Sim) Planet(id PlanetID) (*Planet, bool) {
	if id < 0 || int(id) >= len(s.Planets) {
		return nil, false
	}
	return s.Planets[id], true
}

// PlanetAt returns the first planet whose disc contains point.
func (s *Sim) PlanetAt(point Vec2) (PlanetID, bool) {
	for _, p := range s.Planets {
		if p.Contains(point) {
			return p.ID, true
		}
	}
	return 0, false
}

// Tick advances the whole system by dt seconds: every planet, then every ship,
// then ships that arrived are removed.
func (s *Sim) Tick(dt float64) {
	s.Ticks++

	for _, p := range s.Planets {
		report := p.Tick(dt, s.rng, s.activate)
		if report.NewSpecies {
			s.Log.Add(s.Ticks, fmt.Sprintf("A new species has emerged on %s.", p.Name), MsgDiscovery)
		}
	}

	s.tickShips(dt)
}

// activate releases a queued launch into space as a ship entity.
func (s *Sim) activate(l launch) {
	s.shipMap.NewEntity(
		&Cargo{ID: l.id, Sender: l.from, Destination: l.to, Payload: l.payload},
		&Kinematics{Pos: l.origin},
	)
}

func (s *Sim) tickShips(dt float64) {
	var arrived []ecs.Entity

	query := s.shipFilter.Query()
	for query.Next() {
		cargo, kin := query.Get()
		dest := s.Planets[cargo.Destination]

		if steerShip(cargo, kin, dest, dt, s.Config.ShipSpeed, s.Config.ShipDrag) {
			s.Deliveries++
			slog.Debug("ship delivered",
				"ship", cargo.ID,
				"destination", dest.Name,
				"payload", cargo.Payload.String(),
			)
			s.Log.Add(s.Ticks, fmt.Sprintf("Ship #%d docked at %s.", cargo.ID, dest.Name), MsgDelivery)
		}
		if cargo.Delivered {
			arrived = append(arrived, query.Entity())
		}
	}

	for _, e := range arrived {
		s.world.RemoveEntity(e)
	}
}

// LaunchShip debits payload from the sender and queues a ship for release on
// the sender's next tick. It does not check that the sender can cover the
// payload; callers must check Covers first or the ledger goes negative.
func (s *Sim) LaunchShip(from, to PlanetID, payload Ledger) (ShipID, error) {
	sender, ok := s.Planet(from)
	if !ok {
		return 0, fmt.Errorf("%w: sender %d", ErrUnknownPlanet, from)
	}
	dest, ok := s.Planet(to)
	if !ok {
		return 0, fmt.Errorf("%w: destination %d", ErrUnknownPlanet, to)
	}

	id := s.nextShipID
	s.nextShipID++

	sender.Resources = sender.Resources.Sub(payload)
	if sender.Resources.Negative() {
		slog.Warn("launch overdrew sender",
			"ship", id,
			"sender", sender.Name,
			"ledger", sender.Resources.String(),
		)
	}

	sender.enqueue(launch{
		id:      id,
		from:    from,
		to:      to,
		payload: payload,
		origin:  sender.Pos(),
	})

	slog.Debug("ship launched",
		"ship", id,
		"sender", sender.Name,
		"destination", dest.Name,
		"payload", payload.String(),
	)
	return id, nil
}

// CargoLimits returns the most of each category the sender could load onto
// a single ship. Metal is net of the ship's own construction cost.
func (s *Sim) CargoLimits(from PlanetID) Ledger {
	var limits Ledger
	sender, ok := s.Planet(from)
	if !ok {
		return limits
	}
	for _, k := range AllResources {
		avail := sender.Resources.Get(k)
		if k == Metal {
			avail -= s.Config.ShipMetalUsage
		}
		limits.Set(k, max(0, min(s.Config.MaxCargoPerResource, avail)))
	}
	return limits
}

// DispatchShip is the checked transfer used by the ship designer. It builds a
// ship out of ShipMetalUsage metal and launches it with payload, or refuses
// without touching either ledger.
func (s *Sim) DispatchShip(from, to PlanetID, payload Ledger) (ShipID, error) {
	if err := s.checkDispatch(from, to, payload); err != nil {
		s.Log.Add(s.Ticks, "Launch refused: "+err.Error()+".", MsgWarning)
		return 0, err
	}

	sender := s.Planets[from]
	sender.Resources.Set(Metal, sender.Resources.Get(Metal)-s.Config.ShipMetalUsage)

	shipID, err := s.LaunchShip(from, to, payload)
	if err != nil {
		return 0, err
	}
	s.Log.Add(s.Ticks, fmt.Sprintf("Ship #%d launched from %s to %s.",
		shipID, sender.Name, s.Planets[to].Name), MsgInfo)
	return shipID, nil
}

func (s *Sim) checkDispatch(from, to PlanetID, payload Ledger) error {
	sender, ok := s.Planet(from)
	if !ok {
		return fmt.Errorf("%w: sender %d", ErrUnknownPlanet, from)
	}
	if _, ok := s.Planet(to); !ok {
		return fmt.Errorf("%w: destination %d", ErrUnknownPlanet, to)
	}
	if from == to {
		return ErrSamePlanet
	}
	if !sender.Inhabited() {
		return ErrUninhabited
	}
	if payload.Negative() {
		return ErrInvalidPayload
	}
	for _, k := range AllResources {
		if payload.Get(k) > s.Config.MaxCargoPerResource {
			return fmt.Errorf("%w: %s %d > %d", ErrCargoLimit, ResourceName(k), payload.Get(k), s.Config.MaxCargoPerResource)
		}
	}

	var cost Ledger
	cost.Set(Metal, s.Config.ShipMetalUsage)
	if !sender.Resources.Covers(payload.Add(cost)) {
		return ErrInsufficientResources
	}
	return nil
}

// Ships returns a snapshot of every ship currently in flight.
func (s *Sim) Ships() []ShipView {
	var ships []ShipView
	query := s.shipFilter.Query()
	for query.Next() {
		cargo, kin := query.Get()
		ships = append(ships, ShipView{
			ID:          cargo.ID,
			Sender:      cargo.Sender,
			Destination: cargo.Destination,
			Payload:     cargo.Payload,
			Pos:         kin.Pos,
			Vel:         kin.Vel,
			Delivered:   cargo.Delivered,
		})
	}
	return ships
}
