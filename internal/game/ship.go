package game

// ShipID is the sequence number of a launched ship, allocated by the Sim.
type ShipID uint64

// Cargo is the ECS component holding a ship's route and payload.
type Cargo struct {
	ID          ShipID
	Sender      PlanetID
	Destination PlanetID
	Payload     Ledger
	Delivered   bool
}

// Kinematics is the ECS component holding a ship's position and velocity.
// Velocity is in pixels per tick; thrust is scaled by dt, integration is not.
type Kinematics struct {
	Pos Vec2
	Vel Vec2
}

// ShipView is a read-only snapshot of an in-flight ship for the renderer.
type ShipView struct {
	ID          ShipID
	Sender      PlanetID
	Destination PlanetID
	Payload     Ledger
	Pos         Vec2
	Vel         Vec2
	Delivered   bool
}

// steerShip homes the ship in on its destination's current position,
// then reports whether it has arrived. Delivered ships never move.
//
// The payload is credited to dest exactly once, on the tick the ship arrives.
func steerShip(c *Cargo, k *Kinematics, dest *Planet, dt, speed, drag float64) bool {
	if c.Delivered {
		return false
	}

	target := dest.Pos()
	thrust := target.Sub(k.Pos).Unit().Scale(speed * dt)

	k.Vel = k.Vel.Add(thrust).Scale(drag)
	k.Pos = k.Pos.Add(k.Vel)

	if k.Pos.DistTo(target) >= dest.PixelRadius() {
		return false
	}

	c.Delivered = true
	dest.Resources = dest.Resources.Add(c.Payload)
	return true
}
