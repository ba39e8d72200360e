package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spacehole-rogue/solcolony/internal/game"
)

const shipRadius = 2

// Overlay is the interaction state drawn on top of the system.
type Overlay struct {
	Selected *game.PlanetID
	Dragging bool
	DragTo   game.Vec2
}

// DrawSystem paints the sun, orbits, planets and ships in flight.
func DrawSystem(screen *ebiten.Image, sim *game.Sim, ov Overlay) {
	screen.Fill(SpaceColor)

	c := sim.Center()
	cx, cy := float32(c.X), float32(c.Y)

	for _, p := range sim.Planets {
		vector.StrokeCircle(screen, cx, cy, float32(p.DistanceFromSun), 1, OrbitColor, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(sim.Config.SunRadius), SunColor, true)

	for _, p := range sim.Planets {
		pos := p.Pos()
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(p.PixelRadius()), p.Color, true)
	}

	for _, s := range sim.Ships() {
		vector.DrawFilledCircle(screen, float32(s.Pos.X), float32(s.Pos.Y), shipRadius, ShipColor, true)
	}

	if ov.Selected == nil {
		return
	}
	sel, ok := sim.Planet(*ov.Selected)
	if !ok {
		return
	}
	pos := sel.Pos()
	vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(sel.PixelRadius()+4), 1.5, SelectColor, true)
	if ov.Dragging {
		vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(ov.DragTo.X), float32(ov.DragTo.Y), 1, DragLineColor, true)
	}
}
