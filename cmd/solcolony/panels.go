package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/spacehole-rogue/solcolony/internal/game"
	"github.com/spacehole-rogue/solcolony/internal/render"
)

const (
	commsRow = 30
	commsMax = panelRows - commsRow - 2
	barWidth = 12
)

func (g *Game) drawPanel() {
	buf := g.panel
	buf.Clear()

	if g.manifest != nil {
		g.drawDesigner(buf)
	} else {
		g.drawInspector(buf)
	}

	buf.WriteString(1, commsRow, "--- Comms ---", render.ColorHeader)
	for i, msg := range g.sim.Log.Recent(commsMax) {
		buf.WriteString(1, commsRow+1+i, msg.Text, msgColor(msg.Priority))
	}

	buf.WriteString(1, panelRows-1, "Drag: Ship  N: New system  ESC: Quit", render.ColorDim)
}

func (g *Game) drawInspector(buf *render.CellBuffer) {
	if g.selected == nil {
		buf.WriteString(1, 1, "No planet selected...", render.ColorDim)
		return
	}
	p := &g.inspected
	r := p.Resources

	buf.WriteString(1, 1, p.Name, render.ColorTitle)

	y := 3
	line := func(format string, args ...any) {
		buf.WriteString(2, y, fmt.Sprintf(format, args...), render.ColorText)
		y++
	}
	header := func(s string) {
		y++
		buf.WriteString(1, y, s, render.ColorHeader)
		y++
	}

	buf.WriteString(1, y, "Physical Properties", render.ColorHeader)
	y++
	line("Distance from sun: %d AU", int(p.DistanceFromSun/80))
	line("Radius: %d miles", int(p.Radius))
	line("Mass: %s", humanize.SIWithDigits(p.Mass*1000, 2, "g"))
	line("Gravity: %.2f g", p.Gravity)
	line("Speed: %d miles/s", int(p.Speed))

	header("Life")
	line("Population: %s inhabitants", humanize.Comma(r.Get(game.Population)))
	buf.Bar(2, y, barWidth, r.Get(game.Population), int64(p.Capacity), render.ColorDiscovery)
	y++
	line("Species: %s species", humanize.Comma(r.Get(game.Species)))
	line("Inhabitants: %s", p.InhabitantName())
	line("Biodiversity: %d", int(p.Biodiversity))

	header("Resources")
	line("Metal: %s tons", humanize.Comma(r.Get(game.Metal)))
	line("Wood: %s tons", humanize.Comma(r.Get(game.Wood)))
	line("Water: %s cubic feet", humanize.Comma(r.Get(game.Water)))
	line("Food: %s units", humanize.Comma(r.Get(game.Food)))
	buf.Bar(2, y, barWidth, r.Get(game.Food), p.FoodCap, render.ColorWarning)
	y++
	line("Weaponry: %s units", humanize.Comma(r.Get(game.Weaponry)))
}

func (g *Game) drawDesigner(buf *render.CellBuffer) {
	m := g.manifest
	sender, ok := g.sim.Planet(m.From)
	if !ok {
		return
	}
	dest, _ := g.sim.Planet(m.To)
	limits := g.sim.CargoLimits(m.From)

	buf.WriteString(1, 1, "Ship Designer", render.ColorTitle)
	buf.WriteString(1, 3, sender.Name+" to "+dest.Name, render.ColorHeader)

	buf.WriteString(1, 5, "Sender's Resources", render.ColorHeader)
	for i, k := range game.ManifestRows {
		buf.WriteString(2, 6+i, game.ResourceName(k)+": "+humanize.Comma(sender.Resources.Get(k)), render.ColorText)
	}

	buf.WriteString(1, 11, "Cargo", render.ColorHeader)
	for i, k := range game.ManifestRows {
		y := 12 + i
		fg := uint8(render.ColorText)
		if i == m.Cursor {
			buf.Set(1, y, render.GlyphArrow, render.ColorTitle, render.ColorPanel)
			fg = render.ColorTitle
		}
		buf.WriteString(3, y, game.ResourceName(k), fg)
		buf.Bar(14, y, barWidth, m.Load.Get(k), limits.Get(k), render.ColorInfo)
		buf.WriteString(14+barWidth+1, y, humanize.Comma(m.Load.Get(k)), fg)
	}

	buf.WriteString(1, 17, fmt.Sprintf("Ship cost: %d metal", g.sim.Config.ShipMetalUsage), render.ColorDim)
	buf.WriteString(1, 19, "Up/Down: Row  Left/Right: Load", render.ColorDim)
	buf.WriteString(1, 20, "Shift: x10  Enter: Launch", render.ColorDim)
	buf.WriteString(1, 21, "ESC: Cancel", render.ColorDim)
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return render.ColorCritical
	case game.MsgWarning:
		return render.ColorWarning
	case game.MsgDiscovery:
		return render.ColorDiscovery
	case game.MsgDelivery:
		return render.ColorDelivery
	default:
		return render.ColorInfo
	}
}
