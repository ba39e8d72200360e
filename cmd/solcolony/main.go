package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/solcolony/internal/game"
	"github.com/spacehole-rogue/solcolony/internal/render"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Solar Colony"

	panelCols = 40
	panelRows = screenHeight / render.GlyphHeight // 45

	// Inspector figures refresh at this rate rather than every frame
	inspectorRefresh = 0.5

	// Longest step handed to the sim, so a stalled window doesn't fling ships
	maxFrameTime = 0.1

	cargoStep = 100
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	atlas    *render.FontAtlas
	renderer *render.GridRenderer
	panel    *render.CellBuffer
	sim      *game.Sim

	last time.Time

	selected  *game.PlanetID
	dragging  bool
	inspected game.Planet // snapshot of the selected planet
	sinceSnap float64
	docked    uint64 // sim.Deliveries at the last snapshot

	manifest *game.Manifest // non-nil while the ship designer is open
}

func NewGame(sim *game.Sim) *Game {
	atlas := render.NewFontAtlas()
	g := &Game{
		atlas:    atlas,
		renderer: render.NewGridRenderer(atlas),
		panel:    render.NewCellBuffer(panelCols, panelRows),
		sim:      sim,
		last:     time.Now(),
	}
	g.updateTitle()
	return g
}

func (g *Game) updateTitle() {
	ebiten.SetWindowTitle(fmt.Sprintf("%s [%s]", title, g.sim.SystemID))
}

func (g *Game) Update() error {
	now := time.Now()
	dt := min(now.Sub(g.last).Seconds(), maxFrameTime)
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.manifest == nil {
			return ebiten.Termination
		}
		g.manifest = nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.sim.Regenerate(); err != nil {
			slog.Error("regenerate system", "error", err)
		} else {
			g.selectPlanet(nil)
			g.manifest = nil
			g.updateTitle()
		}
	}

	g.handleMouse()
	if g.manifest != nil {
		g.handleDesigner()
	}

	g.sim.Tick(dt)

	// A docking changes somebody's stock, so don't wait for the timer
	g.sinceSnap += dt
	if g.sinceSnap >= inspectorRefresh || g.docked != g.sim.Deliveries {
		g.sinceSnap = 0
		g.snapshot()
	}

	g.drawPanel()
	return nil
}

// handleMouse selects the planet under a left click and, when the button is
// released over another planet, opens the ship designer between the two.
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	cursor := game.Vec2{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if mx < panelCols*render.GlyphWidth {
			return
		}
		g.dragging = false
		id, ok := g.sim.PlanetAt(cursor)
		if !ok {
			g.selectPlanet(nil)
			return
		}
		g.selectPlanet(&id)
		g.dragging = true
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging {
		g.dragging = false
		if g.selected == nil {
			return
		}
		from := *g.selected
		to, ok := g.sim.PlanetAt(cursor)
		if !ok || to == from {
			return
		}
		if sender, _ := g.sim.Planet(from); !sender.Inhabited() {
			return
		}
		g.manifest = game.NewManifest(from, to)
	}
}

func (g *Game) handleDesigner() {
	m := g.manifest
	limits := g.sim.CargoLimits(m.From)
	m.Clamp(limits)

	step := int64(cargoStep)
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step *= 10
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		m.MoveCursor(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		m.MoveCursor(1)
	case repeating(ebiten.KeyLeft):
		m.Adjust(-step, limits)
	case repeating(ebiten.KeyRight):
		m.Adjust(step, limits)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if _, err := g.sim.DispatchShip(m.From, m.To, m.Load); err != nil {
			slog.Debug("dispatch refused", "error", err)
		}
		g.manifest = nil
	}
}

// repeating reports a key press on the first frame and then every few
// frames while the key is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 20 && d%4 == 0)
}

func (g *Game) selectPlanet(id *game.PlanetID) {
	g.selected = id
	g.sinceSnap = 0
	g.snapshot()
}

func (g *Game) snapshot() {
	g.docked = g.sim.Deliveries
	if g.selected == nil {
		return
	}
	if p, ok := g.sim.Planet(*g.selected); ok {
		g.inspected = *p
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	ov := render.Overlay{Selected: g.selected, Dragging: g.dragging}
	if g.dragging {
		mx, my := ebiten.CursorPosition()
		ov.DragTo = game.Vec2{X: float64(mx), Y: float64(my)}
	}
	render.DrawSystem(screen, g.sim, ov)
	g.renderer.Draw(screen, g.panel, 0, 0)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", os.Getenv("SOLCOLONY_CONFIG"), "path to a JSON config overriding the defaults")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for system generation")
	debug := flag.Bool("debug", false, "log ship launches and deliveries")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := game.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		cfg, err = game.LoadConfig(data)
		if err != nil {
			log.Fatalf("load config %s: %v", *configPath, err)
		}
	}

	sim, err := game.NewSim(cfg, *seed)
	if err != nil {
		log.Fatalf("start simulation: %v", err)
	}
	slog.Info("simulation started", "seed", *seed, "system", sim.SystemID)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(sim)); err != nil {
		log.Fatal(err)
	}
}
