// Package client presents an arena.Match with ebiten and feeds it keyboard
// and gamepad commands for the controlled fighter.
package client

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/doomerang-duel/arena"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResultDelayMs is how long the round result stays on screen before the
// next round starts.
const ResultDelayMs = 1000

var (
	stageColors = []color.RGBA{
		{52, 48, 70, 255},
		{28, 26, 32, 255},
		{60, 92, 64, 255},
	}
	colorFloor = color.RGBA{90, 70, 50, 255}

	actionColors = map[cfg.StateID]color.RGBA{
		cfg.Idle:     {180, 180, 180, 255},
		cfg.Walk:     {150, 200, 150, 255},
		cfg.Attack:   {230, 90, 60, 255},
		cfg.Block:    {80, 120, 230, 255},
		cfg.Dodge:    {200, 200, 80, 255},
		cfg.Defeated: {90, 90, 90, 255},
	}
)

// Game implements ebiten.Game around a single match.
type Game struct {
	mc       *cfg.MatchConfig
	opts     []arena.Option
	match    *arena.Match
	hud      *HUD
	device   *Ebiten
	controls Controls

	result      *systems.TerminalEvent
	resultTimer float64
	finished    bool
}

// NewGame builds the first match. opts are reused for restarts.
func NewGame(mc *cfg.MatchConfig, opts ...arena.Option) (*Game, error) {
	g := &Game{
		mc:     mc,
		opts:   opts,
		device: &Ebiten{Bindings: DefaultBindings()},
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	m, err := arena.New(g.mc, g.opts...)
	if err != nil {
		return fmt.Errorf("new match: %w", err)
	}
	m.OnTerminal(func(e systems.TerminalEvent) {
		g.result = &e
		g.resultTimer = 0
	})
	m.OnRoundAdvance(func(e systems.RoundAdvanceEvent) {
		log.Printf("Round %d: %s", e.Round, e.StageName)
	})
	g.match = m
	g.hud = NewHUD(m)
	g.controls = Controls{}
	g.result = nil
	g.finished = false
	return nil
}

func (g *Game) Update() error {
	dt := 1000 / float64(ebiten.TPS())
	g.device.refresh()

	if g.device.JustPressed(ActionRestart) {
		if err := g.restart(); err != nil {
			return err
		}
	}

	for _, cmd := range g.controls.Commands(g.device) {
		g.match.Command(cfg.Controlled, cmd)
	}
	g.match.Tick(dt)
	g.hud.Update(g.match, dt/1000)

	if g.result != nil && !g.finished {
		g.resultTimer += dt
		if g.resultTimer >= ResultDelayMs {
			g.afterResult()
		}
	}
	return nil
}

// afterResult advances to the next stage when the player won and stages
// remain. Otherwise the banner stays until a restart.
func (g *Game) afterResult() {
	rounds := len(g.mc.Stages)
	if g.result.Winner == cfg.Controlled && g.result.Round < rounds {
		g.result = nil
		g.match.AdvanceRound()
		return
	}
	g.finished = true
}

func (g *Game) banner() string {
	if g.result == nil {
		return ""
	}
	switch {
	case g.result.Winner != cfg.Controlled:
		return "DEFEAT - PRESS R"
	case g.finished:
		return "VICTORY - PRESS R"
	default:
		return "ROUND WON"
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	state := g.match.State()
	screen.Fill(stageColors[state.Stage%len(stageColors)])

	floor := float32(g.mc.StageFloor(state.Stage))
	vector.DrawFilledRect(screen, 0, floor, float32(cfg.C.Width), float32(cfg.C.Height)-floor, colorFloor, false)

	for _, role := range cfg.Roles {
		drawFighter(screen, g.match.Snapshot(role))
	}
	g.hud.Draw(screen, g.match, g.banner())
}

// drawFighter renders the body rectangle with a facing marker. Sprite art is
// not bundled, so ready and unready animations share this placeholder.
func drawFighter(screen *ebiten.Image, s systems.Snapshot) {
	c, ok := actionColors[s.Action]
	if !ok {
		c = actionColors[cfg.Idle]
	}
	if !s.Ready {
		c.A = 200
	}
	x, y, w, h := float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height)
	vector.DrawFilledRect(screen, x, y, w, h, c, false)

	eye := x + w*0.7
	if s.Facing < 0 {
		eye = x + w*0.3
	}
	vector.DrawFilledRect(screen, eye-4, y+h*0.25, 8, 8, color.Black, false)

	if s.Action == cfg.Attack {
		reach := x + w
		if s.Facing < 0 {
			reach = x - w/2
		}
		vector.DrawFilledRect(screen, reach, y+h*0.4, w/2, 6, c, false)
	}
	if s.Role == cfg.Controlled {
		vector.StrokeRect(screen, x, y, w, h, 2, colorText, false)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
