package client

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-duel/arena"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/fonts"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	barWidth      = 300
	barHeight     = 18
	staminaHeight = 8
	barMargin     = 24
	trailSeconds  = 0.6
)

var (
	colorBarBack    = color.RGBA{40, 40, 40, 220}
	colorHealth     = color.RGBA{200, 40, 40, 255}
	colorTrail      = color.RGBA{240, 200, 80, 255}
	colorStamina    = color.RGBA{60, 160, 220, 255}
	colorText       = color.RGBA{240, 240, 240, 255}
	colorTextShadow = color.RGBA{0, 0, 0, 200}
)

// HealthTrail lags behind the real health so recent damage stays visible.
type HealthTrail struct {
	value  float64
	target float64
	tween  *gween.Tween
}

func NewHealthTrail(v float64) *HealthTrail {
	return &HealthTrail{value: v, target: v}
}

// Update moves the trail toward health over dt seconds. Healing snaps.
func (t *HealthTrail) Update(health, dt float64) {
	if health >= t.value {
		t.value, t.target, t.tween = health, health, nil
		return
	}
	if health != t.target {
		t.target = health
		t.tween = gween.New(float32(t.value), float32(health), trailSeconds, ease.OutQuad)
	}
	if t.tween == nil {
		return
	}
	v, done := t.tween.Update(float32(dt))
	t.value = float64(v)
	if done {
		t.value = t.target
		t.tween = nil
	}
}

func (t *HealthTrail) Value() float64 {
	return t.value
}

// HUD draws vitals, round information and the result banner.
type HUD struct {
	trails [len(cfg.Roles)]*HealthTrail
}

func NewHUD(m *arena.Match) *HUD {
	h := &HUD{}
	for _, role := range cfg.Roles {
		h.trails[role] = NewHealthTrail(m.Snapshot(role).Health)
	}
	return h
}

func (h *HUD) Update(m *arena.Match, dt float64) {
	for _, role := range cfg.Roles {
		h.trails[role].Update(m.Snapshot(role).Health, dt)
	}
}

func (h *HUD) Draw(screen *ebiten.Image, m *arena.Match, banner string) {
	width := float32(cfg.C.Width)
	for _, role := range cfg.Roles {
		s := m.Snapshot(role)
		x := float32(barMargin)
		if role == cfg.Autonomous {
			x = width - barMargin - barWidth
		}
		drawVitals(screen, x, barMargin, s, h.trails[role].Value())
		label := "PLAYER"
		if role == cfg.Autonomous {
			label = "CPU"
		}
		if s.Combo > 1 {
			label = fmt.Sprintf("%s  %d HIT COMBO", label, s.Combo)
		}
		drawText(screen, label, fonts.Small, float64(x), barMargin+barHeight+staminaHeight+8, text.AlignStart)
	}

	state := m.State()
	center := float64(width) / 2
	drawText(screen, fmt.Sprintf("ROUND %d", state.Round), fonts.Bold, center, barMargin-4, text.AlignCenter)
	drawText(screen, m.StageName(), fonts.Small, center, barMargin+22, text.AlignCenter)

	if banner != "" {
		drawText(screen, banner, fonts.Title, center, float64(cfg.C.Height)/3, text.AlignCenter)
	}
}

func drawVitals(screen *ebiten.Image, x, y float32, s systems.Snapshot, trail float64) {
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, colorBarBack, false)
	if s.MaxHealth > 0 {
		vector.DrawFilledRect(screen, x, y, barWidth*float32(trail/s.MaxHealth), barHeight, colorTrail, false)
		vector.DrawFilledRect(screen, x, y, barWidth*float32(s.Health/s.MaxHealth), barHeight, colorHealth, false)
	}

	sy := y + barHeight + 2
	vector.DrawFilledRect(screen, x, sy, barWidth, staminaHeight, colorBarBack, false)
	if s.MaxStamina > 0 {
		vector.DrawFilledRect(screen, x, sy, barWidth*float32(s.Stamina/s.MaxStamina), staminaHeight, colorStamina, false)
	}
}

func drawText(screen *ebiten.Image, s string, name fonts.FontName, x, y float64, align text.Align) {
	face := name.Get()
	for i, c := range []color.Color{colorTextShadow, colorText} {
		op := &text.DrawOptions{}
		op.PrimaryAlign = align
		off := float64(1 - i)
		op.GeoM.Translate(x+off, y+off)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, s, face, op)
	}
}
