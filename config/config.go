package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when tuning or match configuration cannot
// produce a playable match.
var ErrInvalidConfig = errors.New("invalid configuration")

// FighterConfig contains all fighter-related configuration values
type FighterConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Vitals
	Health  float64
	Stamina float64

	// Movement
	MoveSpeed     float64
	WalkStopSpeed float64 // |vx| below which Walk settles back to Idle
	DodgeImpulse  float64

	// Timers (ms)
	AttackCooldownMs float64
	DodgeCooldownMs  float64

	// Stamina
	AttackStaminaCost float64
	DodgeStaminaCost  float64
	StaminaRegenPerMs float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	AttackRange    float64 // Horizontal distance at which a swing misses
	BaseDamage     float64
	DamageJitter   float64 // Base damage varies by +/- this amount
	BlockReduction float64 // Damage multiplier while the defender blocks
	HitDelayMs     float64 // Delay between the hit frame and damage, 0 = same tick
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity         float64
	Friction        float64 // Horizontal velocity multiplier per tick
	FacingThreshold float64 // Minimum |vx| used for facing without an opponent
	DropInHeight    float64 // Fighters fall into a new round from this height
}

// Tuning bundles every value a match needs. Matches copy it so tests can tune
// one match without touching the package globals.
type Tuning struct {
	Fighter   FighterConfig
	Combat    CombatConfig
	Physics   PhysicsConfig
	Animation AnimationConfig
	Bot       BotConfigData
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Animation AnimationConfig

func init() {
	C = &Config{
		Width:  1024,
		Height: 600,
	}

	Fighter = FighterConfig{
		Width:  80,
		Height: 80,

		Health:  100,
		Stamina: 100,

		MoveSpeed:     5,
		WalkStopSpeed: 0.5,
		DodgeImpulse:  8,

		AttackCooldownMs: 500,
		DodgeCooldownMs:  800,

		AttackStaminaCost: 20,
		DodgeStaminaCost:  30,
		StaminaRegenPerMs: 0.03, // 0.5 per 60 Hz frame
	}

	Combat = CombatConfig{
		AttackRange:    100,
		BaseDamage:     12,
		DamageJitter:   0,
		BlockReduction: 0.7,
		HitDelayMs:     0,
	}

	Physics = PhysicsConfig{
		Gravity:         0.8,
		Friction:        0.85,
		FacingThreshold: 0.5,
		DropInHeight:    60,
	}

	Animation = defaultAnimations()
}

// DefaultTuning returns a deep copy of the global configuration.
func DefaultTuning() Tuning {
	return Tuning{
		Fighter:   Fighter,
		Combat:    Combat,
		Physics:   Physics,
		Animation: Animation.clone(),
		Bot:       Bot.clone(),
	}
}

// Validate reports the first value that cannot produce a playable match.
func (t Tuning) Validate() error {
	f := t.Fighter
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return fmt.Errorf("%w: fighter size %.1fx%.1f", ErrInvalidConfig, f.Width, f.Height)
	case f.Health <= 0:
		return fmt.Errorf("%w: fighter health %.1f", ErrInvalidConfig, f.Health)
	case f.Stamina < 0 || f.AttackStaminaCost < 0 || f.DodgeStaminaCost < 0 || f.StaminaRegenPerMs < 0:
		return fmt.Errorf("%w: negative stamina value", ErrInvalidConfig)
	case f.AttackCooldownMs < 0 || f.DodgeCooldownMs < 0:
		return fmt.Errorf("%w: negative cooldown", ErrInvalidConfig)
	case f.MoveSpeed < 0 || f.DodgeImpulse < 0 || f.WalkStopSpeed < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidConfig)
	}

	c := t.Combat
	switch {
	case c.AttackRange <= 0:
		return fmt.Errorf("%w: attack range %.1f", ErrInvalidConfig, c.AttackRange)
	case c.BaseDamage < 0 || c.DamageJitter < 0 || c.DamageJitter > c.BaseDamage:
		return fmt.Errorf("%w: damage %.1f +/- %.1f", ErrInvalidConfig, c.BaseDamage, c.DamageJitter)
	case c.BlockReduction < 0 || c.BlockReduction >= 1:
		return fmt.Errorf("%w: block reduction %.2f not in [0,1)", ErrInvalidConfig, c.BlockReduction)
	case c.HitDelayMs < 0:
		return fmt.Errorf("%w: hit delay %.1fms", ErrInvalidConfig, c.HitDelayMs)
	}

	p := t.Physics
	if p.Friction <= 0 || p.Friction > 1 {
		return fmt.Errorf("%w: friction %.2f not in (0,1]", ErrInvalidConfig, p.Friction)
	}
	if p.Gravity < 0 {
		return fmt.Errorf("%w: gravity %.2f", ErrInvalidConfig, p.Gravity)
	}
	if p.DropInHeight < 0 || (p.DropInHeight > 0 && p.Gravity == 0) {
		return fmt.Errorf("%w: drop-in height %.1f with gravity %.2f", ErrInvalidConfig, p.DropInHeight, p.Gravity)
	}

	for id := range StateToName {
		spec, ok := t.Animation.Clips[id]
		if !ok {
			return fmt.Errorf("%w: no clip for %s", ErrInvalidConfig, id)
		}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("%s clip: %w", id, err)
		}
	}

	b := t.Bot
	if b.CloseRange <= 0 || b.MediumRange <= b.CloseRange {
		return fmt.Errorf("%w: bot ranges %.1f/%.1f", ErrInvalidConfig, b.CloseRange, b.MediumRange)
	}
	if b.ApproachStop <= 0 || b.RetreatStop <= b.ApproachStop {
		return fmt.Errorf("%w: bot walk stops %.1f/%.1f", ErrInvalidConfig, b.ApproachStop, b.RetreatStop)
	}
	for _, tier := range []BotTier{b.Close, b.Medium, b.Far} {
		if tier.CooldownMs <= 0 {
			return fmt.Errorf("%w: bot cooldown %.1fms", ErrInvalidConfig, tier.CooldownMs)
		}
	}
	return nil
}
