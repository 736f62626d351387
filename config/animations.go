package config

import "github.com/automoto/doomerang-duel/assets/animations"

// AnimationConfig holds the default clip geometry per action. Providers may
// override frame count and duration once their sprite sheets are loaded.
type AnimationConfig struct {
	Clips map[StateID]animations.ClipSpec
}

// Sprite sheets play at 8 fps unless noted.
const defaultFrameMs = 125.0

func defaultAnimations() AnimationConfig {
	return AnimationConfig{
		Clips: map[StateID]animations.ClipSpec{
			Idle:     {Frames: 4, FrameDurationMs: defaultFrameMs, Loop: true},
			Walk:     {Frames: 8, FrameDurationMs: defaultFrameMs, Loop: true},
			Attack:   {Frames: 6, FrameDurationMs: defaultFrameMs, HitWindow: &animations.HitWindow{First: 2, Last: 4}},
			Block:    {Frames: 4, FrameDurationMs: defaultFrameMs, Loop: true},
			Dodge:    {Frames: 6, FrameDurationMs: 100},
			Defeated: {Frames: 1, FrameDurationMs: defaultFrameMs}, // freezes on its only frame
		},
	}
}

func (a AnimationConfig) clone() AnimationConfig {
	out := AnimationConfig{Clips: make(map[StateID]animations.ClipSpec, len(a.Clips))}
	for id, spec := range a.Clips {
		if spec.HitWindow != nil {
			w := *spec.HitWindow
			spec.HitWindow = &w
		}
		out.Clips[id] = spec
	}
	return out
}
