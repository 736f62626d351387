package factory

import (
	"fmt"
	"sort"

	"github.com/automoto/doomerang-duel/assets/animations"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
)

// GenerateAnimations builds one clip per action. Geometry comes from the
// provider when it has the resource loaded and from the configured defaults
// otherwise. Invalid geometry is a configuration error.
func GenerateAnimations(defs cfg.AnimationConfig, provider animations.Provider) (*components.AnimationData, []string, error) {
	animData := &components.AnimationData{
		Clips:        make(map[cfg.StateID]*animations.Clip, len(defs.Clips)),
		Ready:        make(map[cfg.StateID]bool, len(defs.Clips)),
		CurrentSheet: cfg.Idle,
	}

	var unready []string
	for state, def := range defs.Clips {
		name := state.String()
		spec, ready, err := animations.Resolve(provider, name, def)
		if err != nil {
			return nil, nil, fmt.Errorf("%s animation: %w", name, err)
		}
		clip, err := animations.NewClip(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("%s animation: %w", name, err)
		}
		animData.Clips[state] = clip
		animData.Ready[state] = ready
		if !ready {
			unready = append(unready, name)
		}
	}
	sort.Strings(unready)

	if _, ok := animData.Clips[cfg.Idle]; !ok {
		return nil, nil, fmt.Errorf("%w: no idle animation", cfg.ErrInvalidConfig)
	}
	return animData, unready, nil
}
