package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed stages.yaml
var defaultStagesYAML []byte

// StageConfig describes one arena in the round rotation.
type StageConfig struct {
	Name  string  `yaml:"name"`
	Floor float64 `yaml:"floor"` // 0 = use MatchConfig.Floor
}

// InitialPositions are the horizontal spawn points of each role.
type InitialPositions struct {
	Controlled float64 `yaml:"controlled"`
	Autonomous float64 `yaml:"autonomous"`
}

// MatchConfig is the match/round configuration supplied by the embedding
// application.
type MatchConfig struct {
	Width            float64          `yaml:"width"`
	Floor            float64          `yaml:"floor"`
	BoundsPadding    float64          `yaml:"boundsPadding"`
	InitialPositions InitialPositions `yaml:"initialPositions"`
	Stages           []StageConfig    `yaml:"stages"`
}

// DefaultMatchConfig returns the embedded arena layout.
func DefaultMatchConfig() *MatchConfig {
	mc, err := ParseMatchConfig(defaultStagesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded stages.yaml: %v", err))
	}
	return mc
}

// LoadMatchConfig reads and validates a match configuration file.
func LoadMatchConfig(path string) (*MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read match config: %w", err)
	}
	mc, err := ParseMatchConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mc, nil
}

// ParseMatchConfig decodes a YAML document. Missing width and stages fall
// back to the window width and a single unnamed stage.
func ParseMatchConfig(data []byte) (*MatchConfig, error) {
	var mc MatchConfig
	if err := yaml.Unmarshal(data, &mc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if mc.Width == 0 {
		mc.Width = float64(C.Width)
	}
	if len(mc.Stages) == 0 {
		mc.Stages = []StageConfig{{Name: "Arena"}}
	}
	if err := mc.Validate(Fighter.Width); err != nil {
		return nil, err
	}
	return &mc, nil
}

// Validate checks that both fighters fit between the padded bounds.
func (mc *MatchConfig) Validate(fighterWidth float64) error {
	minX, maxX := mc.Bounds(fighterWidth)
	switch {
	case mc.Width <= 0:
		return fmt.Errorf("%w: stage width %.1f", ErrInvalidConfig, mc.Width)
	case mc.BoundsPadding < 0:
		return fmt.Errorf("%w: bounds padding %.1f", ErrInvalidConfig, mc.BoundsPadding)
	case maxX < minX:
		return fmt.Errorf("%w: stage %.1f too narrow for %.1f wide fighters", ErrInvalidConfig, mc.Width, fighterWidth)
	case len(mc.Stages) == 0:
		return fmt.Errorf("%w: no stages", ErrInvalidConfig)
	}
	for role, x := range map[Role]float64{
		Controlled: mc.InitialPositions.Controlled,
		Autonomous: mc.InitialPositions.Autonomous,
	} {
		if x < minX || x > maxX {
			return fmt.Errorf("%w: %s spawn x=%.1f outside [%.1f, %.1f]", ErrInvalidConfig, role, x, minX, maxX)
		}
	}
	for i, s := range mc.Stages {
		if mc.StageFloor(i) <= 0 {
			return fmt.Errorf("%w: stage %d (%s) has no floor", ErrInvalidConfig, i, s.Name)
		}
	}
	return nil
}

// Bounds returns the allowed range of a fighter's left edge.
func (mc *MatchConfig) Bounds(fighterWidth float64) (minX, maxX float64) {
	return mc.BoundsPadding, mc.Width - fighterWidth - mc.BoundsPadding
}

// StageFloor is the floor height of stage i, wrapping over the rotation.
func (mc *MatchConfig) StageFloor(i int) float64 {
	if len(mc.Stages) == 0 {
		return mc.Floor
	}
	s := mc.Stages[i%len(mc.Stages)]
	if s.Floor > 0 {
		return s.Floor
	}
	return mc.Floor
}

// StageName is the display name of stage i.
func (mc *MatchConfig) StageName(i int) string {
	if len(mc.Stages) == 0 {
		return ""
	}
	return mc.Stages[i%len(mc.Stages)].Name
}

// SpawnX returns the initial horizontal position of a role.
func (mc *MatchConfig) SpawnX(r Role) float64 {
	if r == Autonomous {
		return mc.InitialPositions.Autonomous
	}
	return mc.InitialPositions.Controlled
}
