package config

import "fmt"

// BotDifficulty affects reaction time and aggression
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

var difficultyNames = map[BotDifficulty]string{
	BotDifficultyEasy:   "easy",
	BotDifficultyNormal: "normal",
	BotDifficultyHard:   "hard",
}

func (d BotDifficulty) String() string {
	if n, ok := difficultyNames[d]; ok {
		return n
	}
	return "unknown"
}

// ParseBotDifficulty maps a difficulty name back to its level.
func ParseBotDifficulty(name string) (BotDifficulty, error) {
	for d, n := range difficultyNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown bot difficulty %q", ErrInvalidConfig, name)
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionScale float64 // Multiplier on every decision cooldown
	Aggression    float64 // 0..1, scales the attack weight
}

// BotWeights is a categorical distribution over the decision engine's choices.
// Weights need not sum to one.
type BotWeights struct {
	Attack   float64
	Block    float64
	Retreat  float64
	Approach float64
}

// BotTier is the behaviour for one distance band.
type BotTier struct {
	Weights    BotWeights
	CooldownMs float64 // Time until the next decision
}

// BotConfigData holds all decision engine configuration
type BotConfigData struct {
	CloseRange  float64 // Distance below which the close tier applies
	MediumRange float64 // Distance below which the medium tier applies

	Close  BotTier
	Medium BotTier
	Far    BotTier

	ApproachStop float64 // An approach walk ends at this distance
	RetreatStop  float64 // A retreat walk ends at this distance

	BlockHoldMs        float64 // How long an autonomous guard stays up
	ReactiveBlockBoost float64 // Block weight multiplier while the opponent attacks

	Difficulty   BotDifficulty
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Level returns the settings for the configured difficulty.
func (b BotConfigData) Level() BotDifficultyConfig {
	if d, ok := b.Difficulties[b.Difficulty]; ok {
		return d
	}
	return BotDifficultyConfig{ReactionScale: 1, Aggression: 0.5}
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		CloseRange:  120,
		MediumRange: 300,
		Close: BotTier{
			Weights:    BotWeights{Attack: 0.45, Block: 0.30, Retreat: 0.25},
			CooldownMs: 500,
		},
		Medium: BotTier{
			Weights:    BotWeights{Attack: 0.3, Approach: 0.7},
			CooldownMs: 800,
		},
		Far: BotTier{
			Weights:    BotWeights{Approach: 1},
			CooldownMs: 1000,
		},
		ApproachStop:       70,
		RetreatStop:        200,
		BlockHoldMs:        600,
		ReactiveBlockBoost: 2,
		Difficulty:         BotDifficultyNormal,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionScale: 1.5,
				Aggression:    0.4,
			},
			BotDifficultyNormal: {
				ReactionScale: 1.0,
				Aggression:    0.6,
			},
			BotDifficultyHard: {
				ReactionScale: 0.6,
				Aggression:    0.8,
			},
		},
	}
}

func (b BotConfigData) clone() BotConfigData {
	out := b
	out.Difficulties = make(map[BotDifficulty]BotDifficultyConfig, len(b.Difficulties))
	for k, v := range b.Difficulties {
		out.Difficulties[k] = v
	}
	return out
}
