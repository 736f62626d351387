// Command duelsim runs duels without a window: a scripted input source plays
// the controlled fighter against the decision engine and every event is
// logged.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/doomerang-duel/arena"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems"
)

func main() {
	configPath := flag.String("config", "", "Match configuration YAML (empty = embedded default)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	rounds := flag.Int("rounds", 0, "Rounds to play (0 = one per stage)")
	script := flag.String("script", "aggressive", "Controlled fighter script: idle, aggressive, turtle, random")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal, hard")
	tickRate := flag.Int("tickrate", 60, "Simulation ticks per second")
	timeout := flag.Duration("timeout", 2*time.Minute, "Time limit per round (wall clock with -realtime)")
	realtime := flag.Bool("realtime", false, "Tick against the wall clock")
	flag.Parse()

	mc := cfg.DefaultMatchConfig()
	if *configPath != "" {
		loaded, err := cfg.LoadMatchConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load match config: %v", err)
		}
		mc = loaded
	}
	level, err := cfg.ParseBotDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("Invalid difficulty: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *rounds <= 0 {
		*rounds = len(mc.Stages)
	}

	tuning := cfg.DefaultTuning()
	input, err := NewScript(*script, rand.New(rand.NewSource(*seed+2)), tuning.Combat.AttackRange)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}

	m, err := arena.New(mc, arena.WithSeed(*seed), arena.WithTuning(tuning), arena.WithDifficulty(level))
	if err != nil {
		log.Fatalf("Failed to create match: %v", err)
	}

	wins := map[cfg.Role]int{}
	m.OnDamage(func(e systems.DamageEvent) {
		log.Printf("[round %d] %s hit %s for %.1f (health %.1f, blocked %t, combo %d)",
			m.State().Round, e.Attacker, e.Target, e.Amount, e.Health, e.Blocked, e.Combo)
	})
	m.OnTerminal(func(e systems.TerminalEvent) {
		wins[e.Winner]++
		log.Printf("[round %d] %s defeats %s", e.Round, e.Winner, e.Loser)
	})

	loop := arena.NewLoop(m, *tickRate, func(m *arena.Match) {
		self, opp := m.Snapshot(cfg.Controlled), m.Snapshot(cfg.Autonomous)
		for _, cmd := range input.Commands(self, opp) {
			m.Command(cfg.Controlled, cmd)
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Interrupted")
		loop.Stop()
		os.Exit(1)
	}()

	log.Printf("Simulating %d rounds (seed %d, script %s, difficulty %s)", *rounds, *seed, *script, level)
	for round := 1; round <= *rounds; round++ {
		if round > 1 {
			m.AdvanceRound()
		}
		if *realtime {
			loop.Run(*timeout)
		} else {
			loop.RunFor(float64(timeout.Milliseconds()))
		}
		if !m.State().Terminal {
			log.Printf("[round %d] time limit reached: %.1f vs %.1f health",
				round, m.Snapshot(cfg.Controlled).Health, m.Snapshot(cfg.Autonomous).Health)
		}
	}

	log.Printf("Result: %s %d - %d %s", cfg.Controlled, wins[cfg.Controlled], wins[cfg.Autonomous], cfg.Autonomous)
}
