package arena

import (
	"log"
	"sync"
	"time"
)

// Loop drives a match at a fixed tick rate, either against the wall clock
// with Run or as fast as possible with RunFor.
type Loop struct {
	match    *Match
	tickRate int
	before   func(*Match)
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop prepares a loop. before, if not nil, runs ahead of every tick and
// is where scripted or remote input is queued.
func NewLoop(m *Match, tickRate int, before func(*Match)) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		match:    m,
		tickRate: tickRate,
		before:   before,
		stopChan: make(chan struct{}),
	}
}

// DeltaMs is the simulated time of one tick.
func (l *Loop) DeltaMs() float64 {
	return 1000 / float64(l.tickRate)
}

// Run ticks in real time until Stop is called, the round ends or limit
// passes. A zero limit runs without a deadline.
func (l *Loop) Run(limit time.Duration) {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	var deadline <-chan time.Time
	if limit > 0 {
		timer := time.NewTimer(limit)
		defer timer.Stop()
		deadline = timer.C
	}

	log.Printf("Match loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Match loop stopped")
			return
		case <-deadline:
			log.Printf("Match loop reached its %s limit", limit)
			return
		case <-ticker.C:
			l.Step()
			if l.match.State().Terminal {
				return
			}
		}
	}
}

// RunFor ticks without sleeping until ms of simulated time passed or the
// round ends. It returns the number of ticks run.
func (l *Loop) RunFor(ms float64) int {
	ticks := 0
	for elapsed := 0.0; elapsed < ms; elapsed += l.DeltaMs() {
		l.Step()
		ticks++
		if l.match.State().Terminal {
			break
		}
	}
	return ticks
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// Step runs exactly one tick.
func (l *Loop) Step() {
	if l.before != nil {
		l.before(l.match)
	}
	l.match.Tick(l.DeltaMs())
}
