package animations

import (
	"errors"
	"fmt"
)

// ErrInvalidClip is returned when a clip is built from unusable geometry.
var ErrInvalidClip = errors.New("invalid animation clip")

// HitWindow is an inclusive range of frames during which an attack connects.
type HitWindow struct {
	First int
	Last  int
}

// ClipSpec is the immutable part of a clip.
type ClipSpec struct {
	Frames          int
	FrameDurationMs float64
	Loop            bool
	HitWindow       *HitWindow // nil = never connects
}

// Validate checks the geometry and returns a wrapped ErrInvalidClip.
func (s ClipSpec) Validate() error {
	if s.Frames <= 0 {
		return fmt.Errorf("%w: frame count %d", ErrInvalidClip, s.Frames)
	}
	if s.FrameDurationMs <= 0 {
		return fmt.Errorf("%w: frame duration %.2fms", ErrInvalidClip, s.FrameDurationMs)
	}
	if w := s.HitWindow; w != nil {
		if w.First < 0 || w.Last >= s.Frames || w.First > w.Last {
			return fmt.Errorf("%w: hit window %d-%d outside %d frames", ErrInvalidClip, w.First, w.Last, s.Frames)
		}
	}
	return nil
}

// DurationMs is the time needed to play every frame once.
func (s ClipSpec) DurationMs() float64 {
	return float64(s.Frames) * s.FrameDurationMs
}

// Clip tracks the playhead of one named action. It never looks at the
// fighter that owns it.
type Clip struct {
	spec     ClipSpec
	frame    int
	elapsed  float64 // ms accumulated inside the current frame
	finished bool
	loops    int
}

func NewClip(spec ClipSpec) (*Clip, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Clip{spec: spec}, nil
}

// Advance moves the playhead forward. A single call steps at most one frame,
// so a long delta slows the clip down rather than skipping a hit window.
func (c *Clip) Advance(deltaMs float64) {
	if c.finished || deltaMs <= 0 {
		return
	}
	c.elapsed += deltaMs
	if c.elapsed < c.spec.FrameDurationMs {
		return
	}
	c.elapsed -= c.spec.FrameDurationMs
	if c.elapsed >= c.spec.FrameDurationMs {
		c.elapsed = 0
	}

	if c.frame+1 < c.spec.Frames {
		c.frame++
		return
	}
	if c.spec.Loop {
		c.frame = 0
		c.loops++
		return
	}
	// Stay on the last frame.
	c.finished = true
	c.elapsed = 0
}

func (c *Clip) Frame() int {
	return c.frame
}

func (c *Clip) Finished() bool {
	return c.finished
}

// Loops is the number of times a looping clip has wrapped since Reset.
func (c *Clip) Loops() int {
	return c.loops
}

func (c *Clip) Spec() ClipSpec {
	return c.spec
}

// InHitWindow is the only source of truth for whether an attack can connect
// on the current frame.
func (c *Clip) InHitWindow() bool {
	w := c.spec.HitWindow
	if w == nil {
		return false
	}
	return c.frame >= w.First && c.frame <= w.Last
}

func (c *Clip) Reset() {
	c.frame = 0
	c.elapsed = 0
	c.finished = false
	c.loops = 0
}
