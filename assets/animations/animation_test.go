package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attackSpec() ClipSpec {
	return ClipSpec{
		Frames:          6,
		FrameDurationMs: 125,
		HitWindow:       &HitWindow{First: 2, Last: 4},
	}
}

func TestNewClipRejectsBadGeometry(t *testing.T) {
	cases := map[string]ClipSpec{
		"zero frames":     {Frames: 0, FrameDurationMs: 100},
		"negative frames": {Frames: -2, FrameDurationMs: 100},
		"zero duration":   {Frames: 4, FrameDurationMs: 0},
		"negative window": {Frames: 4, FrameDurationMs: 100, HitWindow: &HitWindow{First: -1, Last: 1}},
		"window past end": {Frames: 4, FrameDurationMs: 100, HitWindow: &HitWindow{First: 2, Last: 4}},
		"inverted window": {Frames: 4, FrameDurationMs: 100, HitWindow: &HitWindow{First: 3, Last: 1}},
	}
	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewClip(spec)
			require.ErrorIs(t, err, ErrInvalidClip)
		})
	}
}

func TestOneShotClipFinishesOnLastFrame(t *testing.T) {
	c, err := NewClip(attackSpec())
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		c.Advance(125)
		assert.Equal(t, i, c.Frame())
		assert.False(t, c.Finished())
	}

	c.Advance(125)
	assert.Equal(t, 5, c.Frame())
	assert.True(t, c.Finished())

	c.Advance(500)
	assert.Equal(t, 5, c.Frame(), "finished clip must not move")
}

func TestLoopingClipWraps(t *testing.T) {
	c, err := NewClip(ClipSpec{Frames: 4, FrameDurationMs: 100, Loop: true})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		c.Advance(100)
	}
	assert.Equal(t, 0, c.Frame())
	assert.Equal(t, 1, c.Loops())
	assert.False(t, c.Finished())
}

func TestAdvanceAccumulatesPartialFrames(t *testing.T) {
	c, err := NewClip(attackSpec())
	require.NoError(t, err)

	c.Advance(60)
	assert.Equal(t, 0, c.Frame())
	c.Advance(60)
	assert.Equal(t, 0, c.Frame())
	c.Advance(10)
	assert.Equal(t, 1, c.Frame())
}

func TestLargeDeltaNeverSkipsHitWindow(t *testing.T) {
	c, err := NewClip(attackSpec())
	require.NoError(t, err)

	seen := false
	for !c.Finished() {
		c.Advance(10_000)
		seen = seen || c.InHitWindow()
	}
	assert.True(t, seen)
}

func TestInHitWindowBounds(t *testing.T) {
	c, err := NewClip(attackSpec())
	require.NoError(t, err)

	var got []bool
	for i := 0; i < 6; i++ {
		got = append(got, c.InHitWindow())
		c.Advance(125)
	}
	assert.Equal(t, []bool{false, false, true, true, true, false}, got)
}

func TestResetRewindsPlayhead(t *testing.T) {
	c, err := NewClip(ClipSpec{Frames: 2, FrameDurationMs: 50})
	require.NoError(t, err)
	c.Advance(50)
	c.Advance(50)
	require.True(t, c.Finished())

	c.Reset()
	assert.Equal(t, 0, c.Frame())
	assert.False(t, c.Finished())
	assert.Equal(t, 0, c.Loops())
}

func TestResolveUsesDefaultsWhenUnready(t *testing.T) {
	def := attackSpec()

	spec, ready, err := Resolve(Unready{}, "attack", def)
	require.NoError(t, err)
	assert.False(t, ready)
	assert.Equal(t, def, spec)

	p := StaticProvider{"attack": {Frames: 8, FrameDurationMs: 90}}
	spec, ready, err = Resolve(p, "attack", def)
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, 8, spec.Frames)
	assert.Equal(t, 90.0, spec.FrameDurationMs)

	bad := StaticProvider{"attack": {Frames: 0, FrameDurationMs: 90}}
	_, _, err = Resolve(bad, "attack", def)
	assert.ErrorIs(t, err, ErrInvalidClip)
}
