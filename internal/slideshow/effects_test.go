package slideshow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEffect(t *testing.T) {
	for _, name := range []string{"fade", "pan", "zoom", "slide", "kenburns"} {
		effect, err := ParseEffect(name)
		require.NoError(t, err)
		assert.Equal(t, Effect(name), effect)
	}

	_, err := ParseEffect("sparkle")
	assert.ErrorContains(t, err, "sparkle")
}

func TestEffectReduced(t *testing.T) {
	assert.Equal(t, EffectZoom, EffectZoom.Reduced())
	assert.Equal(t, EffectFade, EffectPan.Reduced())
	assert.Equal(t, EffectFade, EffectSlide.Reduced())
	assert.Equal(t, EffectFade, EffectKenBurns.Reduced())
	assert.Equal(t, EffectFade, EffectFade.Reduced())
}

func TestEffectParams(t *testing.T) {
	normal := EffectKenBurns.Params(false)
	assert.Equal(t, EffectKenBurns, normal.Effect)
	assert.Equal(t, 1500*time.Millisecond, normal.Duration)
	assert.False(t, normal.ReducedIntensity)

	safe := EffectKenBurns.Params(true)
	assert.Equal(t, EffectFade, safe.Effect)
	assert.Equal(t, 900*time.Millisecond, safe.Duration)
	assert.True(t, safe.ReducedIntensity)
}

func TestOptionsEffective(t *testing.T) {
	opts := Options{
		Interval:     8 * time.Second,
		Effect:       EffectPan,
		PreloadCount: 3,
	}

	assert.Equal(t, opts, opts.Effective(), "safe mode off leaves options untouched")

	opts.SafeMode = true
	eff := opts.Effective()
	assert.Equal(t, SafeModeMinInterval, eff.Interval)
	assert.Equal(t, EffectFade, eff.Effect)
	assert.Equal(t, 1, eff.PreloadCount)
}

func TestOptionsEffective_LongIntervalKept(t *testing.T) {
	opts := Options{
		Interval:     30 * time.Second,
		Effect:       EffectZoom,
		PreloadCount: 2,
		SafeMode:     true,
	}

	eff := opts.Effective()
	assert.Equal(t, 30*time.Second, eff.Interval, "intervals above the floor pass through")
	assert.Equal(t, EffectZoom, eff.Effect, "zoom survives safe mode at reduced intensity")
}
