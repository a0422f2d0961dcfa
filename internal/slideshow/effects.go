package slideshow

import (
	"fmt"
	"time"
)

// Effect is a closed set of transition effects. The presentation shell
// interprets it exhaustively; adding a variant is a compile-time-checked
// change there.
type Effect string

const (
	EffectFade     Effect = "fade"
	EffectPan      Effect = "pan"
	EffectZoom     Effect = "zoom"
	EffectSlide    Effect = "slide"
	EffectKenBurns Effect = "kenburns"
)

// ParseEffect validates a configured effect name.
func ParseEffect(name string) (Effect, error) {
	switch Effect(name) {
	case EffectFade, EffectPan, EffectZoom, EffectSlide, EffectKenBurns:
		return Effect(name), nil
	}
	return "", fmt.Errorf("unknown transition effect %q", name)
}

// Reduced maps an effect to its safe-mode substitute: only a plain fade
// and a reduced-intensity zoom are allowed.
func (e Effect) Reduced() Effect {
	if e == EffectZoom {
		return EffectZoom
	}
	return EffectFade
}

// TransitionParams are the semantic parameters the shell needs to render
// a transition.
type TransitionParams struct {
	Effect           Effect
	Duration         time.Duration
	ReducedIntensity bool
}

// Params resolves the effect into render parameters for the given mode.
func (e Effect) Params(safeMode bool) TransitionParams {
	if safeMode {
		return TransitionParams{
			Effect:           e.Reduced(),
			Duration:         900 * time.Millisecond,
			ReducedIntensity: true,
		}
	}
	return TransitionParams{
		Effect:   e,
		Duration: 1500 * time.Millisecond,
	}
}

// SafeModeMinInterval is the dwell-time floor enforced while safe mode
// is active, protecting displays with burn-in risk.
const SafeModeMinInterval = 12 * time.Second

// Options configure playback timing and effects.
type Options struct {
	Interval     time.Duration
	Effect       Effect
	PreloadCount int
	SafeMode     bool
}

// Effective applies the safe-mode policy: restricted effect subset, the
// minimum interval floor, and a lookahead of one.
func (o Options) Effective() Options {
	if !o.SafeMode {
		return o
	}
	o.Effect = o.Effect.Reduced()
	if o.Interval < SafeModeMinInterval {
		o.Interval = SafeModeMinInterval
	}
	o.PreloadCount = 1
	return o
}
