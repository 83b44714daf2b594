package periodic

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

// Kind identifies the shape of a periodic function.
type Kind int

const (
	KindBias Kind = iota
	KindSine
	KindSquare
	KindSawtooth
	KindCustom
)

var kindNames = [...]string{
	KindBias:     "bias",
	KindSine:     "sine",
	KindSquare:   "square",
	KindSawtooth: "sawtooth",
	KindCustom:   "custom",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Function is one additive component of a waveform, evaluated at an elapsed
// time in seconds. The zero value is a bias of 0.
type Function[F core.Float] struct {
	kind      Kind
	frequency F
	amplitude F
	phase     F
	bias      F
	custom    func(t F) F
}

// NewSine returns amplitude * sin(2*pi*frequency*t + 2*pi*phase).
func NewSine[F core.Float](frequency, amplitude, phase F) (Function[F], error) {
	return newCanonical(KindSine, frequency, amplitude, phase)
}

// NewSquare returns a +-amplitude step function that starts high and toggles
// twice per period.
func NewSquare[F core.Float](frequency, amplitude, phase F) (Function[F], error) {
	return newCanonical(KindSquare, frequency, amplitude, phase)
}

// NewSawtooth returns a linear ramp from -amplitude up to, but excluding,
// +amplitude, restarting once per period.
func NewSawtooth[F core.Float](frequency, amplitude, phase F) (Function[F], error) {
	return newCanonical(KindSawtooth, frequency, amplitude, phase)
}

// Sine is [NewSine] with amplitude and phase taken from opts.
func Sine[F core.Float](frequency F, opts ...Option) (Function[F], error) {
	amplitude, phase := applyOptions[F](opts)
	return NewSine(frequency, amplitude, phase)
}

// Square is [NewSquare] with amplitude and phase taken from opts.
func Square[F core.Float](frequency F, opts ...Option) (Function[F], error) {
	amplitude, phase := applyOptions[F](opts)
	return NewSquare(frequency, amplitude, phase)
}

// Sawtooth is [NewSawtooth] with amplitude and phase taken from opts.
func Sawtooth[F core.Float](frequency F, opts ...Option) (Function[F], error) {
	amplitude, phase := applyOptions[F](opts)
	return NewSawtooth(frequency, amplitude, phase)
}

// Bias returns a constant function. Any value is accepted, including NaN and
// the infinities, which propagate into every sample.
func Bias[F core.Float](value F) Function[F] {
	return Function[F]{kind: KindBias, bias: value}
}

// Custom wraps an arbitrary time-to-amplitude map. No validation is applied.
// A nil map evaluates to 0.
func Custom[F core.Float](fn func(t F) F) Function[F] {
	return Function[F]{kind: KindCustom, custom: fn}
}

// MustSine is like [Sine] but panics if the parameters are invalid.
func MustSine[F core.Float](frequency F, opts ...Option) Function[F] {
	return must(Sine(frequency, opts...))
}

// MustSquare is like [Square] but panics if the parameters are invalid.
func MustSquare[F core.Float](frequency F, opts ...Option) Function[F] {
	return must(Square(frequency, opts...))
}

// MustSawtooth is like [Sawtooth] but panics if the parameters are invalid.
func MustSawtooth[F core.Float](frequency F, opts ...Option) Function[F] {
	return must(Sawtooth(frequency, opts...))
}

func must[F core.Float](fn Function[F], err error) Function[F] {
	if err != nil {
		panic(err)
	}
	return fn
}

func newCanonical[F core.Float](kind Kind, frequency, amplitude, phase F) (Function[F], error) {
	if err := validate(kind, frequency, amplitude, phase); err != nil {
		return Function[F]{}, err
	}
	return Function[F]{
		kind:      kind,
		frequency: frequency,
		amplitude: amplitude,
		phase:     phase,
	}, nil
}

// Eval returns the value of the function at time t in seconds.
func (f Function[F]) Eval(t F) F {
	switch f.kind {
	case KindSine:
		radians := F(2*math.Pi)*f.frequency*t + F(2*math.Pi)*f.phase
		return f.amplitude * F(math.Sin(float64(radians)))
	case KindSquare:
		k := math.Floor(float64(2 * (t*f.frequency - f.phase)))
		if math.Mod(k, 2) == 0 {
			return f.amplitude
		}
		return -f.amplitude
	case KindSawtooth:
		return 2*f.amplitude*frac(t*f.frequency+f.phase) - f.amplitude
	case KindCustom:
		if f.custom == nil {
			return 0
		}
		return f.custom(t)
	default:
		return f.bias
	}
}

// frac returns x - floor(x), which lies in [0, 1) for finite x.
func frac[F core.Float](x F) F {
	return x - F(math.Floor(float64(x)))
}

// Kind returns the shape of the function.
func (f Function[F]) Kind() Kind { return f.kind }

// Frequency returns the frequency in Hz, or 0 for bias and custom functions.
func (f Function[F]) Frequency() F { return f.frequency }

// Amplitude returns the 0-peak amplitude. For a bias it returns the constant.
func (f Function[F]) Amplitude() F {
	if f.kind == KindBias {
		return f.bias
	}
	return f.amplitude
}

// Phase returns the phase shift in fractional periods.
func (f Function[F]) Phase() F { return f.phase }

// String describes the function and its parameters.
func (f Function[F]) String() string {
	switch f.kind {
	case KindBias:
		return fmt.Sprintf("bias(%v)", f.bias)
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("%s(frequency=%v, amplitude=%v, phase=%v)", f.kind, f.frequency, f.amplitude, f.phase)
	}
}
