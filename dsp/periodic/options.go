package periodic

import "github.com/cwbudde/algo-wavegen/dsp/core"

// Option configures the amplitude or phase of a canonical periodic function.
type Option func(*params)

type params struct {
	amplitude float64
	phase     float64
}

func defaultParams() params {
	return params{amplitude: 1}
}

// applyOptions resolves opts into calculation precision. Values outside the
// finite range of F become infinite.
func applyOptions[F core.Float](opts []Option) (amplitude, phase F) {
	p := defaultParams()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	amplitude, _ = core.Saturate[float64, F](p.amplitude)
	phase, _ = core.Saturate[float64, F](p.phase)
	return amplitude, phase
}

// WithAmplitude sets the 0-peak amplitude. The default is 1.
func WithAmplitude(amplitude float64) Option {
	return func(p *params) {
		p.amplitude = amplitude
	}
}

// WithPhase sets the phase shift in fractional periods. The default is 0.
func WithPhase(phase float64) Option {
	return func(p *params) {
		p.phase = phase
	}
}
