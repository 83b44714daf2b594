// Package waveform composes periodic functions into a sampled signal.
//
// A [Waveform] holds a validated sample rate and an ordered list of
// [periodic.Function] components. Sampling sums every component at each time
// step of 1/rate seconds and narrows the sum into the output sample type S
// with [core.Saturate]: out-of-range values clamp to the bounds of S, and NaN
// ends the sequence for integer outputs.
//
// Two type parameters are independent: F is the calculation precision used
// for time and amplitude arithmetic, S is the sample type handed to callers.
//
//	wf, err := waveform.New[float64, int16](44100,
//		periodic.MustSine(440.0, periodic.WithAmplitude(8000)),
//		periodic.Bias(100.0),
//	)
//	for s := range wf.Samples() {
//		...
//	}
//
// A Waveform is safe for concurrent reads once fully built. Each [Iterator]
// owns its step counter and must be driven by a single goroutine.
package waveform
