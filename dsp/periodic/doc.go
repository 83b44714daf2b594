// Package periodic provides the periodic functions that make up a composite
// waveform.
//
// A [Function] maps elapsed time in seconds to an amplitude contribution. The
// canonical kinds are sine, square and sawtooth, each parametrized by
// frequency, amplitude and phase. [Bias] adds a constant offset and [Custom]
// wraps an arbitrary time-to-amplitude map.
//
// Phase is expressed in fractional periods for every canonical kind, so a
// phase of 0.5 shifts the function by half a cycle and a phase of 1 is a full
// revolution.
//
// Functions are immutable values and are safe for concurrent use, provided
// that custom maps have no side effects.
package periodic
