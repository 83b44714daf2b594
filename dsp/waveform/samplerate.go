package waveform

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

// ErrInvalidSampleRate is returned for a sample rate that is NaN, zero,
// negative, subnormal or infinite.
var ErrInvalidSampleRate = errors.New("waveform: sample rate must be positive, non-zero and finite")

// SampleRate is a validated sampling rate in Hz. Its reciprocal is always
// finite and positive.
type SampleRate[F core.Float] struct {
	value  F
	period F
}

// NewSampleRate validates value as a sampling rate.
func NewSampleRate[F core.Float](value F) (SampleRate[F], error) {
	if !core.IsNormal(value) || value < 0 {
		return SampleRate[F]{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, value)
	}
	return SampleRate[F]{value: value, period: 1 / value}, nil
}

// Value returns the rate in Hz.
func (r SampleRate[F]) Value() F { return r.value }

// Period returns the duration of one sample in seconds.
func (r SampleRate[F]) Period() F { return r.period }
