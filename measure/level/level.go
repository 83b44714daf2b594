// Package level computes time-domain level statistics of sampled waveforms.
package level

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
)

// ErrNonPositiveLength is returned when asked to measure no samples.
var ErrNonPositiveLength = errors.New("level: sample count must be positive")

// Stats holds time-domain level statistics.
type Stats struct {
	Length        int
	DC            float64
	RMS           float64
	RMSdB         float64
	Min           float64
	Max           float64
	Peak          float64 // max(|Min|, |Max|)
	PeakdB        float64
	CrestFactor   float64 // Peak / RMS
	CrestFactordB float64
	ZeroCrossings int
	// Unrepresentable counts samples that had no value in the output type.
	Unrepresentable int
}

// Accumulator collects level statistics one sample at a time.
// The zero value is ready to use.
type Accumulator struct {
	n       int
	missing int
	zc      int
	sum     float64
	comp    float64
	sumSq   float64
	minVal  float64
	maxVal  float64
	last    float64
}

// Add folds one sample into the running statistics.
func (a *Accumulator) Add(x float64) {
	if a.n == 0 {
		a.minVal, a.maxVal = x, x
	} else {
		a.minVal = math.Min(a.minVal, x)
		a.maxVal = math.Max(a.maxVal, x)
		if a.last*x < 0 {
			a.zc++
		}
	}

	// Kahan summation for the mean.
	y := x - a.comp
	t := a.sum + y
	a.comp = (t - a.sum) - y
	a.sum = t

	a.sumSq += x * x
	a.last = x
	a.n++
}

// Skip records a sample that could not be represented.
func (a *Accumulator) Skip() { a.missing++ }

// Reset clears all accumulated data.
func (a *Accumulator) Reset() { *a = Accumulator{} }

// Result returns the statistics of all samples added so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{
			Unrepresentable: a.missing,
			RMSdB:           math.Inf(-1),
			PeakdB:          math.Inf(-1),
			CrestFactordB:   math.Inf(-1),
		}
	}

	nf := float64(a.n)
	s := Stats{
		Length:          a.n,
		DC:              a.sum / nf,
		RMS:             math.Sqrt(a.sumSq / nf),
		Min:             a.minVal,
		Max:             a.maxVal,
		Peak:            math.Max(math.Abs(a.minVal), math.Abs(a.maxVal)),
		ZeroCrossings:   a.zc,
		Unrepresentable: a.missing,
	}
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	s.RMSdB = core.LinearToDB(s.RMS)
	s.PeakdB = core.LinearToDB(s.Peak)
	s.CrestFactordB = core.LinearToDB(s.CrestFactor)

	return s
}

// Measure streams the first n samples of a fresh walk of w through an
// Accumulator.
func Measure[F core.Float, S core.Sample](w *waveform.Waveform[F, S], n int) (Stats, error) {
	if n <= 0 {
		return Stats{}, ErrNonPositiveLength
	}

	var acc Accumulator
	it := w.Iter()
	for range n {
		s, ok := it.Next()
		if !ok {
			acc.Skip()
			continue
		}
		acc.Add(float64(s))
	}

	return acc.Result(), nil
}

// Calculate returns the statistics of a sample block.
func Calculate(signal []float64) Stats {
	var acc Accumulator
	for _, x := range signal {
		acc.Add(x)
	}
	return acc.Result()
}
