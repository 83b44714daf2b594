package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProbe is returned for a probe frequency outside [0, rate/2] or a
// sample rate that is not positive and finite.
var ErrInvalidProbe = errors.New("spectrum: invalid probe")

// Probe measures one frequency with the Goertzel recurrence. Samples are fed
// one at a time or in blocks, so a probe can sit directly on a sampling walk.
// Leakage is smallest when the samples cover a whole number of cycles.
type Probe struct {
	freq   float64
	rate   float64
	k      float64 // 2*cos(w)
	y1, y2 float64
	count  int
}

// NewProbe creates a probe for freq Hz in a signal sampled at rate Hz.
func NewProbe(freq, rate float64) (*Probe, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidProbe, rate)
	}
	if !(freq >= 0 && freq <= rate/2) {
		return nil, fmt.Errorf("%w: frequency %v outside [0, %v]", ErrInvalidProbe, freq, rate/2)
	}
	return &Probe{
		freq: freq,
		rate: rate,
		k:    2 * math.Cos(2*math.Pi*freq/rate),
	}, nil
}

// Add feeds one sample.
func (p *Probe) Add(x float64) {
	p.y1, p.y2 = x+p.k*p.y1-p.y2, p.y1
	p.count++
}

// Write feeds a block of samples.
func (p *Probe) Write(block []float64) {
	for _, x := range block {
		p.Add(x)
	}
}

// Reset discards all samples fed so far.
func (p *Probe) Reset() {
	p.y1, p.y2, p.count = 0, 0, 0
}

// Frequency returns the probed frequency in Hz.
func (p *Probe) Frequency() float64 { return p.freq }

// Len returns the number of samples fed since the last reset.
func (p *Probe) Len() int { return p.count }

// Magnitude returns |X| at the probe frequency, the DFT bin magnitude for the
// samples fed so far.
func (p *Probe) Magnitude() float64 {
	sq := p.y1*p.y1 + p.y2*p.y2 - p.k*p.y1*p.y2
	if sq <= 0 {
		return 0
	}
	return math.Sqrt(sq)
}

// Amplitude estimates the 0-peak amplitude of a sinusoid at the probe
// frequency as 2|X|/N. At 0 Hz and at rate/2 the bin is not mirrored, so the
// estimate is |X|/N.
func (p *Probe) Amplitude() float64 {
	if p.count == 0 {
		return 0
	}
	scale := 2.0
	if p.freq == 0 || p.freq == p.rate/2 {
		scale = 1
	}
	return scale * p.Magnitude() / float64(p.count)
}
