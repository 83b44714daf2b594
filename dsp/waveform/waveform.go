package waveform

import (
	"iter"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/periodic"
)

// Waveform is a sample rate plus the periodic functions summed to produce one
// signal. S is the output sample type and carries no runtime state.
type Waveform[F core.Float, S core.Sample] struct {
	rate       SampleRate[F]
	components []periodic.Function[F]
}

// New returns a waveform sampled at rate with the given components. With no
// components every sample is 0.
func New[F core.Float, S core.Sample](rate F, components ...periodic.Function[F]) (*Waveform[F, S], error) {
	sr, err := NewSampleRate(rate)
	if err != nil {
		return nil, err
	}
	w := &Waveform[F, S]{rate: sr}
	w.AddComponent(components...)
	return w, nil
}

// MustNew is like [New] but panics if rate is invalid.
func MustNew[F core.Float, S core.Sample](rate F, components ...periodic.Function[F]) *Waveform[F, S] {
	w, err := New[F, S](rate, components...)
	if err != nil {
		panic(err)
	}
	return w
}

// AddComponent appends components to the end of the list. It must not be
// called concurrently with other methods.
func (w *Waveform[F, S]) AddComponent(components ...periodic.Function[F]) {
	w.components = append(w.components, components...)
}

// SampleRate returns the sampling rate in Hz.
func (w *Waveform[F, S]) SampleRate() F { return w.rate.value }

// Len returns the number of components.
func (w *Waveform[F, S]) Len() int { return len(w.components) }

// Components returns a copy of the component list.
func (w *Waveform[F, S]) Components() []periodic.Function[F] {
	out := make([]periodic.Function[F], len(w.components))
	copy(out, w.components)
	return out
}

// Value returns the unconverted sum of all components at time t.
func (w *Waveform[F, S]) Value(t F) F {
	return sum(w.components, t)
}

func sum[F core.Float](components []periodic.Function[F], t F) F {
	var acc F
	for i := range components {
		acc += components[i].Eval(t)
	}
	return acc
}

// Iter starts a new walk at time zero. Components added afterwards are not
// seen by the returned iterator.
func (w *Waveform[F, S]) Iter() *Iterator[F, S] {
	n := len(w.components)
	return &Iterator[F, S]{
		components: w.components[:n:n],
		period:     w.rate.period,
	}
}

// Samples returns the sample sequence as a range-over-func iterator. Every
// range loop starts a fresh walk at time zero. The sequence ends only when a
// sum cannot be represented in S.
func (w *Waveform[F, S]) Samples() iter.Seq[S] {
	return func(yield func(S) bool) {
		it := w.Iter()
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Take returns the first n samples of a fresh walk, reusing buf if it has
// enough capacity. The result is shorter than n if a sample could not be
// represented in S.
func (w *Waveform[F, S]) Take(n int, buf []S) []S {
	out := core.EnsureLen(buf, n)
	return out[:w.Iter().Fill(out)]
}
