package tone

import (
	"fmt"
	"math"
	"sort"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/spectrum"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/dsp/window"
)

// Peak is a local maximum of the amplitude spectrum.
type Peak struct {
	Bin       int
	Frequency float64
	Amplitude float64
	LevelDB   float64
}

// ProbeLevel is the level of one probed frequency.
type ProbeLevel struct {
	Frequency float64
	Amplitude float64
	LevelDB   float64
}

// Result holds one spectrum measurement.
type Result struct {
	SampleRate float64
	FFTSize    int
	BinWidth   float64
	DC         float64
	// Amplitudes holds the 0-peak amplitude for bins 0..FFTSize/2.
	Amplitudes []float64
	// Peaks is sorted by descending amplitude.
	Peaks []Peak
	// Probes follows the order of the configured probe frequencies.
	Probes []ProbeLevel
}

// AmplitudeAt returns the amplitude of the bin nearest to freq.
func (r Result) AmplitudeAt(freq float64) float64 {
	if len(r.Amplitudes) == 0 || r.BinWidth <= 0 {
		return 0
	}
	k := int(math.Round(freq / r.BinWidth))
	if k < 0 || k >= len(r.Amplitudes) {
		return 0
	}
	return r.Amplitudes[k]
}

// Analyzer performs windowed FFT analysis. It reuses its FFT plan and buffers
// and is not safe for concurrent use.
type Analyzer struct {
	cfg    Config
	plan   *algofft.Plan[complex128]
	coeffs []float64
	gain   float64
	in     []complex128
	out    []complex128
}

// NewAnalyzer creates an analyzer for signals sampled at sampleRate.
func NewAnalyzer(sampleRate float64, opts ...Option) (*Analyzer, error) {
	cfg, err := newConfig(sampleRate, opts)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("tone: FFT plan: %w", err)
	}

	coeffs, err := window.Coefficients(cfg.WindowType, cfg.FFTSize, window.WithPeriodic())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Analyzer{
		cfg:    cfg,
		plan:   plan,
		coeffs: coeffs,
		gain:   gain,
		in:     make([]complex128, cfg.FFTSize),
		out:    make([]complex128, cfg.FFTSize),
	}, nil
}

// Config returns the normalized analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze measures the first FFTSize samples of signal.
func (a *Analyzer) Analyze(signal []float64) (Result, error) {
	n := a.cfg.FFTSize
	if len(signal) < n {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrShortSignal, len(signal), n)
	}

	windowed, err := window.ApplyCoefficients(signal[:n], a.coeffs)
	if err != nil {
		return Result{}, err
	}
	for i, x := range windowed {
		a.in[i] = complex(x, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Result{}, fmt.Errorf("tone: forward FFT: %w", err)
	}

	mag := spectrum.Magnitude(a.out[:n/2+1])
	scale := 2 / (float64(n) * a.gain)
	for k := range mag {
		mag[k] *= scale
	}
	mag[0] /= 2
	mag[n/2] /= 2

	res := Result{
		SampleRate: a.cfg.SampleRate,
		FFTSize:    n,
		BinWidth:   spectrum.BinFrequency(1, n, a.cfg.SampleRate),
		DC:         mag[0],
		Amplitudes: mag,
	}
	res.Peaks = a.findPeaks(mag, res.BinWidth)

	probes, err := a.probe(signal[:n])
	if err != nil {
		return Result{}, err
	}
	res.Probes = probes

	return res, nil
}

func (a *Analyzer) findPeaks(mag []float64, binWidth float64) []Peak {
	maxBin := len(mag) - 1
	lo := max(1, int(math.Ceil(a.cfg.LowerFreq/binWidth)))
	hi := min(maxBin-1, int(math.Floor(a.cfg.UpperFreq/binWidth)))
	if lo > hi {
		return nil
	}

	strongest, err := spectrum.PeakBin(mag, lo, hi+1)
	if err != nil || mag[strongest] <= 0 {
		return nil
	}
	floor := mag[strongest] * core.DBToLinear(a.cfg.ThresholdDB)

	var peaks []Peak
	for k := lo; k <= hi; k++ {
		v := mag[k]
		if v < floor || v <= mag[k-1] || v < mag[k+1] {
			continue
		}
		peaks = append(peaks, Peak{
			Bin:       k,
			Frequency: spectrum.BinFrequency(k, a.cfg.FFTSize, a.cfg.SampleRate) + interpolate(mag[k-1], v, mag[k+1])*binWidth,
			Amplitude: v,
			LevelDB:   core.LinearToDB(v),
		})
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Amplitude > peaks[j].Amplitude
	})
	if len(peaks) > a.cfg.MaxPeaks {
		peaks = peaks[:a.cfg.MaxPeaks]
	}

	return peaks
}

func (a *Analyzer) probe(block []float64) ([]ProbeLevel, error) {
	if len(a.cfg.Probes) == 0 {
		return nil, nil
	}

	levels := make([]ProbeLevel, 0, len(a.cfg.Probes))
	for _, f := range a.cfg.Probes {
		p, err := spectrum.NewProbe(f, a.cfg.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		p.Write(block)
		amp := p.Amplitude()
		levels = append(levels, ProbeLevel{Frequency: f, Amplitude: amp, LevelDB: core.LinearToDB(amp)})
	}

	return levels, nil
}

// neighbourFloor is the relative level below which a neighbouring bin is
// treated as numerical noise.
const neighbourFloor = 1e-9

// interpolate returns the fractional bin offset of a peak from a parabola
// through three log-magnitude points.
func interpolate(alpha, beta, gamma float64) float64 {
	if beta <= 0 || alpha <= beta*neighbourFloor || gamma <= beta*neighbourFloor {
		return 0
	}
	la, lb, lg := math.Log(alpha), math.Log(beta), math.Log(gamma)
	den := la - 2*lb + lg
	if den == 0 {
		return 0
	}
	return core.Clamp(0.5*(la-lg)/den, -0.5, 0.5)
}

// AnalyzeWaveform samples FFTSize values from a fresh walk of w and measures
// them. Integer samples are analyzed at their integer values.
func AnalyzeWaveform[F core.Float, S core.Sample](w *waveform.Waveform[F, S], opts ...Option) (Result, error) {
	a, err := NewAnalyzer(float64(w.SampleRate()), opts...)
	if err != nil {
		return Result{}, err
	}

	samples := w.Take(a.cfg.FFTSize, nil)
	signal := make([]float64, len(samples))
	for i, s := range samples {
		signal[i] = float64(s)
	}

	return a.Analyze(signal)
}
