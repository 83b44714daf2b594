package tone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wavegen/dsp/periodic"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/dsp/window"
	"github.com/cwbudde/algo-wavegen/internal/testutil"
)

const (
	testRate = 1024.0
	testSize = 1024
)

func TestNewAnalyzerDefaults(t *testing.T) {
	a, err := NewAnalyzer(48000)
	require.NoError(t, err)

	cfg := a.Config()
	assert.Equal(t, defaultFFTSize, cfg.FFTSize)
	assert.Equal(t, window.TypeHann, cfg.WindowType)
	assert.Equal(t, 24000.0, cfg.UpperFreq)
	assert.Equal(t, defaultMaxPeaks, cfg.MaxPeaks)
	assert.Equal(t, defaultThresholdDB, cfg.ThresholdDB)
}

func TestNewAnalyzerRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		opts []Option
	}{
		{name: "zero rate", rate: 0},
		{name: "negative rate", rate: -1},
		{name: "nan rate", rate: math.NaN()},
		{name: "inf rate", rate: math.Inf(1)},
		{name: "fft not power of two", rate: testRate, opts: []Option{WithFFTSize(1000)}},
		{name: "fft too small", rate: testRate, opts: []Option{WithFFTSize(4)}},
		{name: "inverted range", rate: testRate, opts: []Option{WithRange(200, 100)}},
		{name: "negative lower", rate: testRate, opts: []Option{WithRange(-1, 100)}},
		{name: "probe above nyquist", rate: testRate, opts: []Option{WithProbes(100, 600)}},
		{name: "negative probe", rate: testRate, opts: []Option{WithProbes(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalyzer(tt.rate, tt.opts...)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestAnalyzeShortSignal(t *testing.T) {
	a, err := NewAnalyzer(testRate, WithFFTSize(testSize))
	require.NoError(t, err)

	_, err = a.Analyze(make([]float64, testSize-1))
	require.ErrorIs(t, err, ErrShortSignal)
}

func TestAnalyzeBinCentredComponents(t *testing.T) {
	signal := make([]float64, testSize)
	for i := range signal {
		tm := float64(i) / testRate
		signal[i] = math.Sin(2*math.Pi*64*tm) + 0.5*math.Sin(2*math.Pi*200*tm)
	}

	for _, wt := range []window.Type{window.TypeRectangular, window.TypeHann, window.TypeBlackman} {
		t.Run(window.Info(wt).Name, func(t *testing.T) {
			a, err := NewAnalyzer(testRate, WithFFTSize(testSize), WithWindow(wt))
			require.NoError(t, err)

			res, err := a.Analyze(signal)
			require.NoError(t, err)

			assert.Equal(t, 1.0, res.BinWidth)
			assert.Len(t, res.Amplitudes, testSize/2+1)
			assert.InDelta(t, 0, res.DC, 1e-9)
			assert.InDelta(t, 1.0, res.AmplitudeAt(64), 1e-9)
			assert.InDelta(t, 0.5, res.AmplitudeAt(200), 1e-9)

			require.Len(t, res.Peaks, 2)
			assert.Equal(t, 64, res.Peaks[0].Bin)
			assert.InDelta(t, 64, res.Peaks[0].Frequency, 1e-6)
			assert.InDelta(t, 0, res.Peaks[0].LevelDB, 1e-6)
			assert.Equal(t, 200, res.Peaks[1].Bin)
			assert.InDelta(t, -6.0206, res.Peaks[1].LevelDB, 1e-3)
		})
	}
}

func TestAnalyzeProbes(t *testing.T) {
	w := waveform.MustNew[float64, float64](testRate,
		periodic.MustSine(64.0),
		periodic.MustSquare(128.0, periodic.WithAmplitude(0.5)),
		periodic.Bias(0.25),
	)

	res, err := AnalyzeWaveform(w, WithFFTSize(testSize), WithProbes(0, 64, 100, 128))
	require.NoError(t, err)
	require.Len(t, res.Probes, 4)

	want := []float64{0.25, 1, 0, 0.5 * 4 / math.Pi}
	for i, p := range res.Probes {
		assert.Equal(t, []float64{0, 64, 100, 128}[i], p.Frequency)
		tol := 1e-9
		if p.Frequency == 128 {
			// Sampled square: 8 samples per period.
			tol = 0.03
		}
		assert.InDelta(t, want[i], p.Amplitude, tol, "probe %v Hz", p.Frequency)
	}
	assert.InDelta(t, -12.0412, res.Probes[0].LevelDB, 1e-3)
}

func TestAnalyzeWithoutProbes(t *testing.T) {
	a, err := NewAnalyzer(testRate, WithFFTSize(testSize))
	require.NoError(t, err)

	res, err := a.Analyze(testutil.DeterministicSine(64, testRate, 1, testSize))
	require.NoError(t, err)
	assert.Nil(t, res.Probes)
}

func TestAnalyzeDCOffset(t *testing.T) {
	signal := testutil.DeterministicSine(64, testRate, 1, testSize)
	for i := range signal {
		signal[i] += 0.25
	}

	a, err := NewAnalyzer(testRate, WithFFTSize(testSize), WithWindow(window.TypeRectangular))
	require.NoError(t, err)

	res, err := a.Analyze(signal)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, res.DC, 1e-9)
	require.Len(t, res.Peaks, 1)
	assert.Equal(t, 64, res.Peaks[0].Bin)
}

func TestAnalyzeInterpolatesOffBinTone(t *testing.T) {
	const freq = 100.3

	signal := make([]float64, testSize)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * freq * float64(i) / testRate)
	}

	a, err := NewAnalyzer(testRate, WithFFTSize(testSize))
	require.NoError(t, err)

	res, err := a.Analyze(signal)
	require.NoError(t, err)
	require.NotEmpty(t, res.Peaks)

	assert.Equal(t, 100, res.Peaks[0].Bin)
	assert.InDelta(t, freq, res.Peaks[0].Frequency, 0.1)
}

func TestAnalyzeRangeAndPeakLimit(t *testing.T) {
	signal := make([]float64, testSize)
	for _, f := range []float64{50, 100, 150, 300} {
		for i := range signal {
			signal[i] += math.Sin(2 * math.Pi * f * float64(i) / testRate)
		}
	}

	a, err := NewAnalyzer(testRate, WithFFTSize(testSize), WithRange(80, 200), WithMaxPeaks(1))
	require.NoError(t, err)

	res, err := a.Analyze(signal)
	require.NoError(t, err)
	require.Len(t, res.Peaks, 1)

	bin := res.Peaks[0].Bin
	assert.True(t, bin == 100 || bin == 150, "unexpected peak bin %d", bin)
}

func TestAnalyzeSilence(t *testing.T) {
	a, err := NewAnalyzer(testRate, WithFFTSize(testSize))
	require.NoError(t, err)

	res, err := a.Analyze(make([]float64, testSize))
	require.NoError(t, err)
	assert.Empty(t, res.Peaks)
	assert.Zero(t, res.DC)
}

func TestAnalyzeWaveformSquareHarmonics(t *testing.T) {
	w := waveform.MustNew[float64, float64](testRate, periodic.MustSquare[float64](64))

	res, err := AnalyzeWaveform(w, WithFFTSize(testSize), WithWindow(window.TypeRectangular))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Peaks), 2)

	// Odd harmonics only, falling as 1/k.
	assert.Equal(t, 64, res.Peaks[0].Bin)
	assert.InDelta(t, 4/math.Pi, res.Peaks[0].Amplitude, 0.05)
	assert.Equal(t, 192, res.Peaks[1].Bin)
	assert.InDelta(t, 4/(3*math.Pi), res.Peaks[1].Amplitude, 0.05)
	assert.InDelta(t, 0, res.AmplitudeAt(128), 1e-9)
	assert.InDelta(t, 0, res.DC, 1e-9)
}

func TestAnalyzeWaveformIntegerSamples(t *testing.T) {
	w := waveform.MustNew[float32, int16](testRate,
		periodic.MustSine[float32](32, periodic.WithAmplitude(1000)),
		periodic.Bias[float32](100),
	)

	res, err := AnalyzeWaveform(w, WithFFTSize(testSize))
	require.NoError(t, err)
	require.NotEmpty(t, res.Peaks)

	assert.Equal(t, 32, res.Peaks[0].Bin)
	assert.InDelta(t, 1000, res.Peaks[0].Amplitude, 2)
	assert.InDelta(t, 100, res.DC, 1)
}

func TestAnalyzeMatchesGeneratedSine(t *testing.T) {
	signal := testutil.DeterministicSine(128, testRate, 0.75, testSize)

	a, err := NewAnalyzer(testRate, WithFFTSize(testSize), WithWindow(window.TypeFlatTop))
	require.NoError(t, err)

	res, err := a.Analyze(signal)
	require.NoError(t, err)
	require.NotEmpty(t, res.Peaks)

	assert.Equal(t, 128, res.Peaks[0].Bin)
	assert.InDelta(t, 0.75, res.Peaks[0].Amplitude, 1e-6)
}

func TestAnalyzerReuse(t *testing.T) {
	a, err := NewAnalyzer(testRate, WithFFTSize(testSize))
	require.NoError(t, err)

	first := testutil.DeterministicSine(64, testRate, 1, testSize)
	second := testutil.DeterministicSine(256, testRate, 0.5, testSize)

	r1, err := a.Analyze(first)
	require.NoError(t, err)
	r2, err := a.Analyze(second)
	require.NoError(t, err)

	assert.Equal(t, 64, r1.Peaks[0].Bin)
	assert.Equal(t, 256, r2.Peaks[0].Bin)
	assert.InDelta(t, 1.0, r1.AmplitudeAt(64), 1e-9)
}

func TestAmplitudeAtOutOfRange(t *testing.T) {
	var empty Result
	assert.Zero(t, empty.AmplitudeAt(10))

	res := Result{BinWidth: 1, Amplitudes: []float64{1, 2, 3}}
	assert.Equal(t, 2.0, res.AmplitudeAt(1.2))
	assert.Zero(t, res.AmplitudeAt(-5))
	assert.Zero(t, res.AmplitudeAt(50))
}
