package tone

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavegen/dsp/window"
)

const (
	defaultFFTSize     = 4096
	defaultMaxPeaks    = 8
	defaultThresholdDB = -60.0
)

var (
	ErrInvalidConfig = errors.New("tone: invalid configuration")
	ErrShortSignal   = errors.New("tone: signal shorter than FFT size")
)

// Config holds spectrum analysis parameters.
type Config struct {
	SampleRate  float64
	FFTSize     int
	WindowType  window.Type
	LowerFreq   float64
	UpperFreq   float64
	MaxPeaks    int
	ThresholdDB float64
	// Probes lists frequencies measured individually with a Goertzel probe
	// over the unwindowed block.
	Probes []float64
}

// Option mutates a Config.
type Option func(*Config)

// WithFFTSize sets the transform length. It must be a power of two >= 8.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		cfg.FFTSize = n
	}
}

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.WindowType = t
	}
}

// WithRange limits peak search to [lower, upper] Hz.
func WithRange(lower, upper float64) Option {
	return func(cfg *Config) {
		cfg.LowerFreq = lower
		cfg.UpperFreq = upper
	}
}

// WithMaxPeaks limits the number of reported peaks.
func WithMaxPeaks(n int) Option {
	return func(cfg *Config) {
		cfg.MaxPeaks = n
	}
}

// WithThresholdDB drops peaks weaker than db relative to the strongest one.
func WithThresholdDB(db float64) Option {
	return func(cfg *Config) {
		cfg.ThresholdDB = db
	}
}

// WithProbes adds frequencies to measure individually.
func WithProbes(freqs ...float64) Option {
	return func(cfg *Config) {
		cfg.Probes = append(cfg.Probes, freqs...)
	}
}

func newConfig(sampleRate float64, opts []Option) (Config, error) {
	cfg := Config{
		SampleRate:  sampleRate,
		FFTSize:     defaultFFTSize,
		WindowType:  window.TypeHann,
		UpperFreq:   sampleRate / 2,
		MaxPeaks:    defaultMaxPeaks,
		ThresholdDB: defaultThresholdDB,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return cfg, fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, sampleRate)
	}
	if cfg.FFTSize < 8 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return cfg, fmt.Errorf("%w: FFT size %d is not a power of two >= 8", ErrInvalidConfig, cfg.FFTSize)
	}
	if cfg.LowerFreq < 0 || cfg.UpperFreq <= cfg.LowerFreq {
		return cfg, fmt.Errorf("%w: frequency range [%v, %v]", ErrInvalidConfig, cfg.LowerFreq, cfg.UpperFreq)
	}
	for _, f := range cfg.Probes {
		if !(f >= 0 && f <= sampleRate/2) {
			return cfg, fmt.Errorf("%w: probe frequency %v outside [0, %v]", ErrInvalidConfig, f, sampleRate/2)
		}
	}
	if cfg.MaxPeaks <= 0 {
		cfg.MaxPeaks = defaultMaxPeaks
	}
	if cfg.ThresholdDB > 0 || math.IsNaN(cfg.ThresholdDB) {
		cfg.ThresholdDB = defaultThresholdDB
	}

	return cfg, nil
}
