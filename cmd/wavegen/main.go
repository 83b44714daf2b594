// Command wavegen samples a composite periodic waveform and prints the
// samples or their spectrum.
//
// Usage:
//
//	wavegen [flags] component ...
//
// A component is "sine:freq[:amp[:phase]]", "square:...", "sawtooth:..." or
// "bias:value". Phase is given in fractional periods.
//
// Examples:
//
//	wavegen -rate 100 -n 100 sine:1
//	wavegen -type i16 -n 32 sine:440:8000 bias:100
//	wavegen -analyze -rate 48000 square:1000:0.5
//	wavegen -analyze -probe 1000,3000 square:1000
//	wavegen -stats -n 48000 sine:50:230 bias:5
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/periodic"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/dsp/window"
	"github.com/cwbudde/algo-wavegen/measure/level"
	"github.com/cwbudde/algo-wavegen/measure/tone"
)

type options struct {
	rate       float64
	count      int
	sampleType string
	precision  string
	analyze    bool
	stats      bool
	window     window.Type
	peaks      int
	probes     []float64
}

const (
	defaultCount    = 48
	defaultFFTCount = 4096
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wavegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	rate := fs.Float64("rate", 48000, "sample rate in Hz")
	count := fs.Int("n", defaultCount, "number of samples; with -analyze the FFT size, a power of two (default 4096)")
	sampleType := fs.String("type", "f64", "output sample type: i8 i16 i32 i64 u8 u16 u32 u64 f32 f64")
	precision := fs.String("precision", "f64", "calculation precision: f32 or f64")
	analyze := fs.Bool("analyze", false, "print spectral peaks instead of samples")
	stats := fs.Bool("stats", false, "print level statistics instead of samples")
	windowName := fs.String("window", "hann", "analysis window: rectangular hann blackman flat-top")
	peaks := fs.Int("peaks", 8, "maximum number of peaks with -analyze")
	probeList := fs.String("probe", "", "comma-separated frequencies in Hz to measure individually with -analyze")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wavegen [flags] component ...\n\n")
		fmt.Fprintf(stderr, "Samples the sum of periodic components.\n")
		fmt.Fprintf(stderr, "Components: sine:freq[:amp[:phase]] square:... sawtooth:... bias:value\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  wavegen -rate 100 -n 100 sine:1\n")
		fmt.Fprintf(stderr, "  wavegen -type i16 -n 32 sine:440:8000 bias:100\n")
		fmt.Fprintf(stderr, "  wavegen -analyze square:1000:0.5\n")
		fmt.Fprintf(stderr, "  wavegen -analyze -probe 1000,3000 square:1000\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	specs, err := parseComponents(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	probes, err := parseProbes(*probeList)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	wt, err := parseWindow(*windowName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	n := *count
	if *analyze && !flagSet(fs, "n") {
		n = defaultFFTCount
	}
	if n < 0 {
		fmt.Fprintf(stderr, "error: sample count %d is negative\n", n)
		return 1
	}

	opts := options{
		rate:       *rate,
		count:      n,
		sampleType: strings.ToLower(*sampleType),
		precision:  strings.ToLower(*precision),
		analyze:    *analyze,
		stats:      *stats,
		window:     wt,
		peaks:      *peaks,
		probes:     probes,
	}

	switch opts.precision {
	case "f32", "float32":
		err = dispatch[float32](opts, specs, stdout, stderr)
	case "f64", "float64":
		err = dispatch[float64](opts, specs, stdout, stderr)
	default:
		err = fmt.Errorf("unknown precision %q", opts.precision)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func dispatch[F core.Float](opts options, specs []componentSpec, stdout, stderr io.Writer) error {
	switch opts.sampleType {
	case "i8":
		return generate[F, int8](opts, specs, stdout, stderr)
	case "i16":
		return generate[F, int16](opts, specs, stdout, stderr)
	case "i32":
		return generate[F, int32](opts, specs, stdout, stderr)
	case "i64":
		return generate[F, int64](opts, specs, stdout, stderr)
	case "u8":
		return generate[F, uint8](opts, specs, stdout, stderr)
	case "u16":
		return generate[F, uint16](opts, specs, stdout, stderr)
	case "u32":
		return generate[F, uint32](opts, specs, stdout, stderr)
	case "u64":
		return generate[F, uint64](opts, specs, stdout, stderr)
	case "f32":
		return generate[F, float32](opts, specs, stdout, stderr)
	case "f64":
		return generate[F, float64](opts, specs, stdout, stderr)
	default:
		return fmt.Errorf("unknown sample type %q", opts.sampleType)
	}
}

func generate[F core.Float, S core.Sample](opts options, specs []componentSpec, stdout, stderr io.Writer) error {
	components := make([]periodic.Function[F], 0, len(specs))
	for _, spec := range specs {
		fn, err := build[F](spec)
		if err != nil {
			return err
		}
		components = append(components, fn)
	}

	rate, _ := core.Saturate[float64, F](opts.rate)
	w, err := waveform.New[F, S](rate, components...)
	if err != nil {
		return err
	}

	switch {
	case opts.analyze:
		return printPeaks(w, opts, stdout)
	case opts.stats:
		return printStats(w, opts.count, stdout)
	}
	return printSamples(w, opts.count, stdout, stderr)
}

func printSamples[F core.Float, S core.Sample](w *waveform.Waveform[F, S], n int, stdout, stderr io.Writer) error {
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Index\tTime [s]\tValue\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	it := w.Iter()
	missing := 0
	for i := range n {
		t := it.Time()
		s, ok := it.Next()
		value := fmt.Sprint(s)
		if !ok {
			value = "-"
			missing++
		}
		if _, err := fmt.Fprintf(tw, "%d\t%.9g\t%s\n", i, float64(t), value); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if missing > 0 {
		fmt.Fprintf(stderr, "warning: %d samples not representable\n", missing)
	}
	return nil
}

func printPeaks[F core.Float, S core.Sample](w *waveform.Waveform[F, S], opts options, stdout io.Writer) error {
	res, err := tone.AnalyzeWaveform(w,
		tone.WithFFTSize(opts.count),
		tone.WithWindow(opts.window),
		tone.WithMaxPeaks(opts.peaks),
		tone.WithProbes(opts.probes...),
	)
	if err != nil {
		return err
	}

	info := window.Info(opts.window)
	if _, err := fmt.Fprintf(stdout, "%s window, %d-point FFT, %.4g Hz bins, ENBW %.4g bins\n\n",
		info.Name, res.FFTSize, res.BinWidth, info.ENBW); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tAmplitude\tLevel [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "DC\t%.6f\t%.2f\n", res.DC, core.LinearToDB(res.DC)); err != nil {
		return fmt.Errorf("failed to write output row: %w", err)
	}
	for _, p := range res.Peaks {
		if _, err := fmt.Fprintf(tw, "%.3f\t%.6f\t%.2f\n", p.Frequency, p.Amplitude, p.LevelDB); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	for _, p := range res.Probes {
		if _, err := fmt.Fprintf(tw, "probe %.3f\t%.6f\t%.2f\n", p.Frequency, p.Amplitude, p.LevelDB); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printStats[F core.Float, S core.Sample](w *waveform.Waveform[F, S], n int, stdout io.Writer) error {
	s, err := level.Measure(w, n)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value string
	}{
		{"Samples", fmt.Sprint(s.Length)},
		{"DC", fmt.Sprintf("%.6g", s.DC)},
		{"RMS", fmt.Sprintf("%.6g (%.2f dB)", s.RMS, s.RMSdB)},
		{"Peak", fmt.Sprintf("%.6g (%.2f dB)", s.Peak, s.PeakdB)},
		{"Min", fmt.Sprintf("%.6g", s.Min)},
		{"Max", fmt.Sprintf("%.6g", s.Max)},
		{"Crest factor", fmt.Sprintf("%.4f (%.2f dB)", s.CrestFactor, s.CrestFactordB)},
		{"Zero crossings", fmt.Sprint(s.ZeroCrossings)},
		{"Unrepresentable", fmt.Sprint(s.Unrepresentable)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r.name, r.value); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
