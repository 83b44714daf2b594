package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/periodic"
	"github.com/cwbudde/algo-wavegen/dsp/window"
)

var errBadSpec = errors.New("invalid component spec")

// componentSpec is a parsed command-line component. Values stay float64
// until the calculation precision is known.
type componentSpec struct {
	kind      periodic.Kind
	frequency float64
	amplitude float64
	phase     float64
	value     float64
}

var kindsByName = map[string]periodic.Kind{
	"sine":     periodic.KindSine,
	"square":   periodic.KindSquare,
	"sawtooth": periodic.KindSawtooth,
	"saw":      periodic.KindSawtooth,
	"bias":     periodic.KindBias,
	"dc":       periodic.KindBias,
}

// parseComponent parses "kind:frequency[:amplitude[:phase]]" or "bias:value".
func parseComponent(s string) (componentSpec, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	kind, ok := kindsByName[strings.ToLower(fields[0])]
	if !ok {
		return componentSpec{}, fmt.Errorf("%w %q: unknown kind %q", errBadSpec, s, fields[0])
	}

	nums := make([]float64, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return componentSpec{}, fmt.Errorf("%w %q: %v", errBadSpec, s, err)
		}
		nums[i] = v
	}

	if kind == periodic.KindBias {
		if len(nums) != 1 {
			return componentSpec{}, fmt.Errorf("%w %q: bias takes exactly one value", errBadSpec, s)
		}
		return componentSpec{kind: kind, value: nums[0]}, nil
	}

	if len(nums) < 1 || len(nums) > 3 {
		return componentSpec{}, fmt.Errorf("%w %q: want %s:frequency[:amplitude[:phase]]", errBadSpec, s, fields[0])
	}

	spec := componentSpec{kind: kind, frequency: nums[0], amplitude: 1}
	if len(nums) > 1 {
		spec.amplitude = nums[1]
	}
	if len(nums) > 2 {
		spec.phase = nums[2]
	}

	return spec, nil
}

func parseComponents(args []string) ([]componentSpec, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no components given", errBadSpec)
	}

	specs := make([]componentSpec, 0, len(args))
	for _, a := range args {
		spec, err := parseComponent(a)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// build converts a spec into a validated periodic function at precision F.
func build[F core.Float](spec componentSpec) (periodic.Function[F], error) {
	if spec.kind == periodic.KindBias {
		v, _ := core.Saturate[float64, F](spec.value)
		return periodic.Bias(v), nil
	}

	opts := []periodic.Option{
		periodic.WithAmplitude(spec.amplitude),
		periodic.WithPhase(spec.phase),
	}
	freq, _ := core.Saturate[float64, F](spec.frequency)

	switch spec.kind {
	case periodic.KindSquare:
		return periodic.Square(freq, opts...)
	case periodic.KindSawtooth:
		return periodic.Sawtooth(freq, opts...)
	default:
		return periodic.Sine(freq, opts...)
	}
}

// parseProbes parses a comma-separated list of frequencies. An empty list is
// valid.
func parseProbes(list string) ([]float64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var freqs []float64
	for _, f := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probe frequency %q: %v", f, err)
		}
		freqs = append(freqs, v)
	}
	return freqs, nil
}

var windowsByName = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"blackman":    window.TypeBlackman,
	"flat-top":    window.TypeFlatTop,
}

func parseWindow(name string) (window.Type, error) {
	t, ok := windowsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown window %q", name)
	}
	return t, nil
}
