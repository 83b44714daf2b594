package level_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavegen/dsp/periodic"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/measure/level"
)

func ExampleMeasure() {
	w := waveform.MustNew[float64, int16](1024,
		periodic.MustSquare[float64](8, periodic.WithAmplitude(100)),
		periodic.Bias[float64](20),
	)

	s, err := level.Measure(w, 1024)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("dc=%.0f peak=%.0f min=%.0f\n", s.DC, s.Peak, s.Min)
	// Output: dc=20 peak=120 min=-80
}
