package periodic

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

var (
	ErrInvalidFrequency = errors.New("periodic: frequency must be finite, normal and positive")
	ErrInvalidAmplitude = errors.New("periodic: amplitude must be non-negative and not NaN")
	ErrInvalidPhase     = errors.New("periodic: phase must be finite")
)

func validate[F core.Float](kind Kind, frequency, amplitude, phase F) error {
	if !core.IsNormal(frequency) || frequency < 0 {
		return fmt.Errorf("%w: %s frequency %v", ErrInvalidFrequency, kind, frequency)
	}
	if math.IsNaN(float64(amplitude)) || math.Signbit(float64(amplitude)) {
		return fmt.Errorf("%w: %s amplitude %v", ErrInvalidAmplitude, kind, amplitude)
	}
	if !core.IsFinite(phase) {
		return fmt.Errorf("%w: %s phase %v", ErrInvalidPhase, kind, phase)
	}
	return nil
}
