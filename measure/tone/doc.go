// Package tone measures the spectral content of sampled waveforms.
//
// An [Analyzer] windows a block of samples, runs a forward FFT and reports
// the one-sided amplitude spectrum together with its strongest peaks. It is
// used to confirm that a composite waveform contains the components it was
// built from.
package tone
