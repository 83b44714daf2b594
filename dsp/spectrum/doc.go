// Package spectrum provides spectrum-domain helpers for checking sampled
// waveforms.
//
// The package does not implement an FFT itself. It operates on complex bins
// produced by an FFT backend, and offers a Goertzel [Probe] for measuring a
// single known frequency without a full transform.
package spectrum
