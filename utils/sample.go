// SPDX-License-Identifier: EPL-2.0

// Package utils holds the per-sample arithmetic shared by the decoders,
// the encoder and the resampler.
package utils

// FullScale is the divisor that maps an int16 sample onto [-1, 1):
// -32768 becomes exactly -1.0 and 32767 becomes 0.999969..., never 1.0.
const FullScale = 32768.0

// Int16ToFloat32 normalizes a single 16-bit PCM sample.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / FullScale
}

// Float32ToInt16 is the inverse of Int16ToFloat32. Input outside [-1, 1] is
// clamped, and positive full scale saturates at 32767.
func Float32ToInt16(x float32) int16 {
	v := x * FullScale

	switch {
	case v >= 32767:
		return 32767
	case v <= -32768:
		return -32768
	}

	return int16(v)
}
