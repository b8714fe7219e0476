// Package fill generates source-buffer contents for transfers: either the
// expansion of a decoded fill pattern or the pseudo-random default sequence.
package fill

import (
	"encoding/binary"
	"math"

	"github.com/pradeep-ramanna/rccl-developer/internal/pattern"
)

// Parameters of the pseudo-random default fill: element i takes the value
// (i mod 383) + 31.
const (
	randModulus = 383
	randOffset  = 31
)

// Floats produces n float32 elements. A non-empty decoded pattern (length a
// multiple of pattern.ElementSize) tiles the result cyclically, each element
// read as a little-endian 4-byte group. An empty pattern yields the
// pseudo-random default sequence.
func Floats(pat []byte, n int) []float32 {
	out := make([]float32, n)
	if len(pat) == 0 {
		for i := range out {
			out[i] = float32(i%randModulus + randOffset)
		}
		return out
	}
	elems := len(pat) / pattern.ElementSize
	for i := range out {
		off := (i % elems) * pattern.ElementSize
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(pat[off:]))
	}
	return out
}

// Bytes returns the little-endian byte image of elems. The transfer engine
// hands this image to device allocations instead of aliasing the float
// buffer's memory.
func Bytes(elems []float32) []byte {
	out := make([]byte, len(elems)*pattern.ElementSize)
	for i, v := range elems {
		binary.LittleEndian.PutUint32(out[i*pattern.ElementSize:], math.Float32bits(v))
	}
	return out
}
