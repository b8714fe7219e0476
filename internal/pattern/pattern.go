// Package pattern decodes hexadecimal fill patterns into byte buffers whose
// length tiles the 4-byte element used by the transfer engine.
package pattern

import (
	"errors"
	"fmt"
)

// ElementSize is the size in bytes of one data element (a float32).
const ElementSize = 4

var (
	// ErrOddLength reports a pattern with an odd number of hex digits.
	ErrOddLength = errors.New("must contain an even number of hex digits")
	// ErrDigit reports a character outside 0-9/a-f/A-F.
	ErrDigit = errors.New("must contain only hex digits (0-9/a-f/A-F)")
)

// Copies returns the replication factor for a hex pattern of length l.
// Replicating the decoded bytes 1, 2 or 4 times guarantees the total byte
// count is a multiple of ElementSize for every even l.
func Copies(l int) int {
	switch l % 8 {
	case 0:
		return 1
	case 4:
		return 2
	default:
		return 4
	}
}

// Decode converts an optional hex string into a byte buffer holding
// Copies(len(s)) back-to-back repetitions of the decoded pattern. An empty
// string decodes to an empty buffer, which callers treat as "use the
// pseudo-random default fill".
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}

	unit := len(s) / 2
	copies := Copies(len(s))
	buf := make([]byte, copies*unit)
	for i := 0; i < unit; i++ {
		hi, err := nibble(s[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := nibble(s[2*i+1])
		if err != nil {
			return nil, err
		}
		buf[i] = hi<<4 | lo
	}
	for c := 1; c < copies; c++ {
		copy(buf[c*unit:(c+1)*unit], buf[:unit])
	}
	return buf, nil
}

func nibble(c byte) (byte, error) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', nil
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, nil
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("%w (not %c)", ErrDigit, c)
	}
}
