package pattern

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCopies(t *testing.T) {
	tests := []struct {
		l    int
		want int
	}{
		{0, 1},
		{2, 4},
		{4, 2},
		{6, 4},
		{8, 1},
		{10, 4},
		{12, 2},
		{16, 1},
		{20, 2},
		{22, 4},
	}
	for _, tt := range tests {
		if got := Copies(tt.l); got != tt.want {
			t.Errorf("Copies(%d) = %d, want %d", tt.l, got, tt.want)
		}
	}
}

// Every even pattern length must replicate to a byte count that tiles the
// 4-byte element.
func TestCopiesAlignsToElementSize(t *testing.T) {
	for l := 2; l <= 256; l += 2 {
		total := Copies(l) * l / 2
		if total%ElementSize != 0 {
			t.Errorf("length %d: %d copies give %d bytes, not a multiple of %d",
				l, Copies(l), total, ElementSize)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{
			name: "empty pattern means default fill",
			in:   "",
			want: nil,
		},
		{
			name: "single byte replicated four times",
			in:   "AB",
			want: []byte{0xAB, 0xAB, 0xAB, 0xAB},
		},
		{
			name: "four bytes kept as one copy",
			in:   "DEADBEEF",
			want: []byte{0xDE, 0xAD, 0xBE, 0xEF},
		},
		{
			name: "two bytes replicated twice",
			in:   "CAFE",
			want: []byte{0xCA, 0xFE, 0xCA, 0xFE},
		},
		{
			name: "lowercase digits",
			in:   "deadbeef",
			want: []byte{0xDE, 0xAD, 0xBE, 0xEF},
		},
		{
			name: "mixed case",
			in:   "aBcD",
			want: []byte{0xAB, 0xCD, 0xAB, 0xCD},
		},
		{
			name: "three bytes replicated four times",
			in:   "010203",
			want: []byte{
				0x01, 0x02, 0x03, 0x01, 0x02, 0x03,
				0x01, 0x02, 0x03, 0x01, 0x02, 0x03,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "odd length", in: "ABC", want: ErrOddLength},
		{name: "single digit", in: "A", want: ErrOddLength},
		{name: "non-hex character", in: "1g", want: ErrDigit},
		{name: "space inside pattern", in: "AB CD", want: ErrDigit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != nil {
				t.Errorf("Decode(%q) returned buffer %x on error", tt.in, got)
			}
		})
	}
}

// The output is Copies(len(s)) identical repetitions of the single decode.
func TestDecodeRepetitionConsistency(t *testing.T) {
	inputs := []string{"AB", "CAFE", "010203", "DEADBEEF", "0123456789"}
	for _, in := range inputs {
		buf, err := Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q): %v", in, err)
		}
		unit := len(in) / 2
		copies := Copies(len(in))
		if len(buf) != copies*unit {
			t.Fatalf("Decode(%q) length = %d, want %d", in, len(buf), copies*unit)
		}
		if len(buf)%ElementSize != 0 {
			t.Errorf("Decode(%q) length %d not a multiple of %d", in, len(buf), ElementSize)
		}
		for c := 1; c < copies; c++ {
			if !bytes.Equal(buf[c*unit:(c+1)*unit], buf[:unit]) {
				t.Errorf("Decode(%q) repetition %d differs from the first", in, c)
			}
		}
	}
}
