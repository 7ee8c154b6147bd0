package portable

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Portability selects how decoded floating point values are validated.
// It is fixed for the lifetime of a stream.
type Portability uint8

const (
	// Restricted enforces IEEE-754 normal numbers and rejects denormals.
	Restricted Portability = iota
	// Relaxed accepts any bit pattern.
	Relaxed
)

func (p Portability) String() string {
	switch p {
	case Restricted:
		return "restricted"
	case Relaxed:
		return "relaxed"
	}
	return fmt.Sprintf("portability(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Portability) MarshalText() ([]byte, error) {
	if p != Restricted && p != Relaxed {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPortability, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Portability) UnmarshalText(text []byte) error {
	switch string(text) {
	case "restricted", "":
		*p = Restricted
	case "relaxed":
		*p = Relaxed
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPortability, text)
	}
	return nil
}

// floatLayout returns the byte width of F. Only IEEE-754 binary32 and
// binary64 have an integer type of matching width.
func floatLayout[F constraints.Float]() (int, error) {
	switch width := widthOf[F](); width {
	case 4, 8:
		return width, nil
	default:
		return 0, fmt.Errorf("%w: %d-byte float", ErrUnsupportedFloatLayout, width)
	}
}

func floatBits[F constraints.Float](v F, width int) uint64 {
	if width == 4 {
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(float64(v))
}

func floatFromBits[F constraints.Float](u uint64, width int) F {
	if width == 4 {
		return F(math.Float32frombits(uint32(u)))
	}
	return F(math.Float64frombits(u))
}

// isDenormal reports whether the bit pattern is a nonzero subnormal.
func isDenormal(u uint64, width int) bool {
	if width == 4 {
		return u&0x7f800000 == 0 && u&0x007fffff != 0
	}
	return u&0x7ff0000000000000 == 0 && u&0x000fffffffffffff != 0
}

// WriteFloat writes the exact IEEE-754 bit pattern of v at full width.
// There is no zero shortcut: +0.0, -0.0 and NaN payloads all survive.
func WriteFloat[F constraints.Float](w *Writer, v F) error {
	width, err := floatLayout[F]()
	if err != nil {
		return err
	}
	writeRaw(w, floatBits(v, width), width)
	return w.err
}

// ReadFloat reads a float record into dest. In Restricted mode a
// nonzero subnormal result fails with ErrDenormalRejected.
func ReadFloat[F constraints.Float](r *Reader, mode Portability, dest *F) error {
	width, err := floatLayout[F]()
	if err != nil {
		return err
	}
	offset := r.count
	u, err := readRaw(r, width)
	if err != nil {
		return err
	}
	if mode == Restricted && isDenormal(u, width) {
		r.setError(fmt.Errorf("%w: bits 0x%0*x at offset %d", ErrDenormalRejected, width*2, u, offset))
		return r.err
	}
	*dest = floatFromBits[F](u, width)
	return nil
}
