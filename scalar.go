package portable

import (
	"fmt"
	"reflect"
)

// writeUnsigned writes u as an unsigned integer record of the width in s.
func writeUnsigned(w *Writer, s Scalar, u uint64) error {
	if s.Kind != Unsigned || !s.Valid() {
		return fmt.Errorf("%w: %s is not an unsigned integer", ErrUnsupportedKind, s)
	}
	if s.Width < 8 && u>>(8*s.Width) != 0 {
		return fmt.Errorf("%w: %d does not fit %s", ErrSizeOverflow, u, s)
	}
	switch s.Width {
	case 1:
		WriteInteger(w, uint8(u))
	case 2:
		WriteInteger(w, uint16(u))
	case 4:
		WriteInteger(w, uint32(u))
	default:
		WriteInteger(w, u)
	}
	return w.err
}

// writeSigned writes x as a signed integer record of the width in s.
func writeSigned(w *Writer, s Scalar, x int64) error {
	if s.Kind != Signed || !s.Valid() {
		return fmt.Errorf("%w: %s is not a signed integer", ErrUnsupportedKind, s)
	}
	if s.Width < 8 {
		limit := int64(1) << (8*s.Width - 1)
		if x < -limit || x >= limit {
			return fmt.Errorf("%w: %d does not fit %s", ErrSizeOverflow, x, s)
		}
	}
	switch s.Width {
	case 1:
		WriteInteger(w, int8(x))
	case 2:
		WriteInteger(w, int16(x))
	case 4:
		WriteInteger(w, int32(x))
	default:
		WriteInteger(w, x)
	}
	return w.err
}

func readUnsigned(r *Reader, s Scalar) (uint64, error) {
	switch s.Width {
	case 1:
		var v uint8
		err := ReadInteger(r, &v)
		return uint64(v), err
	case 2:
		var v uint16
		err := ReadInteger(r, &v)
		return uint64(v), err
	case 4:
		var v uint32
		err := ReadInteger(r, &v)
		return uint64(v), err
	case 8:
		var v uint64
		err := ReadInteger(r, &v)
		return v, err
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedKind, s)
}

func readSigned(r *Reader, s Scalar) (int64, error) {
	switch s.Width {
	case 1:
		var v int8
		err := ReadInteger(r, &v)
		return int64(v), err
	case 2:
		var v int16
		err := ReadInteger(r, &v)
		return int64(v), err
	case 4:
		var v int32
		err := ReadInteger(r, &v)
		return int64(v), err
	case 8:
		var v int64
		err := ReadInteger(r, &v)
		return v, err
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedKind, s)
}

// writeValue encodes v, whose descriptor is s, through the matching codec.
func writeValue(w *Writer, s Scalar, v reflect.Value) error {
	switch s.Kind {
	case Bool:
		WriteBool(w, v.Bool())
		return w.err
	case Signed:
		return writeSigned(w, s, v.Int())
	case Unsigned:
		return writeUnsigned(w, s, v.Uint())
	case Float:
		if s.Width == 4 {
			return WriteFloat(w, float32Of(v))
		}
		return WriteFloat(w, v.Float())
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedKind, s)
}

// float32Of reads a float32 kind without widening it. Value.Float goes
// through float64, which quiets signalling NaNs on some architectures.
func float32Of(v reflect.Value) float32 {
	if f, ok := v.Interface().(float32); ok {
		return f
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return *(*float32)(p.UnsafePointer())
}

// readValue decodes one value described by s. The result has the
// canonical Go type of s: bool, int8..int64, uint8..uint64, float32 or float64.
func readValue(r *Reader, s Scalar, mode Portability) (any, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, s)
	}
	switch s.Kind {
	case Bool:
		var v bool
		err := ReadBool(r, &v)
		return v, err
	case Signed:
		x, err := readSigned(r, s)
		if err != nil {
			return nil, err
		}
		switch s.Width {
		case 1:
			return int8(x), nil
		case 2:
			return int16(x), nil
		case 4:
			return int32(x), nil
		}
		return x, nil
	case Unsigned:
		u, err := readUnsigned(r, s)
		if err != nil {
			return nil, err
		}
		switch s.Width {
		case 1:
			return uint8(u), nil
		case 2:
			return uint16(u), nil
		case 4:
			return uint32(u), nil
		}
		return u, nil
	default:
		if s.Width == 4 {
			var f float32
			err := ReadFloat(r, mode, &f)
			return f, err
		}
		var f float64
		err := ReadFloat(r, mode, &f)
		return f, err
	}
}

