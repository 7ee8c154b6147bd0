package portable

import (
	"fmt"
	"io"
)

// WriteBool writes false as 0 and true as the two-byte form 1, 1.
func WriteBool(w *Writer, v bool) {
	if !v {
		_ = w.WriteByte(0)
		return
	}
	w.WriteBytes([]byte{1, 1})
}

// ReadBool reads a boolean record. A first byte of 1 is followed by a
// validation byte whose truth is the result.
func ReadBool(r *Reader, dest *bool) error {
	offset := r.count
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		*dest = false
	case 1:
		v, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				r.err = io.ErrUnexpectedEOF
			}
			return r.err
		}
		*dest = v != 0
	default:
		r.setError(fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidBooleanEncoding, b, offset))
		return r.err
	}
	return nil
}
