package portable

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// maxPayload is the widest integer payload any record may carry.
const maxPayload = 8

// WriteInteger writes v as an integer record: a signed size byte s followed by
// |s| little-endian payload bytes. Zero is the single byte 0. A negative size
// marks a negative value whose payload is sign-extended with 0xFF on decode.
func WriteInteger[T constraints.Integer](w *Writer, v T) {
	if w.err != nil {
		return
	}
	if v == 0 {
		_ = w.WriteByte(0)
		return
	}

	var buf [1 + maxPayload]byte
	n := 1
	if v < 0 {
		x := int64(v)
		for n < maxPayload && x>>(8*n) != -1 {
			n++
		}
		buf[0] = byte(int8(-n))
		Order.PutUint64(buf[1:], uint64(x))
	} else {
		u := uint64(v)
		for n < maxPayload && u>>(8*n) != 0 {
			n++
		}
		buf[0] = byte(n)
		Order.PutUint64(buf[1:], u)
	}
	w.WriteBytes(buf[:1+n])
}

// ReadInteger reads an integer record into dest.
//
// A negative record read into an unsigned type fails with
// ErrInvalidSizeForUnsigned. A record whose value does not fit T fails with
// ErrSizeOverflow; that error is not latched and the record stays unread, so
// the caller may retry with a wider type. Every other failure is latched.
func ReadInteger[T constraints.Integer](r *Reader, dest *T) error {
	head, err := r.Peek(1)
	if err != nil {
		return err
	}
	offset := r.count
	s := int8(head[0])
	if s == 0 {
		*dest = 0
		_, err = r.Discard(1)
		return err
	}

	var zero T
	signed := ^zero < 0
	width := widthOf[T]()
	n := int(s)
	if s < 0 {
		n = -n
		if !signed {
			r.setError(fmt.Errorf("%w: size %d into %d-byte unsigned at offset %d", ErrInvalidSizeForUnsigned, s, width, offset))
			return r.err
		}
	}
	if n > maxPayload {
		r.setError(fmt.Errorf("%w: size %d exceeds %d bytes at offset %d", ErrSizeOverflow, s, maxPayload, offset))
		return r.err
	}
	if n > width {
		return fmt.Errorf("%w: size %d into %d-byte type at offset %d", ErrSizeOverflow, s, width, offset)
	}

	rec, err := r.Peek(1 + n)
	if err != nil {
		return err
	}
	var buf [maxPayload]byte
	if s < 0 {
		for i := range buf {
			buf[i] = 0xFF
		}
	}
	copy(buf[:], rec[1:])
	u := Order.Uint64(buf[:])

	var v T
	if s < 0 {
		x := int64(u)
		v = T(x)
		if int64(v) != x {
			return fmt.Errorf("%w: %d does not fit %d-byte type at offset %d", ErrSizeOverflow, x, width, offset)
		}
	} else {
		v = T(u)
		if v < 0 || uint64(v) != u {
			return fmt.Errorf("%w: %d does not fit %d-byte type at offset %d", ErrSizeOverflow, u, width, offset)
		}
	}

	if _, err := r.Discard(1 + n); err != nil {
		return err
	}
	*dest = v
	return nil
}

// writeRaw writes the low width bytes of u with no size byte.
func writeRaw(w *Writer, u uint64, width int) {
	var buf [maxPayload]byte
	Order.PutUint64(buf[:], u)
	w.WriteBytes(buf[:width])
}

// readRaw reads width bytes written by writeRaw.
func readRaw(r *Reader, width int) (uint64, error) {
	var buf [maxPayload]byte
	r.readFull(buf[:width])
	if r.err != nil {
		return 0, r.err
	}
	return Order.Uint64(buf[:]), nil
}
