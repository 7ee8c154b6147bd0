package portable

import "io"

// BytesReader is a ReaderPro over an in-memory byte slice. Peek returns
// sub-slices of B without copying.
type BytesReader struct {
	B []byte // source slice
	N int    // current read position
}

var _ ReaderPro = (*BytesReader)(nil)

// NewBytesReader creates a new BytesReader.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

func (r *BytesReader) Close() error { return nil }

// Read implements the [io.Reader] interface.
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	n := copy(p, r.B[r.N:])
	r.N += n
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (r *BytesReader) ReadByte() (byte, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	b := r.B[r.N]
	r.N++
	return b, nil
}

// Peek returns the next n bytes without advancing. Fewer bytes are
// returned together with io.EOF when the slice ends first.
func (r *BytesReader) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrDiscardNegative
	}
	rest := r.B[min(r.N, len(r.B)):]
	if len(rest) < n {
		return rest, io.EOF
	}
	return rest[:n], nil
}

// Discard skips the next n bytes, stopping at the end of the slice.
func (r *BytesReader) Discard(n int) (int, error) {
	if n < 0 {
		return 0, ErrDiscardNegative
	}
	avail := r.Available()
	if n > avail {
		r.N += avail
		return avail, io.EOF
	}
	r.N += n
	return n, nil
}

// Reset allows the underlying byte slice to be reused.
func (r *BytesReader) Reset() { r.N = 0 }

// Len returns the number of bytes read.
func (r *BytesReader) Len() int { return r.N }

// Size returns the size of the underlying byte slice.
func (r *BytesReader) Size() int { return len(r.B) }

// Available returns the number of bytes available for reading.
func (r *BytesReader) Available() int {
	return max(len(r.B)-r.N, 0)
}

// Remaining returns the unread part of the slice.
func (r *BytesReader) Remaining() []byte {
	return r.B[min(r.N, len(r.B)):]
}
