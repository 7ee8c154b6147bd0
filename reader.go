package portable

import (
	"bufio"
	"io"
)

type ReaderPro interface {
	io.Reader
	io.ByteReader
	io.Closer
	Peek(n int) ([]byte, error)
	Discard(n int) (int, error)
	Size() int
}

// Reader provides a buffered cursor that simplifies reading portable records.
// It wraps bufio.Reader and tracks the first error. Subsequent reads become no-ops,
// so a stream that failed half way can never be mistaken for a good one.
//
// A Reader is owned by exactly one decoder; it is not safe for concurrent use.
type Reader struct {
	r     ReaderPro
	count int64 // total bytes read
	err   error // first error encountered.
}

var _ ReaderPro = (*Reader)(nil)

// NewReaderSize creates a new Reader with a specified buffer size.
func NewReaderSize(r io.Reader, size int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch reader := r.(type) {
	// Reuse the underlying buffer if it's already a compatible Reader.
	case *Reader:
		if reader.r.Size() >= size {
			return &Reader{r: reader.r}, nil
		}

	// prevent unpredictable double-buffering.
	case *bufio.Reader:
		if reader.Size() >= size && reader.Size() >= 16 {
			return &Reader{r: &bufioReaderAdapter{reader}}, nil
		}
		return nil, ErrAlreadyBuffered

	// underlying is a buf so we don't need buffering
	case *BytesReader:
		return &Reader{r: reader}, nil
	}

	// Peeking a whole integer record needs at least 9 bytes of buffer.
	if size < 16 {
		return nil, ErrSizeTooSmall
	}

	return &Reader{r: &bufioReaderAdapter{bufio.NewReaderSize(r, size)}}, nil
}

// NewReader creates a new Reader with a default buffer size.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderSize(r, BUFFER_SIZE)
}

// Close releases the buffering layer. The caller's io.Reader is never closed.
func (r *Reader) Close() error {
	return r.r.Close()
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

// ReadByte implements the io.ByteReader interface.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	b, err := r.r.ReadByte()
	if err == nil {
		r.count++
	} else {
		r.err = err
	}
	return b, err
}

// Peek returns the next n bytes without advancing the cursor.
// A stream ending inside the peeked range latches io.ErrUnexpectedEOF;
// a stream ending before it latches io.EOF.
func (r *Reader) Peek(n int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, err := r.r.Peek(n)
	if err != nil {
		if err == io.EOF && len(b) > 0 {
			err = io.ErrUnexpectedEOF
		}
		r.setError(err)
		return b, r.err
	}
	return b, nil
}

// Discard skips the next n bytes.
func (r *Reader) Discard(n int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if n < 0 {
		r.setError(ErrDiscardNegative)
		return 0, r.err
	}
	d, err := r.r.Discard(n)
	r.count += int64(d)
	if err == io.EOF && d > 0 {
		err = io.ErrUnexpectedEOF
	}
	r.setError(err)
	return d, r.err
}

func (r *Reader) Size() int    { return r.r.Size() }
func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }
func (r *Reader) IsEOF() bool  { return r.err == io.EOF }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// readFull fills p entirely or latches an error.
func (r *Reader) readFull(p []byte) {
	if r.err != nil || len(p) == 0 {
		return
	}
	// io.ReadFull reports io.EOF only when nothing was read; a partial
	// read replaces the io.EOF latched by Read with io.ErrUnexpectedEOF.
	if _, err := io.ReadFull(r, p); err != nil {
		r.err = err
	}
}

// ReadBytes reads n bytes and returns a new byte slice.
func (r *Reader) ReadBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	r.readFull(buf)
	if r.err != nil {
		return nil
	}
	return buf
}
