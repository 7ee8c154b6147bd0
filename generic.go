package portable

import (
	"bytes"
	"fmt"
	"io"
)

// Marshal encodes v into a new stream and returns its bytes.
func Marshal(v Marshaler, opts *Options) ([]byte, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	if _, err := WriteTo(buf, v, opts); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

// Unmarshal decodes a complete stream into v. Bytes left after v has read
// its scalars must be zero padding, otherwise ErrTrailingData is returned.
func Unmarshal(data []byte, v Unmarshaler, opts *Options) error {
	r := NewBytesReader(data)
	d, err := NewDecoder(r, opts)
	if err != nil {
		return err
	}
	defer d.Close()

	if err := v.UnmarshalPortable(d); err != nil {
		return err
	}
	if err := d.Err(); err != nil {
		return err
	}
	return CheckTrailingZeros(r.Remaining())
}

// WriteTo encodes v as a complete stream, header included, to w.
func WriteTo(w io.Writer, v Marshaler, opts *Options) (int64, error) {
	e, err := NewEncoder(w, opts)
	if err != nil {
		return 0, err
	}
	if err := v.MarshalPortable(e); err != nil {
		e.Close()
		return e.Count(), err
	}
	if err := e.Close(); err != nil {
		return e.Count(), fmt.Errorf("flush: %w", err)
	}
	return e.Count(), nil
}

// ReadFrom decodes one complete stream from r into v.
func ReadFrom(r io.Reader, v Unmarshaler, opts *Options) (int64, error) {
	d, err := NewDecoder(r, opts)
	if err != nil {
		return 0, err
	}
	defer d.Close()

	if err := v.UnmarshalPortable(d); err != nil {
		return d.Count(), err
	}
	return d.Count(), d.Err()
}
