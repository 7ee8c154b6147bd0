package portable

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Decoder reads portable scalar values from a stream. Creating it
// negotiates the header. After any failure other than an integer
// ErrSizeOverflow the decoder is invalid and every later call returns the
// same error.
//
// A Decoder exclusively owns its stream until Close. It is not safe for
// concurrent use, and nothing else may read from the stream meanwhile.
type Decoder struct {
	r        *Reader
	versions Versions
	layout   counterLayout
	mode     Portability
	logger   *slog.Logger
	closed   bool
}

// NewDecoder opens r for reading. Unless opts.NoHeader is set it reads
// and verifies the header, rejecting versions newer than this package.
func NewDecoder(r io.Reader, opts *Options) (*Decoder, error) {
	o := opts.withDefaults()
	br, err := NewReaderSize(r, o.BufferSize)
	if err != nil {
		return nil, err
	}

	d := &Decoder{r: br, mode: o.Portability, logger: o.Logger}
	if o.NoHeader {
		d.versions = BaselineVersions
	} else {
		d.versions, err = readHeader(br)
		if err != nil {
			switch {
			case errors.Is(err, io.ErrUnexpectedEOF):
				err = fmt.Errorf("%w: stream ended inside header: %w", ErrTruncatedData, err)
			case errors.Is(err, io.EOF):
				err = fmt.Errorf("%w: stream ended before header", ErrTruncatedData)
			}
			d.logger.Warn("portable: header rejected", "error", err)
			return nil, fmt.Errorf("read header: %w", err)
		}
		d.logger.Debug("portable: header negotiated", "protocol", d.versions.Protocol, "module", d.versions.Module)
	}
	d.layout = layoutFor(d.versions.Protocol)
	return d, nil
}

// Versions returns the negotiated protocol and module versions.
func (d *Decoder) Versions() Versions { return d.versions }

// Portability returns the float validation mode of the stream.
func (d *Decoder) Portability() Portability { return d.mode }

// Count returns the number of bytes consumed so far.
func (d *Decoder) Count() int64 { return d.r.Count() }

// Err returns the error that invalidated the stream, if any.
func (d *Decoder) Err() error { return d.r.Err() }

// More reports whether another value can be read. It is false at a
// clean end of stream and after any failure.
func (d *Decoder) More() bool {
	if d.check() != nil {
		return false
	}
	_, err := d.r.r.Peek(1)
	return err == nil
}

func (d *Decoder) check() error {
	if d.closed {
		return ErrClosed
	}
	return d.r.err
}

// Close finalizes the decoder. The underlying io.Reader is left open.
func (d *Decoder) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	return d.r.Close()
}

func (d *Decoder) report(err error) error {
	if err != nil {
		d.logger.Debug("portable: decode failed", "offset", d.r.Count(), "error", err)
	}
	return err
}

// DecodeInteger reads an integer record into T. On ErrSizeOverflow the
// record is not consumed and may be read again as a wider type.
func DecodeInteger[T constraints.Integer](d *Decoder) (T, error) {
	var v T
	if err := d.check(); err != nil {
		return v, err
	}
	err := ReadInteger(d.r, &v)
	return v, d.report(err)
}

// DecodeFloat reads an IEEE-754 float, applying the stream's portability mode.
func DecodeFloat[F constraints.Float](d *Decoder) (F, error) {
	var v F
	if err := d.check(); err != nil {
		return v, err
	}
	err := ReadFloat(d.r, d.mode, &v)
	return v, d.report(err)
}

func (d *Decoder) Bool() (bool, error) {
	var v bool
	if err := d.check(); err != nil {
		return v, err
	}
	err := ReadBool(d.r, &v)
	return v, d.report(err)
}

func (d *Decoder) Int8() (int8, error)       { return DecodeInteger[int8](d) }
func (d *Decoder) Int16() (int16, error)     { return DecodeInteger[int16](d) }
func (d *Decoder) Int32() (int32, error)     { return DecodeInteger[int32](d) }
func (d *Decoder) Int64() (int64, error)     { return DecodeInteger[int64](d) }
func (d *Decoder) Int() (int, error)         { return DecodeInteger[int](d) }
func (d *Decoder) Uint8() (uint8, error)     { return DecodeInteger[uint8](d) }
func (d *Decoder) Uint16() (uint16, error)   { return DecodeInteger[uint16](d) }
func (d *Decoder) Uint32() (uint32, error)   { return DecodeInteger[uint32](d) }
func (d *Decoder) Uint64() (uint64, error)   { return DecodeInteger[uint64](d) }
func (d *Decoder) Uint() (uint, error)       { return DecodeInteger[uint](d) }
func (d *Decoder) Float32() (float32, error) { return DecodeFloat[float32](d) }
func (d *Decoder) Float64() (float64, error) { return DecodeFloat[float64](d) }

// DecodeScalar reads one value described by s and returns it as the
// canonical Go type of s (bool, int8..int64, uint8..uint64, float32, float64).
func (d *Decoder) DecodeScalar(s Scalar) (any, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	v, err := readValue(d.r, s, d.mode)
	return v, d.report(err)
}
