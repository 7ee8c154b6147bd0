package portable

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Encoder writes portable scalar values to a stream. Creating it writes
// the header; Close flushes whatever is still buffered.
//
// An Encoder exclusively owns its stream until Close. It is not safe for
// concurrent use, and nothing else may write to the stream meanwhile.
type Encoder struct {
	w        *Writer
	versions Versions
	layout   counterLayout
	logger   *slog.Logger
	closed   bool
}

// NewEncoder opens w for writing. Unless opts.NoHeader is set it writes
// Magic followed by the protocol and module versions.
func NewEncoder(w io.Writer, opts *Options) (*Encoder, error) {
	o := opts.withDefaults()
	bw, err := NewWriterSize(w, o.BufferSize)
	if err != nil {
		return nil, err
	}

	e := &Encoder{w: bw, logger: o.Logger}
	if o.NoHeader {
		e.versions = BaselineVersions
	} else {
		e.versions = o.Versions
		if err := writeHeader(bw, e.versions); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		e.logger.Debug("portable: header written", "protocol", e.versions.Protocol, "module", e.versions.Module)
	}
	e.layout = layoutFor(e.versions.Protocol)
	return e, nil
}

// Versions returns the versions the stream is being written as.
func (e *Encoder) Versions() Versions { return e.versions }

// Count returns the number of bytes encoded so far, buffered or not.
func (e *Encoder) Count() int64 { return e.w.Count() }

// Err returns the first error that stopped the stream.
func (e *Encoder) Err() error { return e.w.Err() }

func (e *Encoder) check() error {
	if e.closed {
		return ErrClosed
	}
	return e.w.err
}

// Flush pushes buffered bytes to the underlying writer.
func (e *Encoder) Flush() error {
	if err := e.check(); err != nil {
		return err
	}
	return e.w.Flush()
}

// Close flushes the stream and finalizes the encoder. The underlying
// io.Writer is left open.
func (e *Encoder) Close() error {
	if e.closed {
		return ErrClosed
	}
	err := e.w.Close()
	e.closed = true
	return err
}

// EncodeInteger writes an integer record of any integer type.
func EncodeInteger[T constraints.Integer](e *Encoder, v T) error {
	if err := e.check(); err != nil {
		return err
	}
	WriteInteger(e.w, v)
	return e.w.err
}

// EncodeFloat writes the bit pattern of an IEEE-754 float.
func EncodeFloat[F constraints.Float](e *Encoder, v F) error {
	if err := e.check(); err != nil {
		return err
	}
	return WriteFloat(e.w, v)
}

func (e *Encoder) Bool(v bool) error {
	if err := e.check(); err != nil {
		return err
	}
	WriteBool(e.w, v)
	return e.w.err
}

func (e *Encoder) Int8(v int8) error       { return EncodeInteger(e, v) }
func (e *Encoder) Int16(v int16) error     { return EncodeInteger(e, v) }
func (e *Encoder) Int32(v int32) error     { return EncodeInteger(e, v) }
func (e *Encoder) Int64(v int64) error     { return EncodeInteger(e, v) }
func (e *Encoder) Int(v int) error         { return EncodeInteger(e, v) }
func (e *Encoder) Uint8(v uint8) error     { return EncodeInteger(e, v) }
func (e *Encoder) Uint16(v uint16) error   { return EncodeInteger(e, v) }
func (e *Encoder) Uint32(v uint32) error   { return EncodeInteger(e, v) }
func (e *Encoder) Uint64(v uint64) error   { return EncodeInteger(e, v) }
func (e *Encoder) Uint(v uint) error       { return EncodeInteger(e, v) }
func (e *Encoder) Float32(v float32) error { return EncodeFloat(e, v) }
func (e *Encoder) Float64(v float64) error { return EncodeFloat(e, v) }

// Encode writes any boolean, integer or float value, named types
// included, dispatching on its descriptor.
func (e *Encoder) Encode(v any) error {
	if err := e.check(); err != nil {
		return err
	}
	s, err := DescriptorOf(v)
	if err != nil {
		return err
	}
	return writeValue(e.w, s, reflect.ValueOf(v))
}
