package portable

// Marshaler is implemented by types that write themselves as a sequence of
// portable scalars. This is the contract with object-graph frameworks: they
// walk their own structure and call the Encoder once per scalar field.
type Marshaler interface {
	MarshalPortable(e *Encoder) error
}

// Unmarshaler is the reading counterpart of Marshaler. It must read the
// same scalars in the same order.
type Unmarshaler interface {
	UnmarshalPortable(d *Decoder) error
}

// Codec aggregates both directions.
type Codec interface {
	Marshaler
	Unmarshaler
}

// EncoderFunc adapts a function to Marshaler.
type EncoderFunc func(e *Encoder) error

func (f EncoderFunc) MarshalPortable(e *Encoder) error { return f(e) }

// DecoderFunc adapts a function to Unmarshaler.
type DecoderFunc func(d *Decoder) error

func (f DecoderFunc) UnmarshalPortable(d *Decoder) error { return f(d) }
