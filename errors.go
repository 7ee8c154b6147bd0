package portable

import "errors"

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("portable: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a buffer size too small to hold the largest record
	// that must be peeked as a whole.
	ErrSizeTooSmall = errors.New("portable: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer whose buffer is too small, which would lead to double buffering.
	ErrAlreadyBuffered = errors.New("portable: reader or writer is already buffered")

	// ErrDiscardNegative indicates a Discard operation was attempted with a negative byte count.
	ErrDiscardNegative = errors.New("portable: cannot discard negative number of bytes")

	// ErrTrailingData is returned by Unmarshal when non-zero bytes are found
	// after the last decoded value.
	ErrTrailingData = errors.New("portable: non-zero trailing data found after decoding")

	// ErrTruncatedData indicates that the stream ended before or inside the header.
	ErrTruncatedData = errors.New("portable: truncated data")

	// ErrClosed is returned by an Encoder or Decoder used after Close.
	ErrClosed = errors.New("portable: use of closed archive")

	// ErrInvalidSignature indicates that the first byte of a stream is not Magic.
	// The stream must be abandoned.
	ErrInvalidSignature = errors.New("portable: invalid signature")

	// ErrUnsupportedVersion indicates a protocol or module version newer than
	// the one compiled into this package.
	ErrUnsupportedVersion = errors.New("portable: unsupported version")

	// ErrSizeOverflow indicates an integer record that does not fit the requested
	// type. The record is left unconsumed so the caller may retry with a wider type.
	ErrSizeOverflow = errors.New("portable: integer record overflows target type")

	// ErrInvalidSizeForUnsigned indicates a negative integer record decoded into an unsigned type.
	ErrInvalidSizeForUnsigned = errors.New("portable: negative size for unsigned type")

	// ErrInvalidBooleanEncoding indicates a boolean record whose first byte is neither 0 nor 1.
	ErrInvalidBooleanEncoding = errors.New("portable: invalid boolean encoding")

	// ErrDenormalRejected indicates a subnormal float decoded in restricted portability mode.
	ErrDenormalRejected = errors.New("portable: denormalized float rejected")

	// ErrUnsupportedFloatLayout indicates a floating type with no integer type of matching width.
	ErrUnsupportedFloatLayout = errors.New("portable: unsupported float layout")

	// ErrUnsupportedKind indicates a value that is not a boolean, integer or IEEE-754 float.
	ErrUnsupportedKind = errors.New("portable: unsupported scalar kind")

	// ErrInvalidPortability indicates an unknown portability mode name.
	ErrInvalidPortability = errors.New("portable: invalid portability mode")
)
