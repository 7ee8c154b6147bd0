// Package portable encodes booleans, integers and IEEE-754 floats as a byte
// stream that decodes identically on any architecture, whatever its native
// integer width or byte order.
//
// # Wire format
//
// A stream optionally starts with a header:
//
//	[Magic 0x7f][protocol version: integer record][module version: integer record]
//
// Values follow with no framing. Every multi-byte payload is little-endian.
//
//	integer  [s int8][|s| bytes]   s == 0 is the value 0, s < 0 marks a negative value
//	bool     [0] or [1][1]
//	float32  [4 bytes]             exact bit pattern
//	float64  [8 bytes]             exact bit pattern
//
// Integer records carry only the bytes the value needs, so a value written
// as int8 can be read as int64 and a small int64 can be read as int8. A
// record that does not fit the requested type fails with ErrSizeOverflow
// and stays unread.
//
// # Versions
//
// A decoder accepts any protocol or module version up to ProtocolVersion and
// ModuleVersion and rejects newer ones with ErrUnsupportedVersion. Streams
// written with Options.NoHeader are read as BaselineVersions.
//
// # Floats
//
// Only binary32 and binary64 are supported; there is no extended precision.
// In Restricted mode (the default) decoding a nonzero subnormal fails with
// ErrDenormalRejected. Infinities and NaN payloads pass through unchanged in
// both modes.
//
// # Ownership
//
// Encoders and Decoders are not safe for concurrent use. Each one owns its
// stream from creation to Close, and no other reader or writer may touch the
// stream in between.
package portable
