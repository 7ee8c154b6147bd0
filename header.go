package portable

import (
	"errors"
	"fmt"
)

// Magic is the first byte of every stream written with a header.
// It is 'e'|'o'|'s', which happens to be 0x7f.
const Magic byte = 'e' | 'o' | 's'

const (
	// ProtocolVersion is the newest wire-format revision this package reads and writes.
	ProtocolVersion uint16 = 2
	// ModuleVersion is the revision of the scalar codec itself.
	ModuleVersion uint32 = 5
)

// Versions is the pair of counters negotiated when a stream is opened.
type Versions struct {
	Protocol uint16 `yaml:"protocol_version"`
	Module   uint32 `yaml:"module_version"`
}

var (
	// CurrentVersions is what an encoder writes by default.
	CurrentVersions = Versions{Protocol: ProtocolVersion, Module: ModuleVersion}
	// BaselineVersions is assumed for streams written without a header.
	BaselineVersions = Versions{Protocol: 1, Module: 1}
)

func (v Versions) String() string {
	return fmt.Sprintf("protocol %d, module %d", v.Protocol, v.Module)
}

// writeHeader writes [Magic][protocol record][module record].
func writeHeader(w *Writer, v Versions) error {
	_ = w.WriteByte(Magic)
	WriteInteger(w, v.Protocol)
	WriteInteger(w, v.Module)
	return w.err
}

// readHeader verifies the magic byte and both counters. Versions newer
// than the compiled-in ones fail with ErrUnsupportedVersion; any older
// version is accepted.
func readHeader(r *Reader) (Versions, error) {
	var v Versions

	b, err := r.ReadByte()
	if err != nil {
		return v, err
	}
	if b != Magic {
		r.setError(fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrInvalidSignature, b, Magic))
		return v, r.err
	}

	if err := readCounter(r, &v.Protocol); err != nil {
		return v, err
	}
	if v.Protocol > ProtocolVersion {
		r.setError(fmt.Errorf("%w: protocol %d, newest supported is %d", ErrUnsupportedVersion, v.Protocol, ProtocolVersion))
		return v, r.err
	}

	if err := readCounter(r, &v.Module); err != nil {
		return v, err
	}
	if v.Module > ModuleVersion {
		r.setError(fmt.Errorf("%w: module %d, newest supported is %d", ErrUnsupportedVersion, v.Module, ModuleVersion))
		return v, r.err
	}
	return v, nil
}

// readCounter is ReadInteger for bookkeeping fields, where an overflowing
// record means a corrupt stream rather than a caller's choice of type.
func readCounter[T uint8 | uint16 | uint32 | uint64 | int16](r *Reader, dest *T) error {
	err := ReadInteger(r, dest)
	if err != nil && errors.Is(err, ErrSizeOverflow) {
		r.setError(err)
	}
	return err
}
