package portable

import (
	"encoding/binary"
	"fmt"
)

// Order is the byte order of every multi-byte payload on the wire.
// It is fixed; the host byte order never leaks into a stream.
var Order = binary.LittleEndian

const BUFFER_SIZE = 4096

// MAX_PADDING defines the maximum number of trailing bytes to check.
// Anything larger is considered a protocol error.
const MAX_PADDING = 1024 // 1KB

// CheckTrailingZeros verifies that the bytes left after decoding are all zero.
// Zero padding is tolerated so fixed-size containers can hold a stream.
func CheckTrailingZeros(rest []byte) error {
	if len(rest) > MAX_PADDING {
		return fmt.Errorf("%w: %d bytes exceeds maximum expected size of %d bytes", ErrTrailingData, len(rest), MAX_PADDING)
	}
	for i, b := range rest {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}
	return nil
}
