package portable

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses the staging buffers of Marshal.
// This reduces GC pressure for the many small streams a caller typically produces.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}
