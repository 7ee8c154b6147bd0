package portable

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripSlice[T Value](t *testing.T, items []T) []T {
	t.Helper()
	var buf bytes.Buffer
	e, err := NewEncoder(&buf, nil)
	require.NoError(t, err)
	require.NoError(t, EncodeSlice(e, items))
	require.NoError(t, e.Close())

	d, err := NewDecoder(&buf, nil)
	require.NoError(t, err)
	got, err := DecodeSlice[T](d)
	require.NoError(t, err)
	assert.False(t, d.More())
	return got
}

func TestSliceRoundTrip(t *testing.T) {
	ints := []int32{0, 1, -1, math.MaxInt32, math.MinInt32}
	assert.Equal(t, ints, roundTripSlice(t, ints))

	floats := []float64{0, math.Inf(-1), 1e-300, math.MaxFloat64}
	assert.Equal(t, floats, roundTripSlice(t, floats))

	flags := []bool{true, false, true}
	assert.Equal(t, flags, roundTripSlice(t, flags))

	ports := []port{22, 443, 65535}
	assert.Equal(t, ports, roundTripSlice(t, ports))

	assert.Empty(t, roundTripSlice(t, []uint8(nil)))
}

func TestSliceWireFormat(t *testing.T) {
	var buf bytes.Buffer
	e, err := NewEncoder(&buf, &Options{NoHeader: true})
	require.NoError(t, err)
	require.NoError(t, EncodeSlice(e, []int16{0, -2, 300}))
	require.NoError(t, e.Close())

	assert.Equal(t, []byte{
		1, 3, // collection size
		0,
		0xff, 0xfe,
		2, 0x2c, 0x01,
	}, buf.Bytes())
}

func TestDecodeSliceElementError(t *testing.T) {
	// Three elements announced, the second is an invalid boolean.
	d, err := NewDecoder(NewBytesReader([]byte{1, 3, 0, 4}), &Options{NoHeader: true})
	require.NoError(t, err)

	items, err := DecodeSlice[bool](d)
	require.ErrorIs(t, err, ErrInvalidBooleanEncoding)
	assert.Contains(t, err.Error(), "element 1 of 3")
	assert.Equal(t, []bool{false}, items)
}

func TestDecodeSliceHugeCount(t *testing.T) {
	// A corrupt count must not allocate up front; the stream simply runs out.
	data := []byte{8, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f, 1, 1}
	d, err := NewDecoder(NewBytesReader(data), &Options{NoHeader: true})
	require.NoError(t, err)

	items, err := DecodeSlice[uint8](d)
	require.Error(t, err)
	assert.Equal(t, []uint8{1}, items)
	assert.LessOrEqual(t, cap(items), maxPrealloc)
}

func TestSliceKeepsNaNPayload(t *testing.T) {
	f32 := roundTripSlice(t, []float32{math.Float32frombits(0x7f800001), math.Float32frombits(0xffc00123)})
	require.Len(t, f32, 2)
	assert.Equal(t, uint32(0x7f800001), math.Float32bits(f32[0]))
	assert.Equal(t, uint32(0xffc00123), math.Float32bits(f32[1]))

	named := roundTripSlice(t, []celsius{celsius(math.Float32frombits(0x7f800001))})
	require.Len(t, named, 1)
	assert.Equal(t, uint32(0x7f800001), math.Float32bits(float32(named[0])))

	f64 := roundTripSlice(t, []float64{math.Float64frombits(0x7ff0000000000001)})
	require.Len(t, f64, 1)
	assert.Equal(t, uint64(0x7ff0000000000001), math.Float64bits(f64[0]))
}
