package portable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerless() *Options { return &Options{NoHeader: true} }

func TestCounterWireFormat(t *testing.T) {
	tests := []struct {
		name  string
		write func(e *Encoder) error
		want  []byte
	}{
		{"ObjectID", func(e *Encoder) error { return e.ObjectID(70000) }, []byte{3, 0x70, 0x11, 0x01}},
		{"ClassIDNegative", func(e *Encoder) error { return e.ClassID(-1) }, []byte{0xff, 0xff}},
		{"ClassIDZero", func(e *Encoder) error { return e.ClassID(0) }, []byte{0}},
		{"LibraryVersion", func(e *Encoder) error { return e.LibraryVersion(17) }, []byte{1, 17}},
		{"RecordVersion", func(e *Encoder) error { return e.RecordVersion(256) }, []byte{2, 0, 1}},
		{"CollectionSize", func(e *Encoder) error { return e.CollectionSize(3) }, []byte{1, 3}},
		{"ItemVersion", func(e *Encoder) error { return e.ItemVersion(0) }, []byte{0}},
		{"Tracking", func(e *Encoder) error { return e.Tracking(true) }, []byte{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e, err := NewEncoder(&buf, headerless())
			require.NoError(t, err)
			require.NoError(t, tt.write(e))
			require.NoError(t, e.Close())
			assert.Equal(t, tt.want, buf.Bytes())
		})
	}
}

func TestCounterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	e, err := NewEncoder(&buf, nil)
	require.NoError(t, err)
	require.NoError(t, e.LibraryVersion(4))
	require.NoError(t, e.RecordVersion(1<<20))
	require.NoError(t, e.ClassID(-300))
	require.NoError(t, e.ObjectID(0xdeadbeef))
	require.NoError(t, e.CollectionSize(1<<40))
	require.NoError(t, e.ItemVersion(9))
	require.NoError(t, e.Tracking(false))
	require.NoError(t, e.Close())

	d, err := NewDecoder(&buf, nil)
	require.NoError(t, err)

	lib, err := d.LibraryVersion()
	require.NoError(t, err)
	assert.Equal(t, uint16(4), lib)
	rec, err := d.RecordVersion()
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<20), rec)
	class, err := d.ClassID()
	require.NoError(t, err)
	assert.Equal(t, int16(-300), class)
	obj, err := d.ObjectID()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), obj)
	n, err := d.CollectionSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), n)
	item, err := d.ItemVersion()
	require.NoError(t, err)
	assert.Equal(t, uint32(9), item)
	tracking, err := d.Tracking()
	require.NoError(t, err)
	assert.False(t, tracking)
	assert.False(t, d.More())
}

func TestCounterOverflowIsLatched(t *testing.T) {
	// A 3-byte record where a uint16 library version is expected.
	d, err := NewDecoder(NewBytesReader([]byte{3, 1, 2, 3, 0}), headerless())
	require.NoError(t, err)

	_, err = d.LibraryVersion()
	require.ErrorIs(t, err, ErrSizeOverflow)
	assert.ErrorIs(t, d.Err(), ErrSizeOverflow)

	_, err = d.Bool()
	assert.ErrorIs(t, err, ErrSizeOverflow, "the stream stays invalid")
}

func TestClassIDOverflowIsLatched(t *testing.T) {
	d, err := NewDecoder(NewBytesReader([]byte{0xfd, 0, 0, 0x80}), headerless())
	require.NoError(t, err)

	_, err = d.ClassID()
	require.ErrorIs(t, err, ErrSizeOverflow)
	assert.ErrorIs(t, d.Err(), ErrSizeOverflow)
}

func TestCounterNegativeIsRejected(t *testing.T) {
	d, err := NewDecoder(NewBytesReader([]byte{0xff, 0xff}), headerless())
	require.NoError(t, err)

	_, err = d.ObjectID()
	require.ErrorIs(t, err, ErrInvalidSizeForUnsigned)
	assert.ErrorIs(t, d.Err(), ErrInvalidSizeForUnsigned)
}

func TestLayoutFor(t *testing.T) {
	for _, protocol := range []uint16{0, 1, ProtocolVersion, 100} {
		layout := layoutFor(protocol)
		assert.Equal(t, Uint16Scalar, layout.LibraryVersion)
		assert.Equal(t, Uint32Scalar, layout.RecordVersion)
		assert.Equal(t, Int16Scalar, layout.ClassID)
		assert.Equal(t, Uint32Scalar, layout.ObjectID)
		assert.Equal(t, Uint64Scalar, layout.CollectionSize)
		assert.Equal(t, Uint32Scalar, layout.ItemVersion)
	}
}

func TestLayoutForPicksNewestApplicable(t *testing.T) {
	saved := counterLayouts
	t.Cleanup(func() { counterLayouts = saved })

	wide := saved[0].layout
	wide.ObjectID = Uint64Scalar
	counterLayouts = append(counterLayouts[:len(counterLayouts):len(counterLayouts)], struct {
		since  uint16
		layout counterLayout
	}{since: 3, layout: wide})

	assert.Equal(t, Uint32Scalar, layoutFor(2).ObjectID)
	assert.Equal(t, Uint64Scalar, layoutFor(3).ObjectID)
	assert.Equal(t, Uint64Scalar, layoutFor(9).ObjectID)
}
