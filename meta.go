package portable

import (
	"errors"
	"fmt"
)

// counterLayout holds the encoded type of each bookkeeping counter. The
// tracking flag is always a boolean record.
type counterLayout struct {
	LibraryVersion Scalar
	RecordVersion  Scalar
	ClassID        Scalar
	ObjectID       Scalar
	CollectionSize Scalar
	ItemVersion    Scalar
}

// counterLayouts is ordered by protocol version. A protocol revision that
// changes a counter width appends an entry; older streams keep theirs.
var counterLayouts = []struct {
	since  uint16
	layout counterLayout
}{
	{since: 1, layout: counterLayout{
		LibraryVersion: Uint16Scalar,
		RecordVersion:  Uint32Scalar,
		ClassID:        Int16Scalar,
		ObjectID:       Uint32Scalar,
		CollectionSize: Uint64Scalar,
		ItemVersion:    Uint32Scalar,
	}},
}

// layoutFor returns the counter layout in force for a protocol version.
func layoutFor(protocol uint16) counterLayout {
	layout := counterLayouts[0].layout
	for _, entry := range counterLayouts {
		if entry.since > protocol {
			break
		}
		layout = entry.layout
	}
	return layout
}

// LibraryVersion writes the version of the object-graph library that produced the stream.
func (e *Encoder) LibraryVersion(v uint16) error {
	return e.counter(e.layout.LibraryVersion, uint64(v))
}

// RecordVersion writes the version of a single serialized record.
func (e *Encoder) RecordVersion(v uint32) error {
	return e.counter(e.layout.RecordVersion, uint64(v))
}

// ClassID writes a class identifier. Negative values are reserved by the caller's framework.
func (e *Encoder) ClassID(v int16) error {
	if err := e.check(); err != nil {
		return err
	}
	return writeSigned(e.w, e.layout.ClassID, int64(v))
}

// ObjectID writes an object identifier.
func (e *Encoder) ObjectID(v uint32) error {
	return e.counter(e.layout.ObjectID, uint64(v))
}

// CollectionSize writes the element count that precedes a collection.
func (e *Encoder) CollectionSize(n uint64) error {
	return e.counter(e.layout.CollectionSize, n)
}

// ItemVersion writes the version shared by the elements of a collection.
func (e *Encoder) ItemVersion(v uint32) error {
	return e.counter(e.layout.ItemVersion, uint64(v))
}

// Tracking writes the object tracking flag.
func (e *Encoder) Tracking(v bool) error {
	return e.Bool(v)
}

func (e *Encoder) counter(s Scalar, u uint64) error {
	if err := e.check(); err != nil {
		return err
	}
	return writeUnsigned(e.w, s, u)
}

func (d *Decoder) LibraryVersion() (uint16, error) {
	u, err := d.counter(d.layout.LibraryVersion, 16)
	return uint16(u), err
}

func (d *Decoder) RecordVersion() (uint32, error) {
	u, err := d.counter(d.layout.RecordVersion, 32)
	return uint32(u), err
}

func (d *Decoder) ClassID() (int16, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	x, err := readSigned(d.r, d.layout.ClassID)
	if err != nil {
		return 0, d.fail(err)
	}
	if x < -1<<15 || x >= 1<<15 {
		return 0, d.fail(fmt.Errorf("%w: class id %d", ErrSizeOverflow, x))
	}
	return int16(x), nil
}

func (d *Decoder) ObjectID() (uint32, error) {
	u, err := d.counter(d.layout.ObjectID, 32)
	return uint32(u), err
}

func (d *Decoder) CollectionSize() (uint64, error) {
	return d.counter(d.layout.CollectionSize, 64)
}

func (d *Decoder) ItemVersion() (uint32, error) {
	u, err := d.counter(d.layout.ItemVersion, 32)
	return uint32(u), err
}

func (d *Decoder) Tracking() (bool, error) {
	return d.Bool()
}

// counter reads an unsigned counter and checks it fits bits. Counters are
// bookkeeping, so unlike plain integers an overflow invalidates the stream.
func (d *Decoder) counter(s Scalar, bits int) (uint64, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	u, err := readUnsigned(d.r, s)
	if err != nil {
		return 0, d.fail(err)
	}
	if bits < 64 && u>>bits != 0 {
		return 0, d.fail(fmt.Errorf("%w: counter %d exceeds %d bits", ErrSizeOverflow, u, bits))
	}
	return u, nil
}

// fail latches err, including a size overflow, and returns it.
func (d *Decoder) fail(err error) error {
	if errors.Is(err, ErrSizeOverflow) {
		d.r.setError(err)
	}
	d.logger.Warn("portable: decode failed", "offset", d.r.Count(), "error", err)
	return err
}
