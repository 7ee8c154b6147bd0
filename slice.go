package portable

import (
	"fmt"
	"reflect"
)

// maxPrealloc bounds the capacity trusted from a collection size counter,
// so a corrupt count cannot force a huge allocation up front.
const maxPrealloc = 1024

// EncodeSlice writes a collection size counter followed by every element.
func EncodeSlice[T Value](e *Encoder, items []T) error {
	if err := e.CollectionSize(uint64(len(items))); err != nil {
		return err
	}
	s := Describe[T]()
	for _, item := range items {
		if err := writeValue(e.w, s, reflect.ValueOf(item)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSlice reads a collection written by EncodeSlice.
func DecodeSlice[T Value](d *Decoder) ([]T, error) {
	n, err := d.CollectionSize()
	if err != nil {
		return nil, err
	}
	s := Describe[T]()
	target := reflect.TypeFor[T]()

	items := make([]T, 0, min(n, maxPrealloc))
	for i := uint64(0); i < n; i++ {
		v, err := d.DecodeScalar(s)
		if err != nil {
			return items, fmt.Errorf("element %d of %d: %w", i, n, err)
		}
		items = append(items, reflect.ValueOf(v).Convert(target).Interface().(T))
	}
	return items, nil
}
