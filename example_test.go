package portable_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/oy3o/portable"
)

func Example() {
	var buf bytes.Buffer
	e, err := portable.NewEncoder(&buf, nil)
	if err != nil {
		panic(err)
	}
	_ = e.Int32(-5)
	_ = e.Bool(true)
	_ = e.Float32(1.5)
	if err := e.Close(); err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", buf.Bytes())

	d, err := portable.NewDecoder(&buf, nil)
	if err != nil {
		panic(err)
	}
	i, _ := d.Int32()
	b, _ := d.Bool()
	f, _ := d.Float32()
	fmt.Println(d.Versions(), i, b, f)
	// Output:
	// 7f 01 02 01 05 ff fb 01 01 00 00 c0 3f
	// protocol 2, module 5 -5 true 1.5
}

func ExampleDecodeInteger() {
	data, _ := portable.Marshal(portable.EncoderFunc(func(e *portable.Encoder) error {
		return e.Int64(1000)
	}), nil)

	d, _ := portable.NewDecoder(bytes.NewReader(data), nil)
	if _, err := portable.DecodeInteger[int8](d); errors.Is(err, portable.ErrSizeOverflow) {
		fmt.Println("too wide for int8")
	}
	v, _ := portable.DecodeInteger[int16](d)
	fmt.Println(v)
	// Output:
	// too wide for int8
	// 1000
}
