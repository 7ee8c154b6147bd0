package portable

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func BenchmarkWriteInteger(b *testing.B) {
	w, _ := NewWriter(io.Discard)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		WriteInteger(w, int64(i))
	}
	w.Flush()
}

func BenchmarkReadInteger(b *testing.B) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf)
	for i := 0; i < 1024; i++ {
		WriteInteger(w, int64(i*i-512))
	}
	w.Flush()
	data := buf.Bytes()

	br := NewBytesReader(data)
	r, _ := NewReader(br)
	var v int64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if br.Available() == 0 {
			br.Reset()
			r.count = 0
		}
		if err := ReadInteger(r, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriteFloat64(b *testing.B) {
	w, _ := NewWriter(io.Discard)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WriteFloat(w, float64(i)*math.Pi)
	}
	w.Flush()
}

func BenchmarkReadFloat64Restricted(b *testing.B) {
	data := make([]byte, 8*1024)
	for i := 0; i < 1024; i++ {
		Order.PutUint64(data[8*i:], math.Float64bits(float64(i)+0.5))
	}
	br := NewBytesReader(data)
	r, _ := NewReader(br)
	var f float64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if br.Available() == 0 {
			br.Reset()
		}
		if err := ReadFloat(r, Restricted, &f); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	in := &reading{Sensor: 7, Delta: -3, Value: 98.6, Valid: true, Samples: []int32{1, 2, 3, 4, 5, 6, 7, 8}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(in, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	in := &reading{Sensor: 7, Delta: -3, Value: 98.6, Valid: true, Samples: []int32{1, 2, 3, 4, 5, 6, 7, 8}}
	data, err := Marshal(in, nil)
	if err != nil {
		b.Fatal(err)
	}
	var out reading
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Unmarshal(data, &out, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// Baseline: fixed-width binary.Write of the same payload, without size bytes.
func BenchmarkStandardBinaryWrite(b *testing.B) {
	payload := struct {
		Sensor uint32
		Delta  int16
		Value  float64
	}{7, -3, 98.6}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = binary.Write(io.Discard, binary.LittleEndian, &payload)
	}
}
