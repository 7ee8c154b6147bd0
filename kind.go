package portable

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/exp/constraints"
)

// Kind is the category of a scalar value.
type Kind uint8

const (
	Bool Kind = iota
	Signed
	Unsigned
	Float
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Scalar describes the kind and byte width of a value handled by the codec.
type Scalar struct {
	Kind  Kind
	Width int
}

// Value is the set of Go types the codec can encode directly.
type Value interface {
	constraints.Integer | constraints.Float | ~bool
}

var (
	BoolScalar    = Scalar{Bool, 1}
	Int8Scalar    = Scalar{Signed, 1}
	Int16Scalar   = Scalar{Signed, 2}
	Int32Scalar   = Scalar{Signed, 4}
	Int64Scalar   = Scalar{Signed, 8}
	Uint8Scalar   = Scalar{Unsigned, 1}
	Uint16Scalar  = Scalar{Unsigned, 2}
	Uint32Scalar  = Scalar{Unsigned, 4}
	Uint64Scalar  = Scalar{Unsigned, 8}
	Float32Scalar = Scalar{Float, 4}
	Float64Scalar = Scalar{Float, 8}
)

var scalarNames = map[string]Scalar{
	"bool": BoolScalar,
	"i8":   Int8Scalar,
	"i16":  Int16Scalar,
	"i32":  Int32Scalar,
	"i64":  Int64Scalar,
	"u8":   Uint8Scalar,
	"u16":  Uint16Scalar,
	"u32":  Uint32Scalar,
	"u64":  Uint64Scalar,
	"f32":  Float32Scalar,
	"f64":  Float64Scalar,
}

// ParseScalar parses one of bool, i8, i16, i32, i64, u8, u16, u32, u64, f32, f64.
func ParseScalar(name string) (Scalar, error) {
	s, ok := scalarNames[name]
	if !ok {
		return Scalar{}, fmt.Errorf("%w: unknown scalar name %q", ErrUnsupportedKind, name)
	}
	return s, nil
}

// String returns the short name accepted by ParseScalar.
func (s Scalar) String() string {
	switch s.Kind {
	case Bool:
		return "bool"
	case Signed:
		return "i" + strconv.Itoa(s.Width*8)
	case Unsigned:
		return "u" + strconv.Itoa(s.Width*8)
	case Float:
		return "f" + strconv.Itoa(s.Width*8)
	}
	return s.Kind.String() + strconv.Itoa(s.Width*8)
}

// Valid reports whether the descriptor names a width the codec can handle.
func (s Scalar) Valid() bool {
	switch s.Kind {
	case Bool:
		return s.Width == 1
	case Signed, Unsigned:
		return s.Width == 1 || s.Width == 2 || s.Width == 4 || s.Width == 8
	case Float:
		return s.Width == 4 || s.Width == 8
	}
	return false
}

// scalarCache avoids re-inspecting the same reflect.Type on every dynamic
// Encode call. Shared by all archives.
var scalarCache = xsync.NewMap[reflect.Type, Scalar]()

// Describe returns the descriptor of T.
func Describe[T Value]() Scalar {
	s, err := describeType(reflect.TypeFor[T]())
	if err != nil {
		// unreachable: Value admits only bool, integer and float kinds.
		panic(err)
	}
	return s
}

// DescriptorOf returns the descriptor of the dynamic type of v.
// Named types resolve through their underlying kind.
func DescriptorOf(v any) (Scalar, error) {
	if v == nil {
		return Scalar{}, fmt.Errorf("%w: nil value", ErrUnsupportedKind)
	}
	return describeType(reflect.TypeOf(v))
}

func describeType(t reflect.Type) (Scalar, error) {
	if s, ok := scalarCache.Load(t); ok {
		return s, nil
	}

	var s Scalar
	switch t.Kind() {
	case reflect.Bool:
		s = BoolScalar
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s = Scalar{Signed, int(t.Size())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s = Scalar{Unsigned, int(t.Size())}
	case reflect.Float32, reflect.Float64:
		s = Scalar{Float, int(t.Size())}
	default:
		return Scalar{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, t)
	}

	scalarCache.Store(t, s)
	return s, nil
}

// widthOf is the in-memory byte width of T.
func widthOf[T Value]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
