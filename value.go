package jsondom

// Kind identifies the concrete variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindFloat64
	KindString
	KindObject
	KindArray
)

// String returns the lower-case name of the kind, e.g. "int32" or "object".
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a JSON value. It is a closed interface: the only implementations
// are Null, Bool, Int32, Int64, Float64, String, *Object and Array. Code
// consuming a Value can switch on Kind (or type-switch) and rely on no other
// variant existing.
type Value interface {
	Kind() Kind

	// jsonValue is unexported so that only types in this package can
	// satisfy the interface.
	jsonValue()
}

// Null is the JSON null literal.
type Null struct{}

// Kind reports KindNull.
func (Null) Kind() Kind { return KindNull }

func (Null) jsonValue() {}

// Bool is a JSON true or false literal.
type Bool bool

// Kind reports KindBool.
func (Bool) Kind() Kind { return KindBool }

func (Bool) jsonValue() {}

// Int32 is a JSON integer that fits in 32 bits. The parser always prefers
// this variant when the value is in range, so a document containing 5
// produces Int32(5), never Int64(5).
type Int32 int32

// Kind reports KindInt32.
func (Int32) Kind() Kind { return KindInt32 }

func (Int32) jsonValue() {}

// Int64 is a JSON integer outside the 32-bit range.
type Int64 int64

// Kind reports KindInt64.
func (Int64) Kind() Kind { return KindInt64 }

func (Int64) jsonValue() {}

// Float64 is a JSON number written with a fraction or an exponent. The
// parser classifies by syntax, not by value: 5.0 and 5e2 are Float64 even
// though they hold integral values.
type Float64 float64

// Kind reports KindFloat64.
func (Float64) Kind() Kind { return KindFloat64 }

func (Float64) jsonValue() {}

// String is a JSON string with all escape sequences already decoded.
type String string

// Kind reports KindString.
func (String) Kind() Kind { return KindString }

func (String) jsonValue() {}

// Array is a JSON array. A nil Array is a valid empty array.
type Array []Value

// Kind reports KindArray.
func (Array) Kind() Kind { return KindArray }

func (Array) jsonValue() {}
