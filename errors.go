package jsondom

import (
	"fmt"
	"strconv"
)

// An UnexpectedTokenError reports input that is syntactically valid at the
// byte level but appears where the grammar does not allow it, such as a
// missing colon or a value where a key is required. Offset is the byte
// position of the offending token in the input.
type UnexpectedTokenError struct {
	Offset int
	Found  string
	Want   string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("jsondom: unexpected %s at offset %d, want %s", e.Found, e.Offset, e.Want)
}

// A MalformedNumberError reports a number literal that violates the numeric
// grammar, such as a leading plus, a bare minus sign, or a fraction with no
// digits. Offset is the byte position where the number starts.
type MalformedNumberError struct {
	Offset int
}

func (e *MalformedNumberError) Error() string {
	return "jsondom: malformed number at offset " + strconv.Itoa(e.Offset)
}

// A MalformedStringError reports a string literal that cannot be decoded:
// unterminated, containing a raw control character, or carrying an invalid
// escape sequence. Offset is the byte position of the defect and Reason is a
// short description of it.
type MalformedStringError struct {
	Offset int
	Reason string
}

func (e *MalformedStringError) Error() string {
	return fmt.Sprintf("jsondom: malformed string at offset %d: %s", e.Offset, e.Reason)
}

// A DuplicateKeyError reports an attempt to add a key that an object already
// contains, either through Object.Add or while parsing a document whose text
// repeats a member name.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return "jsondom: duplicate key " + strconv.Quote(e.Key)
}

// A KeyNotFoundError reports a lookup for a key the object does not contain.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return "jsondom: key " + strconv.Quote(e.Key) + " not found"
}

// A TypeMismatchError reports a typed accessor applied to a value of a
// different kind, such as GetString on an Int32. The check is exact: Int64
// does not satisfy GetInt32 and vice versa.
type TypeMismatchError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("jsondom: key %q holds %s, want %s", e.Key, e.Got, e.Want)
}

// An UnsupportedTypeError reports a Value of a concrete type the serializer
// does not recognize. It cannot occur for values built from this package's
// variants; it guards against a nil Value smuggled into an Array.
type UnsupportedTypeError struct {
	Value Value
}

func (e *UnsupportedTypeError) Error() string {
	if e.Value == nil {
		return "jsondom: unsupported value: nil"
	}
	return "jsondom: unsupported value of kind " + e.Value.Kind().String()
}

// An UnsupportedValueError reports a Float64 that has no JSON representation,
// namely NaN and the infinities.
type UnsupportedValueError struct {
	Str string
}

func (e *UnsupportedValueError) Error() string {
	return "jsondom: unsupported value: " + e.Str
}

// A DepthError reports a document whose nesting exceeds the limit configured
// with MaxDepth.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return "jsondom: nesting depth exceeds limit of " + strconv.Itoa(e.Limit)
}
