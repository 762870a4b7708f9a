package jsondom

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

const hexDigits = "0123456789abcdef"

// encoder serializes a value tree into its textual form. A negative indent
// selects compact output with no whitespace; indent >= 0 breaks object
// entries onto their own lines, padded with indent spaces per nesting level,
// and puts a space after each colon and each array comma.
type encoder struct {
	b      strings.Builder
	indent int
	pad    string
}

func newEncoder(o *options) *encoder {
	e := &encoder{indent: o.indent}
	if o.indent > 0 {
		e.pad = strings.Repeat(" ", o.indent)
	}
	return e
}

// newline starts a fresh line indented to depth. In compact mode it emits
// nothing.
func (e *encoder) newline(depth int) {
	if e.indent < 0 {
		return
	}
	e.b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.b.WriteString(e.pad)
	}
}

// encodeValue dispatches on the concrete variant. The default arm is
// unreachable for values built from this package's types; it catches a nil
// Value slipped into an Array by hand.
func (e *encoder) encodeValue(v Value, depth int) error {
	switch v := v.(type) {
	case Null:
		e.b.WriteString("null")
	case Bool:
		if v {
			e.b.WriteString("true")
		} else {
			e.b.WriteString("false")
		}
	case Int32:
		e.b.WriteString(strconv.FormatInt(int64(v), 10))
	case Int64:
		e.b.WriteString(strconv.FormatInt(int64(v), 10))
	case Float64:
		return e.encodeFloat(float64(v))
	case String:
		e.encodeString(string(v))
	case *Object:
		return e.encodeObject(v, depth)
	case Array:
		return e.encodeArray(v, depth)
	default:
		return &UnsupportedTypeError{Value: v}
	}
	return nil
}

func (e *encoder) encodeObject(o *Object, depth int) error {
	// A nil *Object renders like an empty one, mirroring nil Array.
	if o == nil || o.Len() == 0 {
		e.b.WriteString("{}")
		return nil
	}
	e.b.WriteByte('{')
	first := true
	for k, v := range o.All() {
		if !first {
			e.b.WriteByte(',')
		}
		e.newline(depth + 1)
		e.encodeString(k)
		e.b.WriteByte(':')
		if e.indent >= 0 {
			e.b.WriteByte(' ')
		}
		if err := e.encodeValue(v, depth+1); err != nil {
			return err
		}
		first = false
	}
	e.newline(depth)
	e.b.WriteByte('}')
	return nil
}

// encodeArray writes its elements inline: arrays do not introduce line
// breaks, only nested objects do. Depth passes through unchanged so an
// object inside an array indents relative to the array's container.
func (e *encoder) encodeArray(a Array, depth int) error {
	e.b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			e.b.WriteByte(',')
			if e.indent >= 0 {
				e.b.WriteByte(' ')
			}
		}
		if err := e.encodeValue(v, depth); err != nil {
			return err
		}
	}
	e.b.WriteByte(']')
	return nil
}

// encodeFloat writes a round-trippable decimal rendering. Values that the
// shortest form renders without a fraction or exponent get a trailing ".0"
// so they re-parse as Float64 rather than an integer. NaN and the
// infinities have no textual form and fail.
func (e *encoder) encodeFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &UnsupportedValueError{Str: strconv.FormatFloat(f, 'g', -1, 64)}
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	e.b.WriteString(s)
	return nil
}

// encodeString writes a quoted, fully ASCII literal. Every character with a
// two-character short form is written as that form, the solidus included;
// any other control character and every code point at or above 0x80 is
// written as \uXXXX, with non-BMP characters split into a surrogate pair.
func (e *encoder) encodeString(s string) {
	e.b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			e.b.WriteString(`\"`)
		case r == '\\':
			e.b.WriteString(`\\`)
		case r == '/':
			e.b.WriteString(`\/`)
		case r == '\b':
			e.b.WriteString(`\b`)
		case r == '\f':
			e.b.WriteString(`\f`)
		case r == '\n':
			e.b.WriteString(`\n`)
		case r == '\r':
			e.b.WriteString(`\r`)
		case r == '\t':
			e.b.WriteString(`\t`)
		case r < 0x20:
			e.writeUnicodeEscape(uint16(r))
		case r < 0x80:
			e.b.WriteByte(byte(r))
		case r <= 0xFFFF:
			e.writeUnicodeEscape(uint16(r))
		default:
			hi, lo := utf16.EncodeRune(r)
			e.writeUnicodeEscape(uint16(hi))
			e.writeUnicodeEscape(uint16(lo))
		}
	}
	e.b.WriteByte('"')
}

func (e *encoder) writeUnicodeEscape(u uint16) {
	e.b.WriteString(`\u`)
	e.b.WriteByte(hexDigits[u>>12&0xf])
	e.b.WriteByte(hexDigits[u>>8&0xf])
	e.b.WriteByte(hexDigits[u>>4&0xf])
	e.b.WriteByte(hexDigits[u&0xf])
}

// Encoder writes documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the textual form of o to the stream, followed by a newline
// character.
func (e *Encoder) Encode(o *Object) error {
	s, err := Serialize(o, e.opts...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}
