package jsondom

import "fmt"

// Parse parses text as a single document. The top level must be an object;
// a bare scalar or array is rejected, and so is any non-whitespace input
// after the closing brace. On failure the returned error is one of the
// typed errors in this package and no partial object is returned.
//
// The input is kept as-is: string values without escapes are views into
// text, so the result stays alive as long as any of those views do. Parsing
// applies no nesting limit unless MaxDepth is given.
func Parse(text string, opts ...Option) (*Object, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &parser{s: newScanner(text), opts: &o}
	return p.parseDocument()
}

// ParseBytes parses data as a single document. The data is copied into a
// string up front, so the caller may reuse the slice once ParseBytes
// returns.
func ParseBytes(data []byte, opts ...Option) (*Object, error) {
	return Parse(string(data), opts...)
}

// Serialize renders o as text. The default is pretty output indented two
// spaces per level; pass Indent to change the width or Compact for a
// single-line rendering with no whitespace. Entries appear in insertion
// order, so output is deterministic and serializing a freshly parsed
// document reproduces its member order.
func Serialize(o *Object, opts ...Option) (string, error) {
	if o == nil {
		return "", fmt.Errorf("jsondom: Serialize(nil object)")
	}
	opt, err := newOptions(opts)
	if err != nil {
		return "", err
	}
	e := newEncoder(&opt)
	if err := e.encodeObject(o, 0); err != nil {
		return "", err
	}
	return e.b.String(), nil
}
