package jsondom

import "fmt"

// defaultIndent is the number of spaces per nesting level when no Indent
// option is given.
const defaultIndent = 2

// Option configures parsing or serialization. Options that do not apply to
// the operation at hand are accepted and ignored, so the same option slice
// can be passed to Parse and Serialize.
type Option func(*options) error

// options holds the resolved configuration.
type options struct {
	// indent is the number of spaces per nesting level. A negative value
	// selects compact output with no whitespace at all.
	indent int

	// maxDepth caps the nesting depth the parser accepts. Zero means no
	// limit.
	maxDepth int
}

// newOptions applies opts on top of the defaults.
func newOptions(opts []Option) (options, error) {
	o := options{indent: defaultIndent}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Indent returns an Option that sets the number of spaces per nesting level
// for serialization. Zero emits line breaks without indentation; a negative
// n is equivalent to Compact.
func Indent(n int) Option {
	return func(o *options) error {
		o.indent = n
		return nil
	}
}

// Compact returns an Option that makes the serializer emit the document on a
// single line with no whitespace between tokens.
func Compact() Option {
	return Indent(-1)
}

// MaxDepth returns an Option that sets the maximum nesting depth the parser
// accepts. This helps prevent stack exhaustion when parsing highly nested
// documents from untrusted sources. By default no limit is enforced.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jsondom: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
