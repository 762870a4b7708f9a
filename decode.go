package jsondom

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-jsondom/internal/token"
)

// parser builds a value tree by recursive descent, driven by the scanner's
// one-token lookahead. Nesting depth is tracked across objects and arrays so
// a configured MaxDepth can stop adversarial input before the goroutine
// stack does.
type parser struct {
	s     *scanner
	opts  *options
	depth int
}

// parseDocument parses a complete document: a single top-level object with
// nothing but whitespace after it. A top-level scalar or array is rejected,
// as is any trailing token after the closing brace.
func (p *parser) parseDocument() (*Object, error) {
	if tok := p.s.peek(); tok != token.LBRACE {
		return nil, p.unexpected(tok, token.Describe(token.LBRACE))
	}
	obj, err := p.parseObject()
	if err != nil {
		return nil, err
	}
	if tok := p.s.peek(); tok != token.EOF {
		return nil, p.unexpected(tok, token.Describe(token.EOF))
	}
	return obj, nil
}

// parseObject parses an object whose opening brace the caller has already
// classified. The first entry starts with a key directly; every later entry
// needs a comma first, and a comma must be followed by a key, so trailing
// commas fail.
func (p *parser) parseObject() (*Object, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	p.s.advance() // {

	obj := NewObject()
	first := true
	for {
		tok := p.s.peek()
		if tok == token.RBRACE {
			p.s.advance()
			return obj, nil
		}
		if first {
			if tok != token.STRING {
				return nil, p.unexpected(tok, token.Describe(token.STRING)+" or "+token.Describe(token.RBRACE))
			}
		} else {
			if tok != token.COMMA {
				return nil, p.unexpected(tok, token.Describe(token.COMMA)+" or "+token.Describe(token.RBRACE))
			}
			p.s.advance()
			if tok = p.s.peek(); tok != token.STRING {
				return nil, p.unexpected(tok, token.Describe(token.STRING))
			}
		}

		key, err := p.s.readString()
		if err != nil {
			return nil, err
		}
		if tok = p.s.peek(); tok != token.COLON {
			return nil, p.unexpected(tok, token.Describe(token.COLON))
		}
		p.s.advance()

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := obj.Add(key, v); err != nil {
			return nil, err
		}
		first = false
	}
}

// parseArray parses an array whose opening bracket the caller has already
// classified. Elements are heterogeneous; a comma must be followed by an
// element, so trailing commas fail.
func (p *parser) parseArray() (Array, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	p.s.advance() // [

	arr := Array{}
	first := true
	for {
		tok := p.s.peek()
		if tok == token.RBRACK {
			p.s.advance()
			return arr, nil
		}
		if !first {
			if tok != token.COMMA {
				return nil, p.unexpected(tok, token.Describe(token.COMMA)+" or "+token.Describe(token.RBRACK))
			}
			p.s.advance()
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
		first = false
	}
}

// parseValue dispatches on the next token and parses one value.
func (p *parser) parseValue() (Value, error) {
	switch tok := p.s.peek(); tok {
	case token.LBRACE:
		return p.parseObject()
	case token.LBRACK:
		return p.parseArray()
	case token.STRING:
		v, err := p.s.readString()
		if err != nil {
			return nil, err
		}
		return String(v), nil
	case token.NUMBER:
		return p.s.readNumber()
	case token.TRUE:
		if err := p.s.readLiteral("true"); err != nil {
			return nil, err
		}
		return Bool(true), nil
	case token.FALSE:
		if err := p.s.readLiteral("false"); err != nil {
			return nil, err
		}
		return Bool(false), nil
	case token.NULL:
		if err := p.s.readLiteral("null"); err != nil {
			return nil, err
		}
		return Null{}, nil
	default:
		return nil, p.unexpected(tok, "value")
	}
}

// unexpected builds an UnexpectedTokenError for the token peek just
// classified. The scanner's cursor sits on that token, so its position is
// the error offset.
func (p *parser) unexpected(tok token.Type, want string) error {
	return &UnexpectedTokenError{Offset: p.s.pos, Found: token.Describe(tok), Want: want}
}

func (p *parser) push() error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return &DepthError{Limit: p.opts.maxDepth}
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

// Decoder reads a document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder does not close r; that remains the caller's responsibility.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the remainder of the stream and parses it as a single
// document.
//
// This is not a streaming implementation: the whole input is read into
// memory before parsing begins.
func (d *Decoder) Decode() (*Object, error) {
	if d.r == nil {
		return nil, fmt.Errorf("jsondom: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), d.opts...)
}
