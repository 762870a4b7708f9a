package jsondom

import (
	"math"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-jsondom/internal/token"
)

// scanner walks a document left to right with a single byte cursor. It does
// not tokenize ahead: peek classifies the next token without consuming it,
// and the read methods decode one literal while advancing the cursor past it.
// The input is held as a string so that escape-free string literals can be
// returned as zero-copy views into it.
type scanner struct {
	input string
	pos   int // byte offset of the next unread character
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

// peek skips whitespace and classifies the next token without consuming it.
// At the end of input it returns token.EOF. After peek returns, pos is the
// byte offset of the classified token.
func (s *scanner) peek() token.Type {
	s.skipWhitespace()
	if s.pos >= len(s.input) {
		return token.EOF
	}
	return token.Lookup(s.input[s.pos])
}

// advance consumes a single structural character that peek has already
// classified.
func (s *scanner) advance() {
	s.pos++
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

// readLiteral consumes the keyword lit. The input must match it exactly:
// "nul" or "tru3" fails even though the first character classified as a
// keyword start.
func (s *scanner) readLiteral(lit string) error {
	s.skipWhitespace()
	if !strings.HasPrefix(s.input[s.pos:], lit) {
		return &UnexpectedTokenError{Offset: s.pos, Found: "invalid literal", Want: strconv.Quote(lit)}
	}
	s.pos += len(lit)
	return nil
}

// readString decodes a quoted string literal, consuming through the closing
// quote. When the literal contains no escapes the result is a substring of
// the input and no copy is made; the first backslash switches to a builder
// that appends verbatim runs between decoded escapes.
//
// Each \uXXXX escape decodes to a single UTF-16 code unit. Two consecutive
// escapes forming a surrogate pair are not recombined; an unpaired surrogate
// encodes as U+FFFD.
func (s *scanner) readString() (string, error) {
	s.skipWhitespace()
	opening := s.pos
	s.pos++ // opening quote, classified by peek

	start := s.pos
	i := start
	for i < len(s.input) {
		ch := s.input[i]
		if ch == '"' {
			s.pos = i + 1
			return s.input[start:i], nil
		}
		if ch == '\\' {
			return s.readStringSlow(opening, start, i)
		}
		if ch < 0x20 {
			return "", &MalformedStringError{Offset: i, Reason: "unescaped control character"}
		}
		i++
	}
	return "", &MalformedStringError{Offset: opening, Reason: "unterminated string"}
}

// readStringSlow finishes decoding a string that contains at least one
// escape. start is the offset of the first content byte and i the offset of
// the first backslash; the clean prefix between them is copied as-is.
func (s *scanner) readStringSlow(opening, start, i int) (string, error) {
	var b strings.Builder
	b.Grow(len(s.input) - start)
	b.WriteString(s.input[start:i])

	for i < len(s.input) {
		ch := s.input[i]
		switch {
		case ch == '"':
			s.pos = i + 1
			return b.String(), nil
		case ch == '\\':
			esc := i
			i++
			if i >= len(s.input) {
				return "", &MalformedStringError{Offset: opening, Reason: "unterminated string"}
			}
			switch s.input[i] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				if i+5 > len(s.input) {
					return "", &MalformedStringError{Offset: esc, Reason: "incomplete unicode escape"}
				}
				u, ok := parseHex4(s.input[i+1 : i+5])
				if !ok {
					return "", &MalformedStringError{Offset: esc, Reason: "invalid unicode escape"}
				}
				b.WriteRune(rune(u))
				i += 4
			default:
				return "", &MalformedStringError{Offset: esc, Reason: "unknown escape character"}
			}
			i++
		case ch < 0x20:
			return "", &MalformedStringError{Offset: i, Reason: "unescaped control character"}
		default:
			j := i + 1
			for j < len(s.input) {
				c := s.input[j]
				if c == '"' || c == '\\' || c < 0x20 {
					break
				}
				j++
			}
			b.WriteString(s.input[i:j])
			i = j
		}
	}
	return "", &MalformedStringError{Offset: opening, Reason: "unterminated string"}
}

// maxExponent bounds the exponent accumulator. Anything past it is already
// +Inf or 0 after Pow10.
const maxExponent = 100000

// readNumber decodes a numeric literal. A literal with a fraction or an
// exponent is always a Float64; a plain integer becomes Int32 when it fits
// in 32 bits and Int64 otherwise. Integer accumulation wraps beyond 64 bits
// rather than erroring.
//
// The integer part is a single 0 or a digit run starting 1-9, so "01" reads
// as the value 0 with the 1 left unconsumed for the caller to reject.
// Exponent digits are a plain run: leading zeros are legal there, as in
// "1e-05".
func (s *scanner) readNumber() (Value, error) {
	s.skipWhitespace()
	start := s.pos

	neg := false
	if s.pos < len(s.input) && s.input[s.pos] == '-' {
		neg = true
		s.pos++
	}
	if s.pos >= len(s.input) || !isDigit(s.input[s.pos]) {
		return nil, &MalformedNumberError{Offset: start}
	}
	mag := s.scanDigits()

	isFloat := false
	f := float64(mag)

	if s.pos < len(s.input) && s.input[s.pos] == '.' {
		s.pos++
		if s.pos >= len(s.input) || !isDigit(s.input[s.pos]) {
			return nil, &MalformedNumberError{Offset: start}
		}
		isFloat = true
		scale := 0.1
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			f += float64(s.input[s.pos]-'0') * scale
			scale /= 10
			s.pos++
		}
	}

	if s.pos < len(s.input) && (s.input[s.pos] == 'e' || s.input[s.pos] == 'E') {
		s.pos++
		expNeg := false
		if s.pos < len(s.input) && (s.input[s.pos] == '+' || s.input[s.pos] == '-') {
			expNeg = s.input[s.pos] == '-'
			s.pos++
		}
		if s.pos >= len(s.input) || !isDigit(s.input[s.pos]) {
			return nil, &MalformedNumberError{Offset: start}
		}
		isFloat = true
		exp := 0
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			// Saturate far past the largest meaningful exponent; Pow10
			// already yields +Inf or 0 out there.
			if exp < maxExponent {
				exp = exp*10 + int(s.input[s.pos]-'0')
			}
			s.pos++
		}
		if expNeg {
			exp = -exp
		}
		f *= math.Pow10(exp)
	}

	if isFloat {
		if neg {
			f = -f
		}
		return Float64(f), nil
	}

	v := mag
	if neg {
		v = -v
	}
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Int32(v), nil
	}
	return Int64(v), nil
}

// scanDigits consumes the integer part's digit run and returns its value. A
// leading zero is consumed alone, leaving any following digits unconsumed.
// Accumulation wraps beyond 64 bits.
func (s *scanner) scanDigits() int64 {
	if s.input[s.pos] == '0' {
		s.pos++
		return 0
	}
	var v int64
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		v = v*10 + int64(s.input[s.pos]-'0')
		s.pos++
	}
	return v
}

// parseHex4 decodes four case-insensitive hex digits.
func parseHex4(h string) (uint16, bool) {
	var u uint16
	for i := 0; i < 4; i++ {
		c := h[i]
		var d byte
		switch {
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'f':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		u = u<<4 | uint16(d)
	}
	return u, true
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
