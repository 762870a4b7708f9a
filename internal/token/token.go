// Package token defines the lexical token kinds of JSON text.
//
// A token here is a classification of the next significant input byte, not a
// consumed lexeme: the scanner peeks at one byte and maps it to a Type, and
// the parser decides how much input the construct starting there covers.
package token

// Type is the kind of a token.
type Type string

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // a byte that cannot start any JSON construct
	EOF     Type = "EOF"     // end of input

	// Literal starts
	STRING Type = "STRING" // " starts a string
	NUMBER Type = "NUMBER" // - or 0-9 starts a number
	TRUE   Type = "TRUE"   // t starts the literal true
	FALSE  Type = "FALSE"  // f starts the literal false
	NULL   Type = "NULL"   // n starts the literal null

	// Delimiters
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COLON  Type = ":"
	COMMA  Type = ","
)

// Lookup classifies a single byte as the token it begins. It never consumes
// input; bytes that cannot begin a JSON construct classify as ILLEGAL.
func Lookup(ch byte) Type {
	switch ch {
	case '{':
		return LBRACE
	case '}':
		return RBRACE
	case '[':
		return LBRACK
	case ']':
		return RBRACK
	case ':':
		return COLON
	case ',':
		return COMMA
	case '"':
		return STRING
	case 't':
		return TRUE
	case 'f':
		return FALSE
	case 'n':
		return NULL
	case '-':
		return NUMBER
	}
	if '0' <= ch && ch <= '9' {
		return NUMBER
	}
	return ILLEGAL
}

// Describe returns a human-readable name for t, used in error messages.
func Describe(t Type) string {
	switch t {
	case STRING:
		return "string"
	case NUMBER:
		return "number"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case NULL:
		return "null"
	case EOF:
		return "end of input"
	case ILLEGAL:
		return "invalid character"
	default:
		return "'" + string(t) + "'"
	}
}
