package celvalidate

// tokenKind represents the kind of token.
type tokenKind int

const (
	tokenName tokenKind = iota
	tokenBoolean
	tokenString
	tokenNumber
	tokenStartObject // "{"
	tokenEndObject   // "}"
	tokenStartArray  // "["
	tokenEndArray    // "]"
	tokenStartUnits  // "<"
	tokenEndUnits    // ">"
	tokenEquals      // "="
	tokenBar         // "|"
)

func (k tokenKind) String() string {
	switch k {
	case tokenName:
		return "name"
	case tokenBoolean:
		return "boolean"
	case tokenString:
		return "string"
	case tokenNumber:
		return "number"
	case tokenStartObject:
		return "'{'"
	case tokenEndObject:
		return "'}'"
	case tokenStartArray:
		return "'['"
	case tokenEndArray:
		return "']'"
	case tokenStartUnits:
		return "'<'"
	case tokenEndUnits:
		return "'>'"
	case tokenEquals:
		return "'='"
	default:
		return "'|'"
	}
}

// token is one lexical unit of a catalog file. The value holds a string
// for name and string tokens, a bool for boolean tokens, and an int64 or
// float64 for number tokens depending on how the literal parsed.
type token struct {
	kind  tokenKind
	line  int
	pos   int
	value any
}

// text returns the token value as a string; empty for non-text tokens.
func (t token) text() string {
	s, _ := t.value.(string)
	return s
}

// number returns the numeric token value widened to float64.
func (t token) number() float64 {
	switch v := t.value.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// isInteger reports whether a number token holds an integral value.
func (t token) isInteger() bool {
	_, ok := t.value.(int64)
	return ok
}
