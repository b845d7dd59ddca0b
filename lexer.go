package celvalidate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// errEOF signals that the input is exhausted.
	errEOF = errors.New("end of input")
	// errParse signals an unrecoverable error; validation of the current
	// file stops but the diagnostics gathered so far are kept.
	errParse = errors.New("parsing aborted")
)

// lexer turns a catalog file into a stream of tokens. Lines are read on
// demand and processed left to right; the lexer owns the low-level
// diagnostics (unterminated strings, bad escapes, unknown characters).
type lexer struct {
	r          *bufio.Reader
	line       []rune
	pos        int
	lineNumber int
	messages   []Message
	failed     bool
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r)}
}

// next returns the next token, errEOF at end of input, or errParse after
// a fatal lexer error. Once a fatal error has been reported the lexer
// produces no further tokens for the file.
func (l *lexer) next() (token, error) {
	if l.failed {
		return token{}, errParse
	}
	for {
		for l.pos == len(l.line) {
			if err := l.readLine(); err != nil {
				return token{}, err
			}
		}

		switch c := l.line[l.pos]; c {
		case ' ', '\t':
			l.pos++
		case '#':
			l.pos = len(l.line)
		case '"':
			return l.readString()
		case '{':
			return l.single(tokenStartObject), nil
		case '}':
			return l.single(tokenEndObject), nil
		case '[':
			return l.single(tokenStartArray), nil
		case ']':
			return l.single(tokenEndArray), nil
		case '<':
			return l.single(tokenStartUnits), nil
		case '>':
			return l.single(tokenEndUnits), nil
		case '=':
			return l.single(tokenEquals), nil
		case '|':
			return l.single(tokenBar), nil
		default:
			if tok, ok := l.readName(); ok {
				return tok, nil
			}
			if tok, ok := l.readNumber(); ok {
				return tok, nil
			}
			l.warnf("Unexpected character %q in file", c)
			l.pos++
		}
	}
}

// single emits a token for the one-character symbol at the current position.
func (l *lexer) single(kind tokenKind) token {
	tok := token{kind: kind, line: l.lineNumber, pos: l.pos}
	l.pos++
	return tok
}

// readLine pulls the next line, trimming the line terminator and trailing
// whitespace. Invalid UTF-8 is replaced with U+FFFD by the rune conversion.
func (l *lexer) readLine() error {
	s, err := l.r.ReadString('\n')
	if s == "" {
		if err == io.EOF || err == nil {
			return errEOF
		}
		return l.fatalf("Read error: %v", err)
	}
	if err != nil && err != io.EOF {
		return l.fatalf("Read error: %v", err)
	}
	l.line = []rune(strings.TrimRight(s, " \t\r\n"))
	l.pos = 0
	l.lineNumber++
	return nil
}

// readName scans an identifier; "true" and "false" become boolean tokens.
func (l *lexer) readName() (token, bool) {
	c := l.line[l.pos]
	if !isNameStart(c) {
		return token{}, false
	}
	start := l.pos
	l.pos++
	for l.pos < len(l.line) && isNameChar(l.line[l.pos]) {
		l.pos++
	}
	switch name := string(l.line[start:l.pos]); name {
	case "false":
		return token{kind: tokenBoolean, line: l.lineNumber, pos: start, value: false}, true
	case "true":
		return token{kind: tokenBoolean, line: l.lineNumber, pos: start, value: true}, true
	default:
		return token{kind: tokenName, line: l.lineNumber, pos: start, value: name}, true
	}
}

// readNumber scans an optionally signed integer or decimal mantissa with
// an optional exponent. Literals that parse as integers keep an integral
// value; everything else becomes a float64.
func (l *lexer) readNumber() (token, bool) {
	start := l.pos
	p := l.pos
	if l.line[p] == '+' || l.line[p] == '-' {
		p++
	}
	digits := 0
	for p < len(l.line) && isDigit(l.line[p]) {
		p++
		digits++
	}
	if digits > 0 {
		if p < len(l.line) && l.line[p] == '.' {
			p++
			for p < len(l.line) && isDigit(l.line[p]) {
				p++
			}
		}
	} else {
		if p >= len(l.line) || l.line[p] != '.' {
			return token{}, false
		}
		p++
		frac := 0
		for p < len(l.line) && isDigit(l.line[p]) {
			p++
			frac++
		}
		if frac == 0 {
			return token{}, false
		}
	}
	if p < len(l.line) && (l.line[p] == 'e' || l.line[p] == 'E') {
		q := p + 1
		if q < len(l.line) && (l.line[q] == '+' || l.line[q] == '-') {
			q++
		}
		exp := 0
		for q < len(l.line) && isDigit(l.line[q]) {
			q++
			exp++
		}
		if exp > 0 {
			p = q
		}
	}

	text := string(l.line[start:p])
	l.pos = p
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return token{kind: tokenNumber, line: l.lineNumber, pos: start, value: v}, true
	}
	v, _ := strconv.ParseFloat(text, 64)
	return token{kind: tokenNumber, line: l.lineNumber, pos: start, value: v}, true
}

// readString scans a double-quoted string literal. The literal may span
// multiple physical lines; line breaks inside the quotes are not part of
// the value. The token position is the opening quote.
func (l *lexer) readString() (token, error) {
	line, pos := l.lineNumber, l.pos
	var out strings.Builder
	l.pos++
	for {
		for l.pos == len(l.line) {
			if err := l.readLine(); err != nil {
				if err == errEOF {
					return token{}, l.fatalf("Unterminated string")
				}
				return token{}, err
			}
		}
		c := l.line[l.pos]
		l.pos++
		switch {
		case c == '"':
			return token{kind: tokenString, line: line, pos: pos, value: out.String()}, nil
		case c == '\\':
			s, err := l.readEscape()
			if err != nil {
				return token{}, err
			}
			if strings.ContainsRune(s, utf8.RuneError) {
				l.warnf("Invalid UTF-8 in string literal")
			}
			out.WriteString(s)
		case c == utf8.RuneError:
			l.warnf("Invalid UTF-8 in string literal")
			out.WriteRune(c)
		default:
			out.WriteRune(c)
		}
	}
}

// readEscape decodes one backslash escape. Unknown escapes warn and
// produce no output character.
func (l *lexer) readEscape() (string, error) {
	if l.pos == len(l.line) {
		return "", l.fatalf("Unterminated escape sequence")
	}
	c := l.line[l.pos]
	l.pos++
	switch c {
	case '"', '\\':
		return string(c), nil
	case 'n':
		return "\n", nil
	case 'u':
		if l.pos+4 > len(l.line) {
			return "", l.fatalf("Unterminated Unicode escape")
		}
		hex := string(l.line[l.pos : l.pos+4])
		l.pos += 4
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			l.warnf("Invalid Unicode escape \\u%s", hex)
			return "", nil
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		return string(r), nil
	default:
		l.warnf("Unknown escape sequence \\%c", c)
		return "", nil
	}
}

func (l *lexer) warnf(format string, args ...any) {
	l.messages = append(l.messages, Message{
		Line:  l.lineNumber,
		Pos:   l.pos,
		Level: Warn,
		Text:  fmt.Sprintf(format, args...),
	})
}

// fatalf records an error message and puts the lexer into its terminal
// state; it always returns errParse.
func (l *lexer) fatalf(format string, args ...any) error {
	l.messages = append(l.messages, Message{
		Line:  l.lineNumber,
		Pos:   l.pos,
		Level: Error,
		Text:  fmt.Sprintf(format, args...),
	})
	l.failed = true
	return errParse
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isNameStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isNameChar(c rune) bool { return isNameStart(c) || isDigit(c) }
