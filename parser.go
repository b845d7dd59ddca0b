package celvalidate

import (
	"fmt"
	"io"
)

// dataType declares the expected shape of a property value.
type dataType int

const (
	typeBoolean dataType = iota
	typeNumber
	typeVector
	typeQuaternion
	typeString
	typeObject
	typeDate
	typeNumberOrString
	typeStringList
	typeObjectList
	typeVectorOrObject
	typeColor
)

// disposition describes how a top-level object combines with a previously
// defined object of the same identity. The engine passes it through to the
// post-object hook without interpreting it.
type disposition int

const (
	dispositionAdd disposition = iota
	dispositionModify
	dispositionReplace
)

// propertyDef is one schema entry: the declared data type plus an optional
// physical-unit category for a following <...> block.
type propertyDef struct {
	dataType  dataType
	unitsType unitsType
}

// propertyMap is the schema for one object type.
type propertyMap map[string]propertyDef

// mergeProperties combines several property maps; later maps win.
func mergeProperties(maps ...propertyMap) propertyMap {
	merged := propertyMap{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// Pseudo names used when validating the elements of array values.
const (
	vectorElement = "[]"
	colorVector   = "__color"
)

// hooks are the extension points a concrete format parser overrides. Each
// implementation can delegate to the engine defaults explicitly
// (validateStringDefault, validateNumberDefault).
type hooks interface {
	// propertySet resolves the schema for a nested object by its property
	// or object-type name. A false return indicates a format-parser bug,
	// not a data problem; the engine turns it into a defect error.
	propertySet(objectName string) (propertyMap, bool)
	validateString(objectName, propertyName string, tok token)
	validateNumber(objectName, propertyName string, tok token)
	objectClosed(objectName string, open token, seen map[string]bool, disp disposition)
}

// fileParser is the schema-directed validating walker shared by all
// catalog formats. It pulls tokens from the lexer with one token of
// pushback, emits leveled diagnostics, and dispatches format-specific
// semantic checks through the hooks interface.
type fileParser struct {
	lex      *lexer
	messages []Message
	saved    *token
	files    *fileChecks
	hooks    hooks
}

func newFileParser(r io.Reader, opts Options) fileParser {
	return fileParser{lex: newLexer(r), files: newFileChecks(opts)}
}

// Messages returns all diagnostics from the run, sorted by source
// position with emission order preserved for ties.
func (p *fileParser) Messages() []Message {
	msgs := make([]Message, 0, len(p.lex.messages)+len(p.messages))
	msgs = append(msgs, p.lex.messages...)
	msgs = append(msgs, p.messages...)
	sortMessages(msgs)
	return msgs
}

func (p *fileParser) infof(line, pos int, format string, args ...any) {
	p.messages = append(p.messages, Message{Line: line, Pos: pos, Level: Info, Text: fmt.Sprintf(format, args...)})
}

func (p *fileParser) warnf(line, pos int, format string, args ...any) {
	p.messages = append(p.messages, Message{Line: line, Pos: pos, Level: Warn, Text: fmt.Sprintf(format, args...)})
}

// warnAt is a convenience form used by the vocabulary validators.
func (p *fileParser) warnAt(tok token, text string) {
	p.warnf(tok.line, tok.pos, "%s", text)
}

// errorf records a fatal diagnostic and returns errParse.
func (p *fileParser) errorf(line, pos int, format string, args ...any) error {
	p.messages = append(p.messages, Message{Line: line, Pos: pos, Level: Error, Text: fmt.Sprintf(format, args...)})
	return errParse
}

// nextToken returns the pushed-back token if one is pending, otherwise
// pulls from the lexer. End of input where a token was mandatory is fatal.
func (p *fileParser) nextToken() (token, error) {
	if p.saved != nil {
		tok := *p.saved
		p.saved = nil
		return tok, nil
	}
	tok, err := p.lex.next()
	if err == errEOF {
		return token{}, p.errorf(p.lex.lineNumber, p.lex.pos, "Unexpected EOF")
	}
	return tok, err
}

// nextTokenEOF is nextToken for positions where end of input is legal;
// ok is false when the input is exhausted.
func (p *fileParser) nextTokenEOF() (tok token, ok bool, err error) {
	if p.saved != nil {
		tok = *p.saved
		p.saved = nil
		return tok, true, nil
	}
	tok, err = p.lex.next()
	if err == errEOF {
		return token{}, false, nil
	}
	if err != nil {
		return token{}, false, err
	}
	return tok, true, nil
}

// pushBack stores one token for re-reading. At most one token is ever
// pending.
func (p *fileParser) pushBack(tok token) {
	p.saved = &tok
}

// startKindFor maps a closing bracket kind to the opener it must match.
func startKindFor(kind tokenKind) tokenKind {
	switch kind {
	case tokenEndObject:
		return tokenStartObject
	case tokenEndArray:
		return tokenStartArray
	default:
		return tokenStartUnits
	}
}

// skipStructure discards a nested structure whose opening token has
// already been consumed, tracking bracket depth. Any mismatched closer is
// fatal.
func (p *fileParser) skipStructure(open tokenKind) error {
	stack := []tokenKind{open}
	for len(stack) > 0 {
		tok, err := p.nextToken()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokenStartObject, tokenStartArray, tokenStartUnits:
			stack = append(stack, tok.kind)
		case tokenEndObject, tokenEndArray, tokenEndUnits:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top != startKindFor(tok.kind) {
				return p.errorf(tok.line, tok.pos, "Mismatched nesting")
			}
		}
	}
	return nil
}

// skipValue discards one property value the engine decided not to
// type-check. A name or end-of-object token belongs to the enclosing
// object and is pushed back.
func (p *fileParser) skipValue() error {
	tok, err := p.nextToken()
	if err != nil {
		return err
	}
	if tok.kind == tokenStartUnits {
		if err := p.skipStructure(tokenStartUnits); err != nil {
			return err
		}
		if tok, err = p.nextToken(); err != nil {
			return err
		}
	}
	switch tok.kind {
	case tokenStartObject, tokenStartArray:
		return p.skipStructure(tok.kind)
	case tokenStartUnits:
		p.warnf(tok.line, tok.pos, "Unexpected units definition")
		return p.skipStructure(tok.kind)
	case tokenName, tokenEndObject:
		p.pushBack(tok)
	case tokenEndArray, tokenEndUnits:
		return p.errorf(tok.line, tok.pos, "Mismatched nesting")
	}
	return nil
}

// checkObject validates one object body whose opening brace has already
// been consumed. Every property is validated against props; the
// post-object hook runs once the body closes with the full set of
// property names observed.
func (p *fileParser) checkObject(objectName string, open token, props propertyMap, disp disposition) error {
	seen := make(map[string]bool)
	for {
		tok, err := p.nextToken()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokenName:
			name := tok.text()
			if seen[name] {
				p.warnf(tok.line, tok.pos, "Duplicate property %s", name)
			} else {
				seen[name] = true
			}
			def, ok := props[name]
			if !ok {
				p.warnf(tok.line, tok.pos, "Unknown property %s", name)
				if err := p.skipValue(); err != nil {
					return err
				}
				continue
			}
			if err := p.checkValue(objectName, name, def); err != nil {
				return err
			}
		case tokenEndObject:
			p.hooks.objectClosed(objectName, open, seen, disp)
			return nil
		case tokenEndArray, tokenEndUnits:
			return p.errorf(tok.line, tok.pos, "Mismatched nesting")
		default:
			p.warnf(tok.line, tok.pos, "Expected property")
			p.pushBack(tok)
			if err := p.skipValue(); err != nil {
				return err
			}
		}
	}
}

// checkObjectList validates an array of objects, each against props.
// Non-object elements are skipped with a warning.
func (p *fileParser) checkObjectList(objectName string, props propertyMap) error {
	for {
		tok, err := p.nextToken()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokenStartObject:
			if err := p.checkObject(objectName, tok, props, dispositionAdd); err != nil {
				return err
			}
		case tokenEndArray:
			return nil
		case tokenEndObject, tokenEndUnits:
			return p.errorf(tok.line, tok.pos, "Mismatched nesting")
		default:
			p.warnf(tok.line, tok.pos, "Expected object")
			p.pushBack(tok)
			if err := p.skipValue(); err != nil {
				return err
			}
		}
	}
}

// checkValue validates one property value against its schema entry,
// including an optional leading units block. On a type mismatch the
// errant token is pushed back so a following property name is not
// swallowed, then discarded via skipValue to resynchronize.
func (p *fileParser) checkValue(objectName, propertyName string, def propertyDef) error {
	tok, err := p.nextToken()
	if err != nil {
		return err
	}
	if tok.kind == tokenStartUnits {
		if def.unitsType == unitsNone {
			p.warnf(tok.line, tok.pos, "Units ignored for %s", propertyName)
			if err := p.skipStructure(tokenStartUnits); err != nil {
				return err
			}
		} else if err := p.checkUnits(def.unitsType); err != nil {
			return err
		}
		if tok, err = p.nextToken(); err != nil {
			return err
		}
	}

	switch tok.kind {
	case tokenEndArray, tokenEndUnits:
		return p.errorf(tok.line, tok.pos, "Mismatched nesting")
	case tokenEndObject:
		p.warnf(tok.line, tok.pos, "Expected value, got end of object")
		p.pushBack(tok)
		return nil
	}

	isMatch := true
	switch def.dataType {
	case typeBoolean:
		if tok.kind != tokenBoolean {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected a boolean for %s", propertyName)
		}
	case typeNumber:
		if tok.kind == tokenNumber {
			p.hooks.validateNumber(objectName, propertyName, tok)
		} else {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected a number for %s", propertyName)
		}
	case typeVector:
		if tok.kind == tokenStartArray {
			if err := p.checkVector(propertyName, 3, 3); err != nil {
				return err
			}
		} else {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected a vector for %s", propertyName)
		}
	case typeQuaternion:
		if tok.kind == tokenStartArray {
			if err := p.checkVector(propertyName, 4, 4); err != nil {
				return err
			}
		} else {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected a quaternion for %s", propertyName)
		}
	case typeString:
		if tok.kind == tokenString {
			p.hooks.validateString(objectName, propertyName, tok)
		} else {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected a string for %s", propertyName)
		}
	case typeObject:
		if tok.kind == tokenStartObject {
			props, err := p.resolveProperties(propertyName)
			if err != nil {
				return err
			}
			if err := p.checkObject(propertyName, tok, props, dispositionAdd); err != nil {
				return err
			}
		} else {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected an object for %s", propertyName)
		}
	case typeDate:
		if tok.kind == tokenString {
			if !checkDateString(tok.text()) {
				p.warnf(tok.line, tok.pos, "Invalid date string for %s", propertyName)
			}
		} else if tok.kind != tokenNumber {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected either number or date string for %s", propertyName)
		}
	case typeNumberOrString:
		switch tok.kind {
		case tokenNumber:
			p.hooks.validateNumber(objectName, propertyName, tok)
		case tokenString:
			p.hooks.validateString(objectName, propertyName, tok)
		default:
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected either number or string for %s", propertyName)
		}
	case typeStringList:
		if tok.kind == tokenStartArray {
			if err := p.checkStringList(propertyName); err != nil {
				return err
			}
		} else if tok.kind != tokenString {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected either string or string list for %s", propertyName)
		}
	case typeObjectList:
		if tok.kind == tokenStartArray {
			props, err := p.resolveProperties(propertyName)
			if err != nil {
				return err
			}
			if err := p.checkObjectList(propertyName, props); err != nil {
				return err
			}
		} else {
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected an array for %s", propertyName)
		}
	case typeVectorOrObject:
		switch tok.kind {
		case tokenStartArray:
			if err := p.checkVector(propertyName, 3, 3); err != nil {
				return err
			}
		case tokenStartObject:
			props, err := p.resolveProperties(propertyName)
			if err != nil {
				return err
			}
			if err := p.checkObject(propertyName, tok, props, dispositionAdd); err != nil {
				return err
			}
		default:
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected either vector or object for %s", propertyName)
		}
	case typeColor:
		switch tok.kind {
		case tokenString:
			if !isColorString(tok.text()) {
				p.warnf(tok.line, tok.pos, "Could not parse %q as a valid color", tok.text())
			}
		case tokenStartArray:
			if err := p.checkVector(colorVector, 3, 4); err != nil {
				return err
			}
		default:
			isMatch = false
			p.warnf(tok.line, tok.pos, "Expected either color vector or string for %s", propertyName)
		}
	}

	if !isMatch {
		p.pushBack(tok)
		if tok.kind != tokenName {
			return p.skipValue()
		}
	}
	return nil
}

// resolveProperties looks up the nested schema through the format hook. A
// missing mapping is a bug in the format parser, so it surfaces as a plain
// error rather than a diagnostic.
func (p *fileParser) resolveProperties(objectName string) (propertyMap, error) {
	props, ok := p.hooks.propertySet(objectName)
	if !ok {
		return nil, fmt.Errorf("no property mapping defined for object type %s", objectName)
	}
	return props, nil
}

// checkVector validates the elements of an already-opened array value.
// The vector name stands in as the object name for element-level numeric
// checks. A wrong element count warns with the actual count.
func (p *fileParser) checkVector(propertyName string, minCount, maxCount int) error {
	count := 0
	var tok token
	var err error
loop:
	for {
		if tok, err = p.nextToken(); err != nil {
			return err
		}
		switch tok.kind {
		case tokenNumber:
			count++
			p.hooks.validateNumber(propertyName, vectorElement, tok)
		case tokenEndArray:
			break loop
		case tokenStartArray:
			p.warnf(tok.line, tok.pos, "Unexpected sub-array in vector")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenStartObject:
			p.warnf(tok.line, tok.pos, "Unexpected sub-object in vector")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenStartUnits:
			p.warnf(tok.line, tok.pos, "Unexpected units block in vector")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenEndObject, tokenEndUnits:
			return p.errorf(tok.line, tok.pos, "Mismatched nesting")
		default:
			p.warnf(tok.line, tok.pos, "Non-numeric token in vector")
		}
	}
	if count < minCount || count > maxCount {
		if minCount == maxCount {
			p.warnf(tok.line, tok.pos, "Expected %d elements in vector, found %d", minCount, count)
		} else {
			p.warnf(tok.line, tok.pos, "Expected %d to %d elements in vector, found %d", minCount, maxCount, count)
		}
	}
	return nil
}

// checkStringList validates the elements of an already-opened array of
// strings.
func (p *fileParser) checkStringList(propertyName string) error {
	for {
		tok, err := p.nextToken()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokenString:
			p.hooks.validateString(propertyName, vectorElement, tok)
		case tokenEndArray:
			return nil
		case tokenStartArray:
			p.warnf(tok.line, tok.pos, "Unexpected sub-array in string list")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenStartObject:
			p.warnf(tok.line, tok.pos, "Unexpected sub-object in string list")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenStartUnits:
			p.warnf(tok.line, tok.pos, "Unexpected units block in string list")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenEndObject, tokenEndUnits:
			return p.errorf(tok.line, tok.pos, "Mismatched nesting")
		default:
			p.warnf(tok.line, tok.pos, "Non-string token in string list")
		}
	}
}

// validateStringDefault applies the format-independent string rules.
// Format parsers call this after their own rules.
func (p *fileParser) validateStringDefault(_ string, propertyName string, tok token) {
	switch propertyName {
	case "Mesh":
		if !p.files.isMeshFile(tok.text()) {
			p.warnf(tok.line, tok.pos, "Bad mesh filename %q", tok.text())
		}
	case "Texture":
		if !p.files.isTextureFile(tok.text()) {
			p.warnf(tok.line, tok.pos, "Bad texture filename %q", tok.text())
		}
	}
}

// validateNumberDefault applies the format-independent numeric rules.
func (p *fileParser) validateNumberDefault(objectName, propertyName string, tok token) {
	switch propertyName {
	case "Radius", "Temperature", "Mass":
		if tok.number() <= 0 {
			p.warnf(tok.line, tok.pos, "%s must be strictly positive", propertyName)
		}
	case vectorElement:
		switch objectName {
		case colorVector:
			if v := tok.number(); v < 0 || v > 1 {
				p.warnf(tok.line, tok.pos, "Color elements must be in range [0, 1]")
			}
		case "SemiAxes":
			if tok.number() <= 0 {
				p.warnf(tok.line, tok.pos, "SemiAxes element must be strictly positive")
			}
		}
	}
}
