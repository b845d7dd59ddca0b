package celvalidate

import (
	"io"
	"regexp"
)

var stcCommonProperties = mergeProperties(propertyMap{
	"Position":        {typeVector, unitsLength},
	"RA":              {typeNumber, unitsAngle},
	"Dec":             {typeNumber, unitsAngle},
	"Distance":        {typeNumber, unitsLength},
	"OrbitBarycenter": {typeNumberOrString, unitsNone},
	"Category":        {typeStringList, unitsNone},
	"InfoURL":         {typeString, unitsNone},
}, orbitProperties)

var starProperties = mergeProperties(propertyMap{
	"SpectralType":   {typeString, unitsNone},
	"AppMag":         {typeNumber, unitsNone},
	"AbsMag":         {typeNumber, unitsNone},
	"Extinction":     {typeNumber, unitsNone},
	"Temperature":    {typeNumber, unitsNone},
	"BoloCorrection": {typeNumber, unitsNone},
	"Mesh":           {typeString, unitsNone},
	"Texture":        {typeString, unitsNone},
	"SemiAxes":       {typeVector, unitsLength},
	"Radius":         {typeNumber, unitsLength},
}, stcCommonProperties, rotationProperties)

var stcObjectProperties = map[string]propertyMap{
	"Star":       starProperties,
	"Barycenter": stcCommonProperties,
}

// spectralTypeRE accepts Morgan-Keenan classes with optional subclass and
// luminosity, white dwarf types, Wolf-Rayet stars, and the Q/X/? markers.
var spectralTypeRE = regexp.MustCompile(`^(?:[QX?]|D(?P<wdtype>[ABCOQXZ][ABCOQXZVPHE]?)?[0-9]?|(?P<lumprefix>sd)?(?:[OBAFGKMRSNLTYC]|W[CNO]?)(?:[0-9](?:\.[0-9])?)?(?P<lumtype>VI?|I(?:-?a0?|a-?0|-?b|V|I{0,2}))?)`)

var (
	wdTypeGroup    = spectralTypeRE.SubexpIndex("wdtype")
	lumPrefixGroup = spectralTypeRE.SubexpIndex("lumprefix")
	lumTypeGroup   = spectralTypeRE.SubexpIndex("lumtype")
)

// stcParser validates star catalog files.
type stcParser struct {
	fileParser
}

func newSTCParser(r io.Reader, opts Options) *stcParser {
	p := &stcParser{fileParser: newFileParser(r, opts)}
	p.hooks = p
	return p
}

// parse walks the top-level grammar: an optional disposition, an optional
// object type defaulting to Star, an identifier (HIP number, name string,
// or both), and the object body.
func (p *stcParser) parse() error {
	for {
		tok, ok, err := p.nextTokenEOF()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		disp := dispositionAdd
		if tok.kind == tokenName {
			switch tok.text() {
			case "Add":
				if tok, err = p.nextToken(); err != nil {
					return err
				}
			case "Modify":
				disp = dispositionModify
				if tok, err = p.nextToken(); err != nil {
					return err
				}
			case "Replace":
				disp = dispositionReplace
				if tok, err = p.nextToken(); err != nil {
					return err
				}
			}
		}

		objectType := "Star"
		if tok.kind == tokenName {
			if _, ok := stcObjectProperties[tok.text()]; !ok {
				return p.errorf(tok.line, tok.pos, "Unknown stc object type %s", tok.text())
			}
			objectType = tok.text()
			if tok, err = p.nextToken(); err != nil {
				return err
			}
		}

		hasID := false
		if tok.kind == tokenNumber {
			if !tok.isInteger() {
				p.warnf(tok.line, tok.pos, "Non-integer HIP number")
			}
			hasID = true
			if tok, err = p.nextToken(); err != nil {
				return err
			}
		}

		if tok.kind == tokenString {
			hasID = true
			if tok, err = p.nextToken(); err != nil {
				return err
			}
		}

		if !hasID {
			return p.errorf(tok.line, tok.pos, "Expected object identifier")
		}

		if tok.kind != tokenStartObject {
			return p.errorf(tok.line, tok.pos, "Expected start of object")
		}

		if err := p.checkObject(objectType, tok, stcObjectProperties[objectType], disp); err != nil {
			return err
		}
	}
}

func (p *stcParser) propertySet(objectName string) (propertyMap, bool) {
	if props, ok := rotationPropertySet(objectName); ok {
		return props, true
	}
	return orbitPropertySet(objectName)
}

func (p *stcParser) validateNumber(objectName, propertyName string, tok token) {
	validateOrbitNumbers(objectName, propertyName, tok, p.warnAt)
	validateRotationNumbers(objectName, propertyName, tok, p.warnAt)
	p.validateNumberDefault(objectName, propertyName, tok)
}

func (p *stcParser) validateString(objectName, propertyName string, tok token) {
	if propertyName == "SpectralType" {
		p.validateSpectralType(tok)
		return
	}
	validateOrbitStrings(objectName, propertyName, tok, p.files, p.warnAt)
	validateRotationStrings(objectName, propertyName, tok, p.warnAt)
	p.validateStringDefault(objectName, propertyName, tok)
}

func (p *stcParser) validateSpectralType(tok token) {
	value := tok.text()
	m := spectralTypeRE.FindStringSubmatchIndex(value)
	if m == nil {
		p.warnf(tok.line, tok.pos, "Invalid spectral type %q", value)
		return
	}

	if m[2*wdTypeGroup] >= 0 {
		wd := value[m[2*wdTypeGroup]:m[2*wdTypeGroup+1]]
		if len(wd) == 2 && wd[0] == wd[1] {
			p.warnf(tok.line, tok.pos, "Spectral type %q has duplicate extended type", value)
		}
	}

	if m[2*lumPrefixGroup] >= 0 && m[2*lumTypeGroup] >= 0 {
		if value[m[2*lumTypeGroup]:m[2*lumTypeGroup+1]] != "VI" {
			p.warnf(tok.line, tok.pos, "Spectral type %q has mismatched luminosity types", value)
		}
	}

	if m[1] != len(value) {
		p.infof(tok.line, tok.pos, "Ignoring spectral type suffix on %q: using %q", value, value[:m[1]])
	}
}

func (p *stcParser) objectClosed(objectName string, open token, seen map[string]bool, disp disposition) {
	if (objectName == "Star" || objectName == "Barycenter") && disp != dispositionModify {
		switch {
		case seen["OrbitBarycenter"]:
			for _, prop := range []string{"Position", "RA", "Dec", "Distance"} {
				if seen[prop] {
					p.warnf(open.line, open.pos, "%s ignored in favor of OrbitBarycenter", prop)
				}
			}
			if !hasOrbit(seen) {
				p.warnf(open.line, open.pos, "OrbitBarycenter specified without Orbit")
			}
		case hasOrbit(seen):
			p.warnf(open.line, open.pos, "Orbit specified without OrbitBarycenter")
		case seen["Position"]:
			for _, prop := range []string{"RA", "Dec", "Distance"} {
				if seen[prop] {
					p.warnf(open.line, open.pos, "%s ignored in favor of Position", prop)
				}
			}
		case !seen["RA"] || !seen["Dec"] || !seen["Distance"]:
			p.warnf(open.line, open.pos, "One of OrbitBarycenter, Position, or (RA, Dec, Distance) must be specified")
		}

		if objectName == "Star" {
			if seen["AbsMag"] {
				if seen["AppMag"] {
					p.warnf(open.line, open.pos, "AppMag ignored in favor of AbsMag")
				}
			} else if !seen["AppMag"] {
				p.warnf(open.line, open.pos, "One of AppMag or AbsMag must be specified")
			}
			if !seen["SpectralType"] {
				p.warnf(open.line, open.pos, "Spectral type must be specified")
			}
		}
	}

	warn := func(msg string) { p.warnf(open.line, open.pos, "%s", msg) }
	checkRotationProperties(objectName, seen, warn)
	checkOrbitProperties(objectName, seen, warn)
}
