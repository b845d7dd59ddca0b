package celvalidate

import "io"

var dsoCommonProperties = propertyMap{
	"Position":  {typeVector, unitsLength},
	"RA":        {typeNumber, unitsAngle},
	"Dec":       {typeNumber, unitsAngle},
	"Distance":  {typeNumber, unitsLength},
	"Axis":      {typeVector, unitsNone},
	"Angle":     {typeNumber, unitsAngle},
	"Radius":    {typeNumber, unitsLength},
	"AbsMag":    {typeNumber, unitsNone},
	"InfoURL":   {typeString, unitsNone},
	"Visible":   {typeBoolean, unitsNone},
	"Clickable": {typeBoolean, unitsNone},
}

var galaxyProperties = mergeProperties(dsoCommonProperties, propertyMap{
	"Detail":         {typeNumber, unitsNone},
	"Type":           {typeString, unitsNone},
	"CustomTemplate": {typeString, unitsNone},
})

var globularProperties = mergeProperties(dsoCommonProperties, propertyMap{
	"Detail":            {typeNumber, unitsNone},
	"CoreRadius":        {typeNumber, unitsAngle},
	"KingConcentration": {typeNumber, unitsNone},
})

var nebulaProperties = mergeProperties(dsoCommonProperties, propertyMap{
	"Mesh": {typeString, unitsNone},
})

var dsoProperties = map[string]propertyMap{
	"Galaxy":      galaxyProperties,
	"Globular":    globularProperties,
	"OpenCluster": dsoCommonProperties,
	"Nebula":      nebulaProperties,
}

var galaxyTypes = map[string]bool{
	"Irr": true,
	"S0":  true,
	"Sa":  true,
	"Sb":  true,
	"Sc":  true,
	"SBa": true,
	"SBb": true,
	"SBc": true,
	"E0":  true,
	"E1":  true,
	"E2":  true,
	"E3":  true,
	"E4":  true,
	"E5":  true,
	"E6":  true,
	"E7":  true,
}

// dscParser validates deep sky catalog files.
type dscParser struct {
	fileParser
}

func newDSCParser(r io.Reader, opts Options) *dscParser {
	p := &dscParser{fileParser: newFileParser(r, opts)}
	p.hooks = p
	return p
}

// parse walks the top-level grammar: a DSO type, a name string, and the
// object body. Objects of unknown type are skipped structurally so that
// the rest of the file is still checked.
func (p *dscParser) parse() error {
	for {
		tok, ok, err := p.nextTokenEOF()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if tok.kind != tokenName {
			return p.errorf(tok.line, tok.pos, "Expected DSO type")
		}

		objectType := tok.text()
		props, known := dsoProperties[objectType]
		if !known {
			p.warnf(tok.line, tok.pos, "Unknown DSO type %s", objectType)
		}

		if tok, err = p.nextToken(); err != nil {
			return err
		}
		if tok.kind != tokenString {
			return p.errorf(tok.line, tok.pos, "Expected DSO name")
		}

		if tok, err = p.nextToken(); err != nil {
			return err
		}
		if tok.kind != tokenStartObject {
			return p.errorf(tok.line, tok.pos, "Expected start of object")
		}

		if !known {
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		} else if err := p.checkObject(objectType, tok, props, dispositionAdd); err != nil {
			return err
		}
	}
}

func (p *dscParser) propertySet(string) (propertyMap, bool) {
	return nil, false
}

func (p *dscParser) validateNumber(objectName, propertyName string, tok token) {
	p.validateNumberDefault(objectName, propertyName, tok)
}

func (p *dscParser) validateString(objectName, propertyName string, tok token) {
	if objectName == "Galaxy" && propertyName == "Type" {
		if !galaxyTypes[tok.text()] {
			p.warnf(tok.line, tok.pos, "Invalid galaxy type %q", tok.text())
		}
		return
	}
	p.validateStringDefault(objectName, propertyName, tok)
}

func (p *dscParser) objectClosed(objectName string, open token, seen map[string]bool, _ disposition) {
	if seen["Position"] {
		if seen["RA"] {
			p.warnf(open.line, open.pos, "Position specified: RA ignored")
		}
		if seen["Dec"] {
			p.warnf(open.line, open.pos, "Position specified, Dec ignored")
		}
		if seen["Distance"] {
			p.warnf(open.line, open.pos, "Position specified, Distance ignored")
		}
	} else if !seen["RA"] || !seen["Dec"] || !seen["Distance"] {
		p.warnf(open.line, open.pos, "No position information specified, specify either RA/Dec/Distance or Position")
	}

	if !seen["Radius"] {
		p.warnf(open.line, open.pos, "Missing Radius property")
	}
	if objectName != "OpenCluster" && !seen["AbsMag"] {
		p.warnf(open.line, open.pos, "Missing AbsMag property")
	}
	if objectName == "Galaxy" && !seen["Type"] {
		p.warnf(open.line, open.pos, "Missing Type property")
	}
}
