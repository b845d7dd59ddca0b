package celvalidate

// unitsType is the physical-unit category a property's units block must
// belong to.
type unitsType int

const (
	unitsNone unitsType = iota
	unitsLength
	unitsTime
	unitsAngle
	unitsMass
	// unitsSpherical blocks carry one angle unit and one length unit.
	unitsSpherical
)

// unitTypes maps the unit names Celestia recognizes to their categories.
var unitTypes = map[string]unitsType{
	// length units
	"km":  unitsLength,
	"m":   unitsLength,
	"rE":  unitsLength,
	"rS":  unitsLength,
	"au":  unitsLength,
	"AU":  unitsLength,
	"ly":  unitsLength,
	"pc":  unitsLength,
	"kpc": unitsLength,
	"Mpc": unitsLength,
	// time units
	"s":   unitsTime,
	"min": unitsTime,
	"h":   unitsTime,
	"d":   unitsTime,
	"y":   unitsTime,
	// angle units
	"mas":    unitsAngle,
	"arcsec": unitsAngle,
	"arcmin": unitsAngle,
	"deg":    unitsAngle,
	"hRA":    unitsAngle,
	"rad":    unitsAngle,
	// mass units
	"kg": unitsMass,
	"mE": unitsMass,
	"mJ": unitsMass,
}

// checkUnits validates an already-opened units block against the expected
// category. The closing '>' has not been consumed yet.
func (p *fileParser) checkUnits(expected unitsType) error {
	if expected == unitsSpherical {
		return p.checkSphericalUnits()
	}

	hasUnit := false
	var tok token
	var err error
loop:
	for {
		if tok, err = p.nextToken(); err != nil {
			return err
		}
		switch tok.kind {
		case tokenName:
			actual, known := unitTypes[tok.text()]
			switch {
			case !known:
				p.warnf(tok.line, tok.pos, "Unknown unit type %s", tok.text())
			case actual != expected:
				p.warnf(tok.line, tok.pos, "Unexpected unit type %s ignored", tok.text())
			case hasUnit:
				p.warnf(tok.line, tok.pos, "Multiple units found")
			}
			hasUnit = true
		case tokenEndUnits:
			break loop
		case tokenStartArray:
			p.warnf(tok.line, tok.pos, "Unexpected array in units block")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenStartObject:
			p.warnf(tok.line, tok.pos, "Unexpected object in units block")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenStartUnits:
			p.warnf(tok.line, tok.pos, "Unexpected nested units block")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenEndArray, tokenEndObject:
			return p.errorf(tok.line, tok.pos, "Mismatched nesting")
		default:
			p.warnf(tok.line, tok.pos, "Unexpected token in units block")
		}
	}
	if !hasUnit {
		p.warnf(tok.line, tok.pos, "Empty unit block")
	}
	return nil
}

// checkSphericalUnits validates a units block that must name exactly one
// angle unit and one length unit.
func (p *fileParser) checkSphericalUnits() error {
	hasAngleUnit := false
	hasLengthUnit := false
	var tok token
	var err error
loop:
	for {
		if tok, err = p.nextToken(); err != nil {
			return err
		}
		switch tok.kind {
		case tokenName:
			switch unitType, known := unitTypes[tok.text()]; {
			case !known:
				p.warnf(tok.line, tok.pos, "Unknown unit type %s", tok.text())
			case unitType == unitsAngle:
				if hasAngleUnit {
					p.warnf(tok.line, tok.pos, "Duplicate angle unit")
				} else {
					hasAngleUnit = true
				}
			case unitType == unitsLength:
				if hasLengthUnit {
					p.warnf(tok.line, tok.pos, "Duplicate length unit")
				} else {
					hasLengthUnit = true
				}
			default:
				p.warnf(tok.line, tok.pos, "Unexpected unit type %s ignored", tok.text())
			}
		case tokenEndUnits:
			break loop
		case tokenStartArray:
			p.warnf(tok.line, tok.pos, "Unexpected array in units block")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenStartObject:
			p.warnf(tok.line, tok.pos, "Unexpected object in units block")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenStartUnits:
			p.warnf(tok.line, tok.pos, "Unexpected nested units block")
			if err := p.skipStructure(tok.kind); err != nil {
				return err
			}
		case tokenEndArray, tokenEndObject:
			return p.errorf(tok.line, tok.pos, "Mismatched nesting")
		default:
			p.warnf(tok.line, tok.pos, "Unexpected token in units block")
		}
	}
	if !hasAngleUnit {
		p.warnf(tok.line, tok.pos, "Expected angle unit")
	}
	if !hasLengthUnit {
		p.warnf(tok.line, tok.pos, "Expected length unit")
	}
	return nil
}
