package celvalidate

import "io"

var surfaceProperties = propertyMap{
	"Color":           {typeColor, unitsNone},
	"SpecularColor":   {typeColor, unitsNone},
	"SpecularPower":   {typeNumber, unitsNone},
	"LunarLambert":    {typeNumber, unitsNone},
	"Texture":         {typeString, unitsNone},
	"BumpMap":         {typeString, unitsNone},
	"NightTexture":    {typeString, unitsNone},
	"SpecularTexture": {typeString, unitsNone},
	"NormalMap":       {typeString, unitsNone},
	"OverlayTexture":  {typeString, unitsNone},
	"BumpHeight":      {typeNumber, unitsNone},
	"BlendTexture":    {typeBoolean, unitsNone},
	"Emissive":        {typeBoolean, unitsNone},
	"CompressTexture": {typeBoolean, unitsNone},
}

var atmosphereProperties = propertyMap{
	"Height":           {typeNumber, unitsLength},
	"Lower":            {typeColor, unitsNone},
	"Upper":            {typeColor, unitsNone},
	"Sky":              {typeColor, unitsNone},
	"Sunset":           {typeColor, unitsNone},
	"Mie":              {typeNumber, unitsNone},
	"MieScaleHeight":   {typeNumber, unitsLength},
	"MieAsymmetry":     {typeNumber, unitsNone},
	"Rayleigh":         {typeVector, unitsNone},
	"Absorption":       {typeVector, unitsNone},
	"CloudHeight":      {typeNumber, unitsLength},
	"CloudSpeed":       {typeNumber, unitsNone},
	"CloudMap":         {typeString, unitsNone},
	"CloudShadowDepth": {typeNumber, unitsNone},
}

var ringsProperties = propertyMap{
	"Inner":   {typeNumber, unitsLength},
	"Outer":   {typeNumber, unitsLength},
	"Color":   {typeColor, unitsNone},
	"Texture": {typeString, unitsNone},
}

var bodyProperties = mergeProperties(propertyMap{
	"Radius":          {typeNumber, unitsLength},
	"SemiAxes":        {typeVector, unitsLength},
	"Oblateness":      {typeNumber, unitsNone},
	"Class":           {typeString, unitsNone},
	"Category":        {typeStringList, unitsNone},
	"InfoURL":         {typeString, unitsNone},
	"Albedo":          {typeNumber, unitsNone},
	"GeomAlbedo":      {typeNumber, unitsNone},
	"Reflectivity":    {typeNumber, unitsNone},
	"BondAlbedo":      {typeNumber, unitsNone},
	"Temperature":     {typeNumber, unitsNone},
	"TempDiscrepancy": {typeNumber, unitsNone},
	"Mass":            {typeNumber, unitsMass},
	"Density":         {typeNumber, unitsNone},
	"Orientation":     {typeQuaternion, unitsNone},
	"Mesh":            {typeString, unitsNone},
	"MeshCenter":      {typeVector, unitsNone},
	"NormalizeMesh":   {typeBoolean, unitsNone},
	"MeshScale":       {typeNumber, unitsLength},
	"Atmosphere":      {typeObject, unitsNone},
	"Rings":           {typeObject, unitsNone},
	"TailColor":       {typeColor, unitsNone},
	"Clickable":       {typeBoolean, unitsNone},
	"Visible":         {typeBoolean, unitsNone},
	"OrbitColor":      {typeColor, unitsNone},
}, surfaceProperties, timelineProperties)

var referencePointProperties = mergeProperties(propertyMap{
	"Visible":    {typeBoolean, unitsNone},
	"Clickable":  {typeBoolean, unitsNone},
	"OrbitColor": {typeColor, unitsNone},
}, timelineProperties)

var locationProperties = propertyMap{
	"LongLat":    {typeVector, unitsSpherical},
	"Size":       {typeNumber, unitsLength},
	"Importance": {typeNumber, unitsNone},
	"Type":       {typeString, unitsNone},
	"LabelColor": {typeColor, unitsNone},
	"Category":   {typeStringList, unitsNone},
}

var sscObjectProperties = map[string]propertyMap{
	"Body":           bodyProperties,
	"SurfaceObject":  bodyProperties,
	"ReferencePoint": referencePointProperties,
	"AltSurface":     surfaceProperties,
	"Location":       locationProperties,
}

var textureProperties = map[string]bool{
	"Texture":         true,
	"BumpMap":         true,
	"NightTexture":    true,
	"SpecularTexture": true,
	"NormalMap":       true,
	"OverlayTexture":  true,
	"CloudMap":        true,
}

// positiveProperties must be positive; the value states whether zero is
// allowed.
var positiveProperties = map[string]bool{
	"Height":         false,
	"MieScaleHeight": false,
	"CloudHeight":    false,
	"Inner":          true,
	"Outer":          true,
	"Albedo":         true,
	"GeomAlbedo":     true,
	"Reflectivity":   true,
	"BondAlbedo":     true,
	"Density":        false,
	"MeshScale":      false,
	"Size":           false,
	"Importance":     false,
}

var bodyClasses = map[string]bool{
	"planet":         true,
	"dwarfplanet":    true,
	"moon":           true,
	"minormoon":      true,
	"comet":          true,
	"asteroid":       true,
	"spacecraft":     true,
	"invisible":      true,
	"surfacefeature": true,
	"component":      true,
	"diffuse":        true,
}

// sscParser validates solar system catalog files.
type sscParser struct {
	fileParser
}

func newSSCParser(r io.Reader, opts Options) *sscParser {
	p := &sscParser{fileParser: newFileParser(r, opts)}
	p.hooks = p
	return p
}

// parse walks the top-level grammar: an optional disposition, an optional
// object type defaulting to Body, the object and parent names, and the
// object body.
func (p *sscParser) parse() error {
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

		objectType := "Body"
		props := bodyProperties
		if tok.kind == tokenName {
			objProps, ok := sscObjectProperties[tok.text()]
			if !ok {
				return p.errorf(tok.line, tok.pos, "Unknown body type %s", tok.text())
			}
			objectType = tok.text()
			props = objProps
			if tok, err = p.nextToken(); err != nil {
				return err
			}
		}

		if tok.kind != tokenString {
			return p.errorf(tok.line, tok.pos, "Expected object name")
		}
		if tok, err = p.nextToken(); err != nil {
			return err
		}

		if tok.kind != tokenString {
			return p.errorf(tok.line, tok.pos, "Expected parent object name")
		}
		if tok, err = p.nextToken(); err != nil {
			return err
		}

		if tok.kind != tokenStartObject {
			return p.errorf(tok.line, tok.pos, "Expected start of object")
		}

		if err := p.checkObject(objectType, tok, props, disp); err != nil {
			return err
		}
	}
}

func (p *sscParser) propertySet(objectName string) (propertyMap, bool) {
	switch objectName {
	case "Atmosphere":
		return atmosphereProperties, true
	case "Rings":
		return ringsProperties, true
	}
	return timelinePropertySet(objectName)
}

func (p *sscParser) validateNumber(objectName, propertyName string, tok token) {
	if allowZero, ok := positiveProperties[propertyName]; ok {
		if v := tok.number(); v < 0 || (v == 0 && !allowZero) {
			status := "strictly positive"
			if allowZero {
				status = "positive or zero"
			}
			p.warnf(tok.line, tok.pos, "%s must be %s", propertyName, status)
		}
		return
	}
	validateTimelineNumbers(objectName, propertyName, tok, p.warnAt)
	p.validateNumberDefault(objectName, propertyName, tok)
}

func (p *sscParser) validateString(objectName, propertyName string, tok token) {
	switch {
	case propertyName == "Class":
		if !bodyClasses[tok.text()] {
			p.warnf(tok.line, tok.pos, "Unknown class type %q", tok.text())
		}
	case textureProperties[propertyName]:
		if !p.files.isTextureFile(tok.text()) {
			p.warnf(tok.line, tok.pos, "Bad texture filename %q", tok.text())
		}
	case propertyName == "Mesh":
		// Some add-ons use Mesh "" to switch off geometry.
		if tok.text() != "" && !p.files.isMeshFile(tok.text()) {
			p.warnf(tok.line, tok.pos, "Bad mesh filename %q", tok.text())
		}
	default:
		validateTimelineStrings(objectName, propertyName, tok, p.files, p.warnAt)
		p.validateStringDefault(objectName, propertyName, tok)
	}
}

func (p *sscParser) objectClosed(objectName string, open token, seen map[string]bool, disp disposition) {
	if disp != dispositionModify {
		switch objectName {
		case "Body", "SurfaceObject", "ReferencePoint":
			if !seen["Timeline"] && !hasOrbit(seen) {
				p.warnf(open.line, open.pos, "No valid orbit specified for %s", objectName)
			}
			if objectName != "ReferencePoint" && !seen["Radius"] && !seen["SemiAxes"] {
				p.warnf(open.line, open.pos, "At least one of Radius and SemiAxes must be specified")
			}
		case "Rings":
			if !seen["Inner"] {
				p.warnf(open.line, open.pos, "Inner must be specified")
			}
			if !seen["Outer"] {
				p.warnf(open.line, open.pos, "Outer must be specified")
			}
		case "Atmosphere":
			if !seen["Height"] {
				p.warnf(open.line, open.pos, "Height must be specified")
			}
			if seen["Mie"] {
				if !seen["MieScaleHeight"] {
					p.warnf(open.line, open.pos, "Mie specified without MieScaleHeight")
				}
			} else if seen["MieScaleHeight"] {
				p.warnf(open.line, open.pos, "MieScaleHeight specified without Mie")
			}
			if seen["CloudMap"] {
				if !seen["CloudHeight"] {
					p.warnf(open.line, open.pos, "CloudMap specified without CloudHeight")
				}
			} else if seen["CloudHeight"] {
				p.warnf(open.line, open.pos, "CloudHeight specified without CloudMap")
			} else if seen["CloudSpeed"] {
				p.warnf(open.line, open.pos, "CloudSpeed specified without CloudMap or CloudHeight")
			}
		}
	}

	if objectName == "Timeline" && !hasOrbit(seen) {
		p.warnf(open.line, open.pos, "No valid orbit specified for timeline phase")
	}
	warn := func(msg string) { p.warnf(open.line, open.pos, "%s", msg) }
	checkRotationProperties(objectName, seen, warn)
	checkOrbitProperties(objectName, seen, warn)
}
