package celvalidate

import (
	"fmt"
	"regexp"
)

// timelinePhaseProperties are the properties accepted inside a timeline
// phase, which combine reference frames with trajectory and rotation
// definitions.
var timelinePhaseProperties = mergeProperties(propertyMap{
	"OrbitFrame": {typeObject, unitsNone},
	"BodyFrame":  {typeObject, unitsNone},
	"Beginning":  {typeDate, unitsNone},
	"Ending":     {typeDate, unitsNone},
}, orbitProperties, rotationProperties)

// timelineProperties extend the phase properties with the Timeline
// object list itself.
var timelineProperties = mergeProperties(propertyMap{
	"Timeline": {typeObjectList, unitsNone},
}, timelinePhaseProperties)

var relativePositionVelocityProperties = propertyMap{
	"Observer": {typeString, unitsNone},
	"Target":   {typeString, unitsNone},
}

var constantVectorProperties = propertyMap{
	"Vector": {typeVector, unitsNone},
	"Frame":  {typeObject, unitsNone},
}

var frameVectorProperties = propertyMap{
	"Axis":             {typeString, unitsNone},
	"RelativePosition": {typeObject, unitsNone},
	"RelativeVelocity": {typeObject, unitsNone},
	"ConstantVector":   {typeObject, unitsNone},
}

var baseFrameProperties = propertyMap{
	"Center": {typeString, unitsNone},
}

var meanEquatorProperties = mergeProperties(propertyMap{
	"Object": {typeString, unitsNone},
	"Freeze": {typeDate, unitsNone},
}, baseFrameProperties)

var twoVectorProperties = mergeProperties(propertyMap{
	"Primary":   {typeObject, unitsNone},
	"Secondary": {typeObject, unitsNone},
}, baseFrameProperties)

var topocentricProperties = mergeProperties(propertyMap{
	"Target":   {typeString, unitsNone},
	"Observer": {typeString, unitsNone},
}, baseFrameProperties)

var frameTypeProperties = map[string]propertyMap{
	"BodyFixed":     baseFrameProperties,
	"MeanEquator":   meanEquatorProperties,
	"TwoVector":     twoVectorProperties,
	"Topocentric":   topocentricProperties,
	"EclipticJ2000": baseFrameProperties,
	"EquatorJ2000":  baseFrameProperties,
}

var frameProperties = func() propertyMap {
	props := make(propertyMap, len(frameTypeProperties))
	for name := range frameTypeProperties {
		props[name] = propertyDef{typeObject, unitsNone}
	}
	return props
}()

var axisRE = regexp.MustCompile(`^[+\-]?[xyz]$`)

// timelinePropertySet resolves the nested schema for timeline and
// reference-frame object types.
func timelinePropertySet(objectType string) (propertyMap, bool) {
	if props, ok := frameTypeProperties[objectType]; ok {
		return props, true
	}
	if props, ok := orbitPropertySet(objectType); ok {
		return props, true
	}
	if props, ok := rotationPropertySet(objectType); ok {
		return props, true
	}

	switch objectType {
	case "Frame", "BodyFrame", "OrbitFrame":
		return frameProperties, true
	case "Primary", "Secondary":
		return frameVectorProperties, true
	case "RelativePosition", "RelativeVelocity":
		return relativePositionVelocityProperties, true
	case "ConstantVector":
		return constantVectorProperties, true
	case "Timeline":
		return timelinePhaseProperties, true
	default:
		return nil, false
	}
}

// validateTimelineNumbers applies the numeric rules shared across
// timeline, orbit, and rotation definitions.
func validateTimelineNumbers(objectType, propertyName string, tok token, warn func(token, string)) {
	validateOrbitNumbers(objectType, propertyName, tok, warn)
	validateRotationNumbers(objectType, propertyName, tok, warn)
}

// validateTimelineStrings applies the string rules shared across
// timeline, orbit, and rotation definitions.
func validateTimelineStrings(objectType, propertyName string, tok token, files *fileChecks, warn func(token, string)) {
	if propertyName == "Axis" && !axisRE.MatchString(tok.text()) {
		warn(tok, fmt.Sprintf("Invalid axis specification %q", tok.text()))
	}
	validateOrbitStrings(objectType, propertyName, tok, files, warn)
	validateRotationStrings(objectType, propertyName, tok, warn)
}
