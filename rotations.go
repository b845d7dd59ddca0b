package celvalidate

import "fmt"

// rotationProperties are the rotation-model definitions accepted wherever
// an orientation can be attached to an object.
var rotationProperties = propertyMap{
	"CustomRotation":     {typeString, unitsNone},
	"SpiceRotation":      {typeObject, unitsNone},
	"ScriptedRotation":   {typeObject, unitsNone},
	"SampledOrientation": {typeString, unitsNone},
	"PrecessingRotation": {typeObject, unitsNone},
	"UniformRotation":    {typeObject, unitsNone},
	"FixedRotation":      {typeObject, unitsNone},
	"FixedAttitude":      {typeObject, unitsNone},
	// Backward compatibility properties, no units support.
	"RotationPeriod":       {typeNumber, unitsNone},
	"RotationOffset":       {typeNumber, unitsNone},
	"RotationEpoch":        {typeDate, unitsNone},
	"Obliquity":            {typeNumber, unitsNone},
	"EquatorAscendingNode": {typeNumber, unitsNone},
	"PrecessionRate":       {typeNumber, unitsNone},
}

var spiceRotationProperties = propertyMap{
	"Kernel":         {typeString, unitsNone},
	"Target":         {typeString, unitsNone},
	"Origin":         {typeString, unitsNone},
	"BoundingRadius": {typeNumber, unitsLength},
	"Period":         {typeNumber, unitsTime},
	"Beginning":      {typeDate, unitsTime},
	"Ending":         {typeDate, unitsTime},
}

var scriptedRotationProperties = propertyMap{
	"Function": {typeString, unitsNone},
	"Module":   {typeString, unitsNone},
}

var uniformRotationProperties = propertyMap{
	"Period":        {typeNumber, unitsTime},
	"Epoch":         {typeDate, unitsNone},
	"MeridianAngle": {typeNumber, unitsAngle},
	"Inclination":   {typeNumber, unitsAngle},
	"AscendingNode": {typeNumber, unitsAngle},
}

var precessingRotationProperties = mergeProperties(uniformRotationProperties, propertyMap{
	"PrecessionPeriod": {typeNumber, unitsTime},
})

var fixedRotationProperties = propertyMap{
	"MeridianAngle": {typeNumber, unitsAngle},
	"Inclination":   {typeNumber, unitsAngle},
	"AscendingNode": {typeNumber, unitsAngle},
}

var fixedAttitudeProperties = propertyMap{
	"Heading": {typeNumber, unitsAngle},
	"Tilt":    {typeNumber, unitsAngle},
	"Roll":    {typeNumber, unitsAngle},
}

var rotationSpecificProperties = map[string]propertyMap{
	"SpiceRotation":      spiceRotationProperties,
	"ScriptedRotation":   scriptedRotationProperties,
	"PrecessingRotation": precessingRotationProperties,
	"UniformRotation":    uniformRotationProperties,
	"FixedRotation":      fixedRotationProperties,
	"FixedAttitude":      fixedAttitudeProperties,
}

// rotationPropertySet resolves the nested schema for a rotation-model
// object type.
func rotationPropertySet(objectType string) (propertyMap, bool) {
	props, ok := rotationSpecificProperties[objectType]
	return props, ok
}

// validateRotationStrings applies the rotation-specific string rules.
func validateRotationStrings(objectType, propertyName string, tok token, warn func(token, string)) {
	if propertyName == "SampledOrientation" {
		if !isFile(tok.text()) {
			warn(tok, fmt.Sprintf("Bad filename %q", tok.text()))
		}
		return
	}

	switch objectType {
	case "SpiceRotation":
		if propertyName == "Kernel" && !isFile(tok.text()) {
			warn(tok, fmt.Sprintf("Bad filename %q", tok.text()))
		}
	case "Kernel":
		if !isFile(tok.text()) {
			warn(tok, fmt.Sprintf("Bad filename %q", tok.text()))
		}
	}
}

// validateRotationNumbers applies the rotation-specific numeric rules.
func validateRotationNumbers(objectType, propertyName string, tok token, warn func(token, string)) {
	if objectType != "SpiceRotation" {
		return
	}
	switch propertyName {
	case "BoundingRadius":
		if tok.number() <= 0 {
			warn(tok, "BoundingRadius must be strictly positive")
		}
	case "Period":
		if tok.number() < 0 {
			warn(tok, "Period must be zero or positive")
		}
	}
}

// checkRotationProperties enforces required rotation properties once a
// rotation-model object closes.
func checkRotationProperties(objectType string, seen map[string]bool, warn func(string)) {
	switch objectType {
	case "SpiceRotation":
		if !seen["Frame"] {
			warn("Missing Frame property")
		}
		if seen["Beginning"] != seen["Ending"] {
			warn("Either both Beginning and Ending must be supplied, or neither")
		}
	case "ScriptedRotation":
		if !seen["Function"] {
			warn("Missing Function property")
		}
	}
}
