package celvalidate

import "fmt"

// orbitProperties are the orbit definitions accepted wherever a trajectory
// can be attached to an object.
var orbitProperties = propertyMap{
	"CustomOrbit":       {typeString, unitsNone},
	"SpiceOrbit":        {typeObject, unitsNone},
	"ScriptedOrbit":     {typeObject, unitsNone},
	"SampledTrajectory": {typeObject, unitsNone},
	"SampledOrbit":      {typeString, unitsNone},
	"EllipticalOrbit":   {typeObject, unitsNone},
	"FixedPosition":     {typeVectorOrObject, unitsNone},
	"LongLat":           {typeVector, unitsSpherical},
}

var spiceOrbitProperties = propertyMap{
	"Kernel":         {typeString, unitsNone},
	"Target":         {typeString, unitsNone},
	"Origin":         {typeString, unitsNone},
	"BoundingRadius": {typeNumber, unitsLength},
	"Period":         {typeNumber, unitsTime},
	"Beginning":      {typeDate, unitsTime},
	"Ending":         {typeDate, unitsTime},
}

var scriptedOrbitProperties = propertyMap{
	"Function": {typeString, unitsNone},
	"Module":   {typeString, unitsNone},
}

var sampledTrajectoryProperties = propertyMap{
	"Source":          {typeString, unitsNone},
	"Interpolation":   {typeString, unitsNone},
	"DoublePrecision": {typeBoolean, unitsNone},
}

var ellipticalOrbitProperties = propertyMap{
	"Eccentricity":       {typeNumber, unitsNone},
	"SemiMajorAxis":      {typeNumber, unitsLength},
	"PericenterDistance": {typeNumber, unitsLength},
	"Period":             {typeNumber, unitsTime},
	"Inclination":        {typeNumber, unitsAngle},
	"AscendingNode":      {typeNumber, unitsAngle},
	"ArgOfPericenter":    {typeNumber, unitsAngle},
	"LongOfPericenter":   {typeNumber, unitsAngle},
	"Epoch":              {typeDate, unitsNone},
	"MeanAnomaly":        {typeNumber, unitsAngle},
	"MeanLongitude":      {typeNumber, unitsAngle},
}

var fixedPositionProperties = propertyMap{
	"Rectangular":    {typeVector, unitsLength},
	"Planetographic": {typeVector, unitsSpherical},
	"Planetocentric": {typeVector, unitsSpherical},
}

var orbitSpecificProperties = map[string]propertyMap{
	"SpiceOrbit":        spiceOrbitProperties,
	"ScriptedOrbit":     scriptedOrbitProperties,
	"SampledTrajectory": sampledTrajectoryProperties,
	"EllipticalOrbit":   ellipticalOrbitProperties,
	"FixedPosition":     fixedPositionProperties,
}

// orbitPropertySet resolves the nested schema for an orbit object type.
func orbitPropertySet(objectType string) (propertyMap, bool) {
	props, ok := orbitSpecificProperties[objectType]
	return props, ok
}

// hasOrbit reports whether any orbit definition appears in the property
// set of a closed object.
func hasOrbit(seen map[string]bool) bool {
	for prop := range seen {
		if _, ok := orbitProperties[prop]; ok {
			return true
		}
	}
	return false
}

// validateOrbitStrings applies the orbit-specific string rules.
func validateOrbitStrings(objectType, propertyName string, tok token, files *fileChecks, warn func(token, string)) {
	switch objectType {
	case "SpiceOrbit":
		if propertyName == "Kernel" && !isFile(tok.text()) {
			warn(tok, fmt.Sprintf("Bad filename %q", tok.text()))
		}
	case "Kernel":
		if !isFile(tok.text()) {
			warn(tok, fmt.Sprintf("Bad filename %q", tok.text()))
		}
	case "SampledTrajectory":
		switch propertyName {
		case "Source":
			if !files.isTrajectoryFile(tok.text()) {
				warn(tok, fmt.Sprintf("Bad trajectory filename %q", tok.text()))
			}
		case "Interpolation":
			if tok.text() != "linear" && tok.text() != "cubic" {
				warn(tok, fmt.Sprintf("Unknown Interpolation type %q", tok.text()))
			}
		}
	}
}

// validateOrbitNumbers applies the orbit-specific numeric rules. An
// EllipticalOrbit period must be non-zero (retrograde periods are
// negative); a SpiceOrbit period of zero means the orbit is aperiodic.
func validateOrbitNumbers(objectType, propertyName string, tok token, warn func(token, string)) {
	switch objectType {
	case "EllipticalOrbit":
		if propertyName == "Period" && tok.number() == 0 {
			warn(tok, fmt.Sprintf("%s must be non-zero", propertyName))
		}
	case "SpiceOrbit":
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
}

// checkOrbitProperties enforces required and mutually-exclusive orbit
// properties once an orbit object closes.
func checkOrbitProperties(objectType string, seen map[string]bool, warn func(string)) {
	switch objectType {
	case "SpiceOrbit":
		if !seen["Frame"] {
			warn("Missing Frame property")
		}
		if !seen["Target"] {
			warn("Missing Target property")
		}
		if !seen["Origin"] {
			warn("Missing Origin property")
		}
		if !seen["BoundingRadius"] {
			warn("Missing BoundingRadius property")
		}
		if seen["Beginning"] != seen["Ending"] {
			warn("Either both Beginning and Ending must be supplied, or neither")
		}
	case "ScriptedOrbit":
		if !seen["Function"] {
			warn("Missing Function property")
		}
	case "SampledTrajectory":
		if !seen["Source"] {
			warn("Missing Source property")
		}
	case "EllipticalOrbit":
		if seen["SemiMajorAxis"] {
			if seen["PericenterDistance"] {
				warn("PericenterDistance ignored in favor of SemiMajorAxis")
			}
		} else if !seen["PericenterDistance"] {
			warn("Either SemiMajorAxis or PericenterDistance must be specified")
		}
		if !seen["Period"] {
			warn("Missing Period property")
		}
		if seen["MeanAnomaly"] && seen["MeanLongitude"] {
			warn("MeanLongitude ignored in favor of MeanAnomaly")
		}
	case "FixedPosition":
		if seen["Rectangular"] {
			if seen["Planetographic"] {
				warn("Planetographic ignored in favor of Rectangular")
			}
			if seen["Planetocentric"] {
				warn("Planetocentric ignored in favor of Rectangular")
			}
		} else if seen["Planetographic"] {
			if seen["Planetocentric"] {
				warn("Planetocentric ignored in favor of Planetographic")
			}
		} else if !seen["Planetocentric"] {
			warn("One of Rectangular, Planetographic, or Planetocentric must be specified")
		}
	}
}
