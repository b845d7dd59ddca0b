package celvalidate

import "regexp"

var colorHexRE = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// isColorString reports whether s is a recognized X11 color name or a hex
// color of the form #rgb, #rrggbb, or #rrggbbaa.
func isColorString(s string) bool {
	if x11Colors[s] {
		return true
	}
	switch len(s) {
	case 4, 7, 9:
		return colorHexRE.MatchString(s)
	}
	return false
}

var x11Colors = map[string]bool{
	"aliceblue":            true,
	"antiquewhite":         true,
	"aqua":                 true,
	"aquamarine":           true,
	"azure":                true,
	"beige":                true,
	"bisque":               true,
	"black":                true,
	"blanchedalmond":       true,
	"blue":                 true,
	"blueviolet":           true,
	"brown":                true,
	"burlywood":            true,
	"cadetblue":            true,
	"chartreuse":           true,
	"chocolate":            true,
	"coral":                true,
	"cornflowerblue":       true,
	"cornsilk":             true,
	"crimson":              true,
	"cyan":                 true,
	"darkblue":             true,
	"darkcyan":             true,
	"darkgoldenrod":        true,
	"darkgray":             true,
	"darkgreen":            true,
	"darkkhaki":            true,
	"darkmagenta":          true,
	"darkolivegreen":       true,
	"darkorange":           true,
	"darkorchid":           true,
	"darkred":              true,
	"darksalmon":           true,
	"darkseagreen":         true,
	"darkslateblue":        true,
	"darkslategray":        true,
	"darkturquoise":        true,
	"darkviolet":           true,
	"deeppink":             true,
	"deepskyblue":          true,
	"dimgray":              true,
	"dodgerblue":           true,
	"firebrick":            true,
	"floralwhite":          true,
	"forestgreen":          true,
	"fuchsia":              true,
	"gainsboro":            true,
	"ghostwhite":           true,
	"gold":                 true,
	"goldenrod":            true,
	"gray":                 true,
	"green":                true,
	"greenyellow":          true,
	"honeydew":             true,
	"hotpink":              true,
	"indianred":            true,
	"indigo":               true,
	"ivory":                true,
	"khaki":                true,
	"lavender":             true,
	"lavenderblush":        true,
	"lawngreen":            true,
	"lemonchiffon":         true,
	"lightblue":            true,
	"lightcoral":           true,
	"lightcyan":            true,
	"lightgoldenrodyellow": true,
	"lightgreen":           true,
	"lightgrey":            true,
	"lightpink":            true,
	"lightsalmon":          true,
	"lightseagreen":        true,
	"lightskyblue":         true,
	"lightslategray":       true,
	"lightsteelblue":       true,
	"lightyellow":          true,
	"lime":                 true,
	"limegreen":            true,
	"linen":                true,
	"magenta":              true,
	"maroon":               true,
	"mediumaquamarine":     true,
	"mediumblue":           true,
	"mediumorchid":         true,
	"mediumpurple":         true,
	"mediumseagreen":       true,
	"mediumslateblue":      true,
	"mediumspringgreen":    true,
	"mediumturquoise":      true,
	"mediumvioletred":      true,
	"midnightblue":         true,
	"mintcream":            true,
	"mistyrose":            true,
	"moccasin":             true,
	"navajowhite":          true,
	"navy":                 true,
	"oldlace":              true,
	"olive":                true,
	"olivedrab":            true,
	"orange":               true,
	"orangered":            true,
	"orchid":               true,
	"palegoldenrod":        true,
	"palegreen":            true,
	"paleturquoise":        true,
	"palevioletred":        true,
	"papayawhip":           true,
	"peachpuff":            true,
	"peru":                 true,
	"pink":                 true,
	"plum":                 true,
	"powderblue":           true,
	"purple":               true,
	"red":                  true,
	"rosybrown":            true,
	"royalblue":            true,
	"saddlebrown":          true,
	"salmon":               true,
	"sandybrown":           true,
	"seagreen":             true,
	"seashell":             true,
	"sienna":               true,
	"silver":               true,
	"skyblue":              true,
	"slateblue":            true,
	"slategray":            true,
	"snow":                 true,
	"springgreen":          true,
	"steelblue":            true,
	"tan":                  true,
	"teal":                 true,
	"thistle":              true,
	"tomato":               true,
	"turquoise":            true,
	"violet":               true,
	"wheat":                true,
	"white":                true,
	"whitesmoke":           true,
	"yellow":               true,
	"yellowgreen":          true,
}
