package celvalidate

import (
	"reflect"
	"strings"
	"testing"
)

func validateString(t *testing.T, format Format, input string) []Message {
	t.Helper()
	msgs, err := ValidateReader(strings.NewReader(input), format, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return msgs
}

func TestSSCParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name: "clean body",
			input: `"Earth" "Sol" {
				Radius 6378.14
				Texture "earth.jpg"
				EllipticalOrbit { SemiMajorAxis 1 Period 1 }
				UniformRotation { Period 23.93 }
			}`,
			expected: nil,
		},
		{
			name:     "explicit disposition and type",
			input:    `Add Body "X" "Sol" { Radius 1 FixedPosition [1 2 3] }`,
			expected: nil,
		},
		{
			name:     "modify skips required property checks",
			input:    `Modify "Earth" "Sol" { }`,
			expected: nil,
		},
		{
			name:     "missing orbit and size",
			input:    `"X" "Sol" { }`,
			expected: []string{
				"No valid orbit specified for Body",
				"At least one of Radius and SemiAxes must be specified",
			},
		},
		{
			name:     "reference point needs no size",
			input:    `ReferencePoint "X" "Sol" { FixedPosition [1 2 3] }`,
			expected: nil,
		},
		{
			name:     "location object",
			input:    `Location "Crater" "Sol/Earth" { LongLat <deg km> [10 20 0] Size 10 }`,
			expected: nil,
		},
		{
			name:     "unknown class",
			input:    `"X" "Sol" { Radius 1 FixedPosition [1 2 3] Class "zork" }`,
			expected: []string{`Unknown class type "zork"`},
		},
		{
			name:     "bad texture filename",
			input:    `"X" "Sol" { Radius 1 FixedPosition [1 2 3] NightTexture "dir/night.png" }`,
			expected: []string{`Bad texture filename "dir/night.png"`},
		},
		{
			name:     "empty mesh switches off geometry",
			input:    `"X" "Sol" { Radius 1 FixedPosition [1 2 3] Mesh "" }`,
			expected: nil,
		},
		{
			name:     "bad mesh filename",
			input:    `"X" "Sol" { Radius 1 FixedPosition [1 2 3] Mesh "model" }`,
			expected: []string{`Bad mesh filename "model"`},
		},
		{
			name:     "albedo allows zero but not negative",
			input:    `"X" "Sol" { Radius 1 FixedPosition [1 2 3] Albedo -0.1 GeomAlbedo 0 }`,
			expected: []string{"Albedo must be positive or zero"},
		},
		{
			name: "atmosphere consistency",
			input: `"X" "Sol" { Radius 1 FixedPosition [1 2 3]
				Atmosphere { Mie 0.001 CloudHeight 7 }
			}`,
			expected: []string{
				"Height must be specified",
				"Mie specified without MieScaleHeight",
				"CloudHeight specified without CloudMap",
			},
		},
		{
			name: "rings require bounds",
			input: `"X" "Sol" { Radius 1 FixedPosition [1 2 3]
				Rings { Texture "rings.png" }
			}`,
			expected: []string{
				"Inner must be specified",
				"Outer must be specified",
			},
		},
		{
			name: "spice orbit required properties",
			input: `"X" "Sol" { Radius 1
				SpiceOrbit { Kernel "k.bsp" Target "X" Origin "Sol" Period 1 }
			}`,
			expected: []string{
				"Missing Frame property",
				"Missing BoundingRadius property",
			},
		},
		{
			name: "elliptical orbit precedence",
			input: `"X" "Sol" { Radius 1
				EllipticalOrbit { SemiMajorAxis 1 PericenterDistance 0.9 Period 1 MeanAnomaly 10 MeanLongitude 20 }
			}`,
			expected: []string{
				"PericenterDistance ignored in favor of SemiMajorAxis",
				"MeanLongitude ignored in favor of MeanAnomaly",
			},
		},
		{
			name: "elliptical orbit period must be non-zero",
			input: `"X" "Sol" { Radius 1
				EllipticalOrbit { SemiMajorAxis 1 Period 0 }
			}`,
			expected: []string{"Period must be non-zero"},
		},
		{
			name: "timeline phase needs an orbit",
			input: `"X" "Sol" { Radius 1
				Timeline [ { Beginning "2024 1 1" } ]
			}`,
			expected: []string{"No valid orbit specified for timeline phase"},
		},
		{
			name: "sampled trajectory source",
			input: `"X" "Sol" { Radius 1
				SampledTrajectory { Source "path.xyzv" Interpolation "quadratic" }
			}`,
			expected: []string{`Unknown Interpolation type "quadratic"`},
		},
		{
			name: "wrong unit category warns and is not empty",
			input: `"X" "Sol" { Radius <mas> 1 FixedPosition [1 2 3] }`,
			expected: []string{"Unexpected unit type mas ignored"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var texts []string
			if msgs := validateString(t, FormatSSC, tc.input); len(msgs) > 0 {
				texts = messageTexts(msgs)
			}
			if !reflect.DeepEqual(texts, tc.expected) {
				t.Errorf("messages mismatch\ngot:  %v\nwant: %v", texts, tc.expected)
			}
		})
	}
}

func TestSSCFatalErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "unknown body type", input: `Spaceship "X" "Sol" { }`, expected: "Unknown body type Spaceship"},
		{name: "missing object name", input: `Body { }`, expected: "Expected object name"},
		{name: "missing parent name", input: `Body "X" { }`, expected: "Expected parent object name"},
		{name: "missing open brace", input: `Body "X" "Sol" Radius`, expected: "Expected start of object"},
		{name: "unclosed object", input: `"X" "Sol" { Radius 1`, expected: "Unexpected EOF"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msgs := validateString(t, FormatSSC, tc.input)
			var errs []Message
			for _, msg := range msgs {
				if msg.Level == Error {
					errs = append(errs, msg)
				}
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", msgs)
			}
			if errs[0].Text != tc.expected {
				t.Errorf("got error %q, want %q", errs[0].Text, tc.expected)
			}
		})
	}
}
