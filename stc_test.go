package celvalidate

import (
	"reflect"
	"testing"
)

func TestSTCParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "clean star with name",
			input:    `"Vega" { RA 279.23 Dec 38.78 Distance 25.04 SpectralType "A0V" AppMag 0.03 }`,
			expected: nil,
		},
		{
			name:     "clean star with HIP number",
			input:    `91262 { RA 279.23 Dec 38.78 Distance 25.04 SpectralType "A0V" AppMag 0.03 }`,
			expected: nil,
		},
		{
			name:     "HIP number and name together",
			input:    `91262 "Vega" { RA 279.23 Dec 38.78 Distance 25.04 SpectralType "A0V" AppMag 0.03 }`,
			expected: nil,
		},
		{
			name:     "non-integer HIP number",
			input:    `91262.5 { RA 1 Dec 2 Distance 3 SpectralType "G2V" AppMag 5 }`,
			expected: []string{"Non-integer HIP number"},
		},
		{
			name:     "clean barycenter",
			input:    `Barycenter "X" { RA 1 Dec 2 Distance 3 }`,
			expected: nil,
		},
		{
			name:     "position takes precedence",
			input:    `"X" { Position <km> [1 2 3] RA 1 SpectralType "G2V" AppMag 5 }`,
			expected: []string{"RA ignored in favor of Position"},
		},
		{
			name:  "orbit barycenter takes precedence",
			input: `"X" { OrbitBarycenter "Sol" RA 1 Dec 2 Distance 3 SpectralType "G2V" AppMag 5 }`,
			expected: []string{
				"RA ignored in favor of OrbitBarycenter",
				"Dec ignored in favor of OrbitBarycenter",
				"Distance ignored in favor of OrbitBarycenter",
				"OrbitBarycenter specified without Orbit",
			},
		},
		{
			name:     "orbit without barycenter",
			input:    `"X" { RA 1 Dec 2 Distance 3 EllipticalOrbit { SemiMajorAxis 1 Period 1 } SpectralType "G2V" AppMag 5 }`,
			expected: []string{"Orbit specified without OrbitBarycenter"},
		},
		{
			name:     "no position information",
			input:    `"X" { SpectralType "G2V" AppMag 5 }`,
			expected: []string{"One of OrbitBarycenter, Position, or (RA, Dec, Distance) must be specified"},
		},
		{
			name:     "app mag ignored in favor of abs mag",
			input:    `"X" { RA 1 Dec 2 Distance 3 SpectralType "G2V" AppMag 5 AbsMag 4 }`,
			expected: []string{"AppMag ignored in favor of AbsMag"},
		},
		{
			name:  "magnitude and spectral type required",
			input: `"X" { RA 1 Dec 2 Distance 3 }`,
			expected: []string{
				"One of AppMag or AbsMag must be specified",
				"Spectral type must be specified",
			},
		},
		{
			name:     "modify skips checks",
			input:    `Modify 91262 { Temperature 9602 }`,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var texts []string
			if msgs := validateString(t, FormatSTC, tc.input); len(msgs) > 0 {
				texts = messageTexts(msgs)
			}
			if !reflect.DeepEqual(texts, tc.expected) {
				t.Errorf("messages mismatch\ngot:  %v\nwant: %v", texts, tc.expected)
			}
		})
	}
}

func TestSTCSpectralTypes(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "main sequence", value: "G2V", expected: nil},
		{name: "giant", value: "K3III", expected: nil},
		{name: "white dwarf", value: "DA2", expected: nil},
		{name: "wolf rayet", value: "WC7", expected: nil},
		{name: "subdwarf", value: "sdG2VI", expected: nil},
		{name: "neutron star", value: "Q", expected: nil},
		{
			name:     "unparseable",
			value:    "!!",
			expected: []string{`Invalid spectral type "!!"`},
		},
		{
			name:     "duplicate white dwarf type",
			value:    "DAA",
			expected: []string{`Spectral type "DAA" has duplicate extended type`},
		},
		{
			name:     "subdwarf with conflicting luminosity",
			value:    "sdG2III",
			expected: []string{`Spectral type "sdG2III" has mismatched luminosity types`},
		},
		{
			name:     "trailing suffix",
			value:    "M3e",
			expected: []string{`Ignoring spectral type suffix on "M3e": using "M3"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := `"X" { RA 1 Dec 2 Distance 3 AppMag 5 SpectralType "` + tc.value + `" }`
			var texts []string
			if msgs := validateString(t, FormatSTC, input); len(msgs) > 0 {
				texts = messageTexts(msgs)
			}
			if !reflect.DeepEqual(texts, tc.expected) {
				t.Errorf("messages mismatch for %q\ngot:  %v\nwant: %v", tc.value, texts, tc.expected)
			}
		})
	}
}

func TestSTCFatalErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "unknown object type", input: `Planet "X" { }`, expected: "Unknown stc object type Planet"},
		{name: "missing identifier", input: `Star { }`, expected: "Expected object identifier"},
		{name: "missing open brace", input: `"X" RA`, expected: "Expected start of object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msgs := validateString(t, FormatSTC, tc.input)
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
