package celvalidate

import (
	"reflect"
	"testing"
)

func TestDSCParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "clean galaxy",
			input:    `Galaxy "M31" { RA 10.68 Dec 41.27 Distance 2537000 Radius 110000 AbsMag -21.5 Type "Sb" }`,
			expected: nil,
		},
		{
			name:     "clean nebula with position vector",
			input:    `Nebula "Crab" { Position <ly> [1 2 3] Radius 5.5 AbsMag -3.1 }`,
			expected: nil,
		},
		{
			name:     "open cluster needs no absolute magnitude",
			input:    `OpenCluster "Pleiades" { RA 3.79 Dec 24.11 Distance 444 Radius 17.5 }`,
			expected: nil,
		},
		{
			name:  "position conflicts with spherical coordinates",
			input: `Galaxy "X" { Position <ly> [1 2 3] RA 1 Dec 2 Distance 3 Radius 1 AbsMag 1 Type "Irr" }`,
			expected: []string{
				"Position specified: RA ignored",
				"Position specified, Dec ignored",
				"Position specified, Distance ignored",
			},
		},
		{
			name:     "invalid galaxy type",
			input:    `Galaxy "X" { RA 1 Dec 2 Distance 3 Radius 1 AbsMag 1 Type "Sx" }`,
			expected: []string{`Invalid galaxy type "Sx"`},
		},
		{
			name:     "galaxy requires type",
			input:    `Galaxy "X" { RA 1 Dec 2 Distance 3 Radius 1 AbsMag 1 }`,
			expected: []string{"Missing Type property"},
		},
		{
			name:     "globular properties",
			input:    `Globular "M13" { RA 16.69 Dec 36.46 Distance 22200 Radius 80 AbsMag -8.5 CoreRadius <arcmin> 0.8 KingConcentration 1.53 }`,
			expected: nil,
		},
		{
			name:  "unknown DSO type is skipped and parsing continues",
			input: "Quasar \"Q\" { Whatever [1 2 3] }\nGalaxy \"G\" { RA 1 Dec 2 Distance 3 Radius 1 AbsMag 1 Type \"Irr\" }",
			expected: []string{
				"Unknown DSO type Quasar",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var texts []string
			if msgs := validateString(t, FormatDSC, tc.input); len(msgs) > 0 {
				texts = messageTexts(msgs)
			}
			if !reflect.DeepEqual(texts, tc.expected) {
				t.Errorf("messages mismatch\ngot:  %v\nwant: %v", texts, tc.expected)
			}
		})
	}
}

func TestDSCMissingPositionReportedAtObjectStart(t *testing.T) {
	input := "OpenCluster \"X\"\n{\n}\n"
	msgs := validateString(t, FormatDSC, input)
	expected := []Message{
		{Line: 2, Pos: 0, Level: Warn, Text: "No position information specified, specify either RA/Dec/Distance or Position"},
		{Line: 2, Pos: 0, Level: Warn, Text: "Missing Radius property"},
	}
	if !reflect.DeepEqual(msgs, expected) {
		t.Errorf("messages mismatch\ngot:  %v\nwant: %v", msgs, expected)
	}
}

func TestDSCFatalErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "missing DSO type", input: `"anonymous" { }`, expected: "Expected DSO type"},
		{name: "missing DSO name", input: `Galaxy 123 { }`, expected: "Expected DSO name"},
		{name: "missing open brace", input: `Galaxy "X" RA`, expected: "Expected start of object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msgs := validateString(t, FormatDSC, tc.input)
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
