package celvalidate

import "testing"

func TestIsColorString(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "x11 name", value: "cornflowerblue", valid: true},
		{name: "x11 name is case sensitive", value: "CornflowerBlue", valid: false},
		{name: "short hex", value: "#fff", valid: true},
		{name: "full hex", value: "#1a2b3c", valid: true},
		{name: "hex with alpha", value: "#1a2b3c4d", valid: true},
		{name: "hex wrong length", value: "#12345", valid: false},
		{name: "hex bad digit", value: "#ggg", valid: false},
		{name: "missing hash", value: "ff0000", valid: false},
		{name: "empty", value: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isColorString(tc.value); got != tc.valid {
				t.Errorf("isColorString(%q) = %v, want %v", tc.value, got, tc.valid)
			}
		})
	}
}
