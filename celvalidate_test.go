package celvalidate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatForPath(t *testing.T) {
	testCases := []struct {
		path     string
		expected Format
	}{
		{path: "solarsys.ssc", expected: FormatSSC},
		{path: "nearstars.stc", expected: FormatSTC},
		{path: "galaxies.dsc", expected: FormatDSC},
		{path: "DATA/EXTRAS.SSC", expected: FormatSSC},
		{path: "addon/stars.Stc", expected: FormatSTC},
		{path: "readme.txt", expected: FormatUnknown},
		{path: "noextension", expected: FormatUnknown},
		{path: "archive.zip", expected: FormatUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			if got := FormatForPath(tc.path); got != tc.expected {
				t.Errorf("FormatForPath(%q) = %v, want %v", tc.path, got, tc.expected)
			}
		})
	}
}

func TestValidateReaderUnknownFormat(t *testing.T) {
	if _, err := ValidateReader(strings.NewReader(""), FormatUnknown, Options{}); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ssc")
	content := `"X" "Sol" { }`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	msgs, err := ValidateFile(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2 {
		t.Errorf("expected two messages, got %v", msgs)
	}
	if !HasProblems(msgs) {
		t.Error("expected HasProblems to report true")
	}
}

func TestValidateFileUnknownExtension(t *testing.T) {
	if _, err := ValidateFile("notes.txt", Options{}); err == nil {
		t.Error("expected an error for an unrecognized extension")
	}
}

func TestHasProblems(t *testing.T) {
	testCases := []struct {
		name     string
		msgs     []Message
		expected bool
	}{
		{name: "empty", msgs: nil, expected: false},
		{name: "info only", msgs: []Message{{Level: Info}}, expected: false},
		{name: "warning", msgs: []Message{{Level: Info}, {Level: Warn}}, expected: true},
		{name: "error", msgs: []Message{{Level: Error}}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasProblems(tc.msgs); got != tc.expected {
				t.Errorf("HasProblems = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestMessageString(t *testing.T) {
	msg := Message{Line: 3, Pos: 14, Level: Warn, Text: "Duplicate property Radius"}
	expected := "WRN (3:14) Duplicate property Radius"
	if got := msg.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}
