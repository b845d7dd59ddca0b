// Package celvalidate performs static validation of Celestia catalog
// files. It parses solar system (.ssc), star (.stc), and deep sky (.dsc)
// catalogs against their schemas and reports diagnostics with source
// positions, without needing a running Celestia installation.
package celvalidate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a catalog file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatSSC
	FormatSTC
	FormatDSC
)

func (f Format) String() string {
	switch f {
	case FormatSSC:
		return "ssc"
	case FormatSTC:
		return "stc"
	case FormatDSC:
		return "dsc"
	default:
		return "unknown"
	}
}

// FormatForPath determines the catalog format from the file extension,
// ignoring case. Paths with any other extension map to FormatUnknown.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ssc":
		return FormatSSC
	case ".stc":
		return FormatSTC
	case ".dsc":
		return FormatDSC
	default:
		return FormatUnknown
	}
}

// Options configures validation. Extension lists extend the built-in sets
// accepted for the corresponding filename properties; entries are added
// with or without a leading dot, and a "*" entry accepts any extension.
type Options struct {
	MeshExtensions       []string
	TextureExtensions    []string
	TrajectoryExtensions []string
}

// catalogParser is the contract the per-format parsers share.
type catalogParser interface {
	parse() error
	Messages() []Message
}

func newParser(r io.Reader, format Format, opts Options) (catalogParser, error) {
	switch format {
	case FormatSSC:
		return newSSCParser(r, opts), nil
	case FormatSTC:
		return newSTCParser(r, opts), nil
	case FormatDSC:
		return newDSCParser(r, opts), nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %s", format)
	}
}

// ValidateReader checks a catalog read from r against the schema for
// format. The returned messages are sorted by source position. A fatal
// structural problem in the input ends the walk early but is reported
// through the messages, not the error; a non-nil error means the
// validation itself could not run.
func ValidateReader(r io.Reader, format Format, opts Options) ([]Message, error) {
	parser, err := newParser(r, format, opts)
	if err != nil {
		return nil, err
	}
	if err := parser.parse(); err != nil && err != errParse {
		return nil, err
	}
	return parser.Messages(), nil
}

// ValidateFile checks the catalog file at path, determining the format
// from its extension.
func ValidateFile(path string, opts Options) ([]Message, error) {
	format := FormatForPath(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("cannot determine catalog format for %q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ValidateReader(f, format, opts)
}

// HasProblems reports whether any message is a warning or an error.
func HasProblems(msgs []Message) bool {
	for _, msg := range msgs {
		if msg.Level > Info {
			return true
		}
	}
	return false
}
