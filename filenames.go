package celvalidate

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Reserved DOS device names with a trailing digit or Unicode superscript.
var invalidFileRE = regexp.MustCompile("^(?:COM|LPT)[0-9²³¹]$")

var (
	defaultMeshExtensions       = []string{".cmod", ".3ds", ".cms"}
	defaultTextureExtensions    = []string{".jpg", ".jpeg", ".png", ".dds", ".dxt5nm", ".ctx", ".avif", ".*"}
	defaultTrajectoryExtensions = []string{".xyz", ".xyzv", ".xyzvbin", ".*"}
)

// fileChecks holds the filename allow-lists in effect for one validation
// run. Extensions from Options are appended to the defaults.
type fileChecks struct {
	mesh       []string
	texture    []string
	trajectory []string
}

func newFileChecks(opts Options) *fileChecks {
	return &fileChecks{
		mesh:       extendExtensions(defaultMeshExtensions, opts.MeshExtensions),
		texture:    extendExtensions(defaultTextureExtensions, opts.TextureExtensions),
		trajectory: extendExtensions(defaultTrajectoryExtensions, opts.TrajectoryExtensions),
	}
}

func extendExtensions(defaults, extra []string) []string {
	exts := make([]string, 0, len(defaults)+len(extra))
	exts = append(exts, defaults...)
	for _, e := range extra {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

// isFile checks that a filename contains no directory separators and is
// not a reserved device name.
func isFile(name string) bool {
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	switch name {
	case "CON", "PRN", "AUX", "NUL":
		return false
	}
	return !invalidFileRE.MatchString(name)
}

// hasExtension matches the filename's extension case-insensitively against
// an allow-list. An allow-list entry of ".*" accepts any extension, which
// covers Celestia's literal "name.*" wildcard form as well.
func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if e == ".*" {
			if ext != "" {
				return true
			}
			continue
		}
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func (f *fileChecks) isMeshFile(name string) bool {
	return isFile(name) && hasExtension(name, f.mesh)
}

func (f *fileChecks) isTextureFile(name string) bool {
	return isFile(name) && hasExtension(name, f.texture)
}

func (f *fileChecks) isTrajectoryFile(name string) bool {
	return isFile(name) && hasExtension(name, f.trajectory)
}
