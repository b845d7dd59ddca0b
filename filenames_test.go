package celvalidate

import "testing"

func TestIsFile(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "plain filename", value: "earth.ctx", valid: true},
		{name: "no extension", value: "README", valid: true},
		{name: "forward slash", value: "textures/earth.ctx", valid: false},
		{name: "backslash", value: `textures\earth.ctx`, valid: false},
		{name: "reserved CON", value: "CON", valid: false},
		{name: "reserved NUL", value: "NUL", valid: false},
		{name: "reserved COM port", value: "COM1", valid: false},
		{name: "reserved LPT port", value: "LPT9", valid: false},
		{name: "reserved superscript port", value: "COM²", valid: false},
		{name: "COM without digit", value: "COM", valid: true},
		{name: "lowercase con allowed", value: "con", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isFile(tc.value); got != tc.valid {
				t.Errorf("isFile(%q) = %v, want %v", tc.value, got, tc.valid)
			}
		})
	}
}

func TestHasExtension(t *testing.T) {
	exts := []string{".cmod", ".3ds"}
	testCases := []struct {
		name  string
		value string
		exts  []string
		valid bool
	}{
		{name: "listed extension", value: "model.cmod", exts: exts, valid: true},
		{name: "case insensitive", value: "MODEL.CMOD", exts: exts, valid: true},
		{name: "unlisted extension", value: "model.obj", exts: exts, valid: false},
		{name: "no extension", value: "model", exts: exts, valid: false},
		{name: "wildcard accepts any extension", value: "model.obj", exts: []string{".*"}, valid: true},
		{name: "wildcard still needs an extension", value: "model", exts: []string{".*"}, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasExtension(tc.value, tc.exts); got != tc.valid {
				t.Errorf("hasExtension(%q, %v) = %v, want %v", tc.value, tc.exts, got, tc.valid)
			}
		})
	}
}

func TestFileChecksOptions(t *testing.T) {
	files := newFileChecks(Options{
		MeshExtensions: []string{"obj", ".glb"},
	})

	// Extra extensions are normalized to carry a leading dot.
	for _, name := range []string{"model.obj", "model.glb", "model.cmod"} {
		if !files.isMeshFile(name) {
			t.Errorf("isMeshFile(%q) = false, want true", name)
		}
	}
	if files.isMeshFile("model") {
		t.Errorf("isMeshFile without extension should be false")
	}

	// Texture and trajectory defaults carry the any-extension entry.
	if !files.isTextureFile("surface.webp") {
		t.Errorf("texture wildcard should accept unlisted extensions")
	}
	if files.isTextureFile("dir/surface.png") {
		t.Errorf("texture with path separator should be rejected")
	}
	if !files.isTrajectoryFile("orbit.xyzv") {
		t.Errorf("isTrajectoryFile(%q) = false, want true", "orbit.xyzv")
	}
}
