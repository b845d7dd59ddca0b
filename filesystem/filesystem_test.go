package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/zip"
)

func collectFiles(t *testing.T, fsys FileSystem) []string {
	t.Helper()
	var names []string
	err := fsys.WalkDir(".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected walk error: %v", err)
	}
	sort.Strings(names)
	return names
}

func TestWrappedFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"solarsys.ssc":  "\"Io\" \"Sol/Jupiter\" { }\n",
		"sub/stars.stc": "619116 { }\n",
	}
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fsys := NewWrappedFS(dir)
	names := collectFiles(t, fsys)
	expected := []string{"solarsys.ssc", "sub/stars.stc"}
	if len(names) != len(expected) {
		t.Fatalf("walked %v, want %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("walked %v, want %v", names, expected)
			break
		}
	}

	f, err := fsys.Open("solarsys.ssc")
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(data) != files["solarsys.ssc"] {
		t.Errorf("read %q, want %q", data, files["solarsys.ssc"])
	}
}

func TestZipFS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addon.zip")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(out)
	for name, contents := range map[string]string{
		"addon/galaxies.dsc": "Galaxy \"M31\" { }\n",
		"addon/readme.txt":   "not a catalog\n",
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	zfs, err := NewZipFS(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer zfs.Close()

	names := collectFiles(t, zfs)
	expected := []string{"addon/galaxies.dsc", "addon/readme.txt"}
	if len(names) != len(expected) {
		t.Fatalf("walked %v, want %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("walked %v, want %v", names, expected)
			break
		}
	}

	f, err := zfs.Open("addon/galaxies.dsc")
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(data) != "Galaxy \"M31\" { }\n" {
		t.Errorf("read %q", data)
	}
}
