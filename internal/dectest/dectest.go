// Package dectest materializes a [fstest.MapFS] onto a real temporary
// directory, for decoder tests whose ExtractPackages takes a
// filesystem path rather than an [fs.FS].
package dectest

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// WriteFS writes every file in fsys under t.TempDir() and returns that
// directory's root path.
func WriteFS(t *testing.T, fsys fstest.MapFS) string {
	t.Helper()
	root := t.TempDir()
	for name, f := range fsys {
		dst := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			t.Fatal(err)
		}
		mode := f.Mode
		if mode == 0 {
			mode = 0o644
		}
		if err := os.WriteFile(dst, f.Data, mode); err != nil {
			t.Fatal(err)
		}
	}
	return root
}
