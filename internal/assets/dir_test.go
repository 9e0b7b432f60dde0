package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeAsset creates dir/rel with content, making parent directories.
func writeAsset(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestOpenDir - Custom directory validation
// ---------------------------------------------------------------------------

func TestOpenDir(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "directory", path: t.TempDir()},
		{name: "empty", path: "", wantErr: true},
		{name: "missing", path: filepath.Join(t.TempDir(), "nope"), wantErr: true},
		{name: "regular file", path: file, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := OpenDir(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBasePath) {
					t.Errorf("OpenDir(%q) error = %v, want ErrInvalidBasePath", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Errorf("OpenDir(%q) unexpected error: %v", tt.path, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDir_Load - Reading from disk
// ---------------------------------------------------------------------------

func TestDir_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles/brand.css", "h1{color:teal}")
	writeAsset(t, base, "templates/page.html", "<main>{{.Body}}</main>")

	dir, err := OpenDir(base)
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}

	if got, err := dir.Load(Style, "brand"); err != nil || got != "h1{color:teal}" {
		t.Errorf("Load(Style, brand) = %q, %v", got, err)
	}
	if got, err := dir.Load(Template, "page"); err != nil || got != "<main>{{.Body}}</main>" {
		t.Errorf("Load(Template, page) = %q, %v", got, err)
	}
	if _, err := dir.Load(Style, "dark"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("missing style error = %v, want ErrStyleNotFound", err)
	}
	if _, err := dir.Load(Style, "../styles/brand"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("traversal error = %v, want ErrInvalidAssetName", err)
	}
}

func TestDir_Load_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	outside := t.TempDir()
	writeAsset(t, outside, "secret.css", "secret")

	base := t.TempDir()
	writeAsset(t, base, "styles/inside.css", "inside")
	if err := os.Symlink(filepath.Join(outside, "secret.css"), filepath.Join(base, "styles", "leak.css")); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Symlink("inside.css", filepath.Join(base, "styles", "alias.css")); err != nil {
		t.Fatalf("setup: %v", err)
	}

	dir, err := OpenDir(base)
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}

	if _, err := dir.Load(Style, "leak"); !errors.Is(err, ErrAssetRead) {
		t.Errorf("escaping symlink error = %v, want ErrAssetRead", err)
	}
	if got, err := dir.Load(Style, "alias"); err != nil || got != "inside" {
		t.Errorf("contained symlink = %q, %v; want inside", got, err)
	}
}
