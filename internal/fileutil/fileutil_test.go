package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-md2png/internal/fileutil"
)

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext     string
		wantErr error
	}{
		{"html", nil},
		{"png", nil},
		{"tar.gz", nil},
		{"", fileutil.ErrExtensionEmpty},
		{"../html", fileutil.ErrExtensionPathTraversal},
		{`a\b`, fileutil.ErrExtensionPathTraversal},
		{"ht\x00ml", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		err := fileutil.ValidateExtension(tt.ext)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.ext, err, tt.wantErr)
		}
	}
}

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	content := "<!DOCTYPE html><p>zażółć</p>"
	path, cleanup, err := fileutil.WriteTempFile(content, "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), "md2png-") || !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q lacks md2png- prefix or .html suffix", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q, want %q", got, content)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after cleanup: %v", err)
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("x", "../evil")
	if !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
		t.Errorf("error = %v, want ErrExtensionPathTraversal", err)
	}
	if path != "" || cleanup != nil {
		t.Error("expected empty path and nil cleanup on error")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("new image"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new image" {
		t.Errorf("content = %q, want %q", got, "new image")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Errorf("mode = %v, want 0644", info.Mode().Perm())
		}
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "out.png")
	if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"brand", false},
		{"my-style", false},
		{"./custom.css", true},
		{"../shared/style.css", true},
		{"/abs/path.css", true},
		{`C:\styles\brand.css`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"dark", false},
		{"./custom.css", false},
		{"body { color: red; }", true},
		{"body {", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsCSS(tt.input); got != tt.want {
			t.Errorf("IsCSS(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com/a.png", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"javascript:alert(1)", false},
		{"example.com", false},
		{"HTTPS://example.com", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	exts := []string{".md", ".txt"}
	tests := []struct {
		path string
		want bool
	}{
		{"notes.md", true},
		{"NOTES.MD", true},
		{"a/b/c.txt", true},
		{"image.png", false},
		{"README", false},
	}

	for _, tt := range tests {
		if got := fileutil.HasExtension(tt.path, exts...); got != tt.want {
			t.Errorf("HasExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, ext, want string
	}{
		{"notes.md", ".png", "notes.png"},
		{"dir/notes.tar.md", ".jpg", "dir/notes.tar.jpg"},
		{"README", ".png", "README.png"},
	}

	for _, tt := range tests {
		if got := fileutil.ReplaceExtension(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}
