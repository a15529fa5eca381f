package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestPutWritesFileUnderBaseDir(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	location, err := store.Put(context.Background(), "abcd1234/cv_20240502150405.pdf", "<html></html>")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	want := filepath.Join(dir, "abcd1234", "cv_20240502150405.pdf")
	if location != want {
		t.Fatalf("location: got %q, want %q", location, want)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Fatalf("content: got %q", data)
	}
}

func TestPutIsIdempotentOnFolder(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Put(context.Background(), "folder/a.pdf", "a"); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if _, err := store.Put(context.Background(), "folder/b.pdf", "b"); err != nil {
		t.Fatalf("second Put: %v", err)
	}
}

func TestPutRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"../escape.pdf", "/abs/path.pdf", "a/../../escape.pdf"} {
		if _, err := store.Put(context.Background(), key, "x"); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}
