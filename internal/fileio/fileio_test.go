package fileio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestIsCompressed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"users.csv", false},
		{"users.csv.lz4", true},
		{"out/LIKES.LZ4", true},
		{"lz4", false},
	}

	for _, tt := range tests {
		if got := IsCompressed(tt.path); got != tt.want {
			t.Errorf("IsCompressed(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCreateAndOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
	}{
		{"plain", "users.csv"},
		{"lz4", "users.csv.lz4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "nested", "dir", tt.file)
			content := []byte("\"Ann Lee\", \"999-999-999\", 1, 2, \"male\"\n")

			w, err := Create(path)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if _, err := w.Write(content); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if compressed := !bytes.Equal(raw, content); compressed != IsCompressed(path) {
				t.Errorf("on-disk compressed = %v, want %v", compressed, IsCompressed(path))
			}

			r, err := Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer r.Close()

			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if !bytes.Equal(got, content) {
				t.Errorf("read back %q, want %q", got, content)
			}
		})
	}
}

func TestCreateTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "likes.csv")
	if err := os.WriteFile(path, []byte("a much longer previous content\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	w.WriteString("new\n")
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new\n" {
		t.Errorf("file = %q, want %q", got, "new\n")
	}
}

func TestOpenMissing(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
