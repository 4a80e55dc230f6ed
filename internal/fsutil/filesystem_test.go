package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryFileSystemRoundTrip(t *testing.T) {
	m := NewMemoryFileSystem()

	w, err := m.Create("out/plot.png")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Contents appear only after Close, matching os.Create+flush semantics
	// closely enough for the renderer tests.
	if m.Exists("out/plot.png") {
		t.Fatal("file visible before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, ok := m.Bytes("out/plot.png")
	if !ok || string(data) != "png-bytes" {
		t.Fatalf("Bytes = %q, %v; want %q, true", data, ok, "png-bytes")
	}
}

func TestMemoryFileSystemOpen(t *testing.T) {
	m := NewMemoryFileSystem()
	m.AddFile("path.txt", []byte("Time,X,Y\n"))

	f, err := m.Open("path.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "Time,X,Y\n" {
		t.Errorf("read %q, want %q", data, "Time,X,Y\n")
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != int64(len(data)) {
		t.Errorf("Size = %d, want %d", info.Size(), len(data))
	}
}

func TestMemoryFileSystemMissingFile(t *testing.T) {
	m := NewMemoryFileSystem()

	if _, err := m.Open("nope.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open missing file: err = %v, want fs.ErrNotExist", err)
	}
	if _, err := m.Stat("nope.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat missing file: err = %v, want fs.ErrNotExist", err)
	}
	if m.Exists("nope.txt") {
		t.Error("Exists(missing) = true")
	}
}

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	var fsys FileSystem = OSFileSystem{}
	if !fsys.Exists(path) {
		t.Error("Exists = false for existing file")
	}

	f, err := fsys.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("read %q, want %q", data, "hello")
	}

	if _, err := fsys.Open(filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open missing: err = %v, want fs.ErrNotExist", err)
	}
}
