package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_SaveKeepsExtensionOnly(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	path, err := store.Save("../../etc/passwd.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Fatalf("file stored outside base dir: %q", path)
	}
	name := filepath.Base(path)
	if strings.Contains(name, "passwd") {
		t.Fatalf("user-supplied filename leaked into stored name: %q", name)
	}
	if filepath.Ext(name) != ".pdf" {
		t.Fatalf("extension not preserved: %q", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestDiskStore_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewDiskStore(dir); err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("base dir not created: %v", err)
	}
}

func TestDiskStore_UniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	a, err := store.Save("doc.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := store.Save("doc.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Fatalf("two uploads of the same filename collided: %q", a)
	}
}
