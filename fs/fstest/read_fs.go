package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/content/fs/core"
)

// TestReadFS tests ReadFile, Stat and Exists against a pre-populated tree.
func TestReadFS(t *testing.T, filesystem core.FS) {
	TestReadFSWithConfig(t, filesystem, FSTestConfig{})
}

// TestReadFSWithConfig tests read-only operations with behavior configuration.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	testContent := []byte("test file content")
	dir := config.join("testdir")
	file := config.join("testdir/testfile.txt")

	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}
	if err := filesystem.WriteFile(file, testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file, err)
	}

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", file, err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(%q): got %q, want %q", file, data, testContent)
		}
	})

	t.Run("ReadFileNotExist", func(t *testing.T) {
		name := config.join("nonexistent.txt")
		_, err := filesystem.ReadFile(name)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(%q): got error %v, want fs.ErrNotExist", name, err)
		}
	})

	t.Run("StatFile", func(t *testing.T) {
		info, err := filesystem.Stat(file)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", file, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", file)
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(%q): Size() = %d, want %d", file, info.Size(), len(testContent))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", dir)
		}
	})

	t.Run("StatNotExist", func(t *testing.T) {
		name := config.join("nonexistent")
		_, err := filesystem.Stat(name)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", name, err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for _, name := range []string{file, dir} {
			exists, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
				continue
			}
			if !exists {
				t.Errorf("Exists(%q): got false, want true", name)
			}
		}
	})

	t.Run("ExistsNotExist", func(t *testing.T) {
		name := config.join("nonexistent")
		exists, err := filesystem.Exists(name)
		if err != nil {
			t.Fatalf("Exists(%q): got error %v, want nil", name, err)
		}
		if exists {
			t.Errorf("Exists(%q): got true, want false", name)
		}
	})
}
