package fstest

import (
	"bytes"
	"testing"

	"github.com/jmgilman/go/content/fs/core"
)

// TestWriteFS tests WriteFile and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	TestWriteFSWithConfig(t, filesystem, FSTestConfig{})
}

// TestWriteFSWithConfig tests write operations with behavior configuration.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	run := func(name string, fn func(t *testing.T)) {
		t.Run(name, func(t *testing.T) {
			if config.shouldSkip("WriteFS/" + name) {
				t.Skip("Skipped by provider configuration")
			}
			fn(t)
		})
	}

	run("WriteFile", func(t *testing.T) {
		name := config.join("writefile.txt")
		writeAndVerify(t, filesystem, name, []byte("test data for WriteFile"))
	})

	run("Truncate", func(t *testing.T) {
		name := config.join("truncate.txt")
		writeAndVerify(t, filesystem, name, []byte("a much longer original body"))
		writeAndVerify(t, filesystem, name, []byte("short"))
	})

	run("Empty", func(t *testing.T) {
		name := config.join("empty.txt")
		writeAndVerify(t, filesystem, name, []byte("non-empty"))
		writeAndVerify(t, filesystem, name, []byte{})
	})

	run("MultiByte", func(t *testing.T) {
		name := config.join("unicode.txt")
		writeAndVerify(t, filesystem, name, []byte("привет, 世界 🌍"))
	})

	run("MkdirAll", func(t *testing.T) {
		dir := config.join("a/b/c")
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", dir, err)
		}
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			t.Errorf("MkdirAll(%q) on existing directory: got error %v, want nil", dir, err)
		}
		info, err := filesystem.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", dir)
		}
	})
}

func writeAndVerify(t *testing.T, filesystem core.FS, name string, data []byte) {
	t.Helper()

	if err := filesystem.WriteFile(name, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}
	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, got, data)
	}
}
