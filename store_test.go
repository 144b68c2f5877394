package content

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jmgilman/go/content/errors"
	"github.com/jmgilman/go/content/fs/billy"
	"github.com/jmgilman/go/content/fs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, body string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "temp.txt")
	require.NoError(t, os.WriteFile(name, []byte(body), 0o644))
	return name
}

func TestTextStore_ReadsContent(t *testing.T) {
	store := NewTextStore(tempFile(t, "Hi there"))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "Hi there", got)
}

func TestTextStore_ReadsUnicodeUnchanged(t *testing.T) {
	store := NewTextStore(tempFile(t, "привет!!!"))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "привет!!!", got)
}

func TestTextStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "Hi there"},
		{"control characters", "line1\nline2\r\n\ttab\x00nul\x7f"},
		{"cyrillic", "Привет!!!"},
		{"mixed scripts", "héllo 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewTextStore(filepath.Join(t.TempDir(), "round.txt"))

			require.NoError(t, store.Write(tt.text))
			got, err := store.Read()
			require.NoError(t, err)
			assert.Equal(t, tt.text, got)

			onDisk, err := os.ReadFile(store.Path())
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(onDisk))
		})
	}
}

func TestTextStore_WriteTruncates(t *testing.T) {
	store := NewTextStore(tempFile(t, "a considerably longer original body"))

	require.NoError(t, store.Write("short"))
	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestTextStore_NoCaching(t *testing.T) {
	name := tempFile(t, "first")
	store := NewTextStore(name)

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	require.NoError(t, os.WriteFile(name, []byte("second"), 0o644))
	got, err = store.Read()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestTextStore_RelativePathResolved(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	store := NewTextStore("relative.txt")
	assert.True(t, filepath.IsAbs(store.Path()))

	require.NoError(t, store.Write("here"))
	data, err := os.ReadFile(filepath.Join(dir, "relative.txt"))
	require.NoError(t, err)
	assert.Equal(t, "here", string(data))
}

func TestTextStore_Errors(t *testing.T) {
	t.Run("read missing file", func(t *testing.T) {
		store := NewTextStore(filepath.Join(t.TempDir(), "missing.txt"))

		got, err := store.Read()
		require.Error(t, err)
		assert.Empty(t, got)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.False(t, errors.IsRetryable(err))
	})

	t.Run("write without parent directory", func(t *testing.T) {
		dir := t.TempDir()
		store := NewTextStore(filepath.Join(dir, "nested", "file.txt"))

		err := store.Write("data")
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
		assert.ErrorIs(t, err, fs.ErrNotExist)

		_, statErr := os.Stat(filepath.Join(dir, "nested"))
		assert.ErrorIs(t, statErr, fs.ErrNotExist, "parent directory must not be created")
	})

	t.Run("write under a file", func(t *testing.T) {
		parent := tempFile(t, "i am a file")
		store := NewTextStore(filepath.Join(parent, "child.txt"))

		err := store.Write("data")
		require.Error(t, err)
		assert.Equal(t, errors.CodeStorage, errors.GetCode(err))
		assert.ErrorIs(t, err, errNotDir)
	})

	t.Run("read invalid utf-8", func(t *testing.T) {
		store := NewTextStore(tempFile(t, "ok\xff\xfe"))

		_, err := store.Read()
		require.Error(t, err)
		assert.Equal(t, errors.CodeEncoding, errors.GetCode(err))
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("write invalid utf-8 leaves file untouched", func(t *testing.T) {
		name := tempFile(t, "original")
		store := NewTextStore(name)

		err := store.Write("bad\xc3")
		require.Error(t, err)
		assert.Equal(t, errors.CodeEncoding, errors.GetCode(err))

		data, readErr := os.ReadFile(name)
		require.NoError(t, readErr)
		assert.Equal(t, "original", string(data))
	})

	t.Run("read directory", func(t *testing.T) {
		store := NewTextStore(t.TempDir())

		_, err := store.Read()
		require.Error(t, err)
	})

	t.Run("permission denied", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission checks do not apply")
		}
		name := tempFile(t, "secret")
		require.NoError(t, os.Chmod(name, 0o000))
		t.Cleanup(func() { _ = os.Chmod(name, 0o644) })

		_, err := NewTextStore(name).Read()
		require.Error(t, err)
		assert.Equal(t, errors.CodeForbidden, errors.GetCode(err))
		assert.ErrorIs(t, err, fs.ErrPermission)
	})

	t.Run("context carries path and op", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "missing.txt")
		_, err := NewTextStore(name).Read()

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, name, platformErr.Context()["path"])
		assert.Equal(t, "read", platformErr.Context()["op"])
	})
}

func TestTextStore_MemoryFS(t *testing.T) {
	mem := billy.NewMemory()
	require.NoError(t, mem.MkdirAll("/data", 0o755))

	store := NewTextStore("/data/notes.txt", WithFS(mem))
	require.NoError(t, store.Write("in memory"))

	data, err := mem.ReadFile("/data/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "in memory", string(data))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "in memory", got)

	t.Run("relative path is not resolved", func(t *testing.T) {
		rel := NewTextStore("notes.txt", WithFS(mem))
		assert.Equal(t, "notes.txt", rel.Path())
		require.NoError(t, rel.Write("root level"))
	})

	t.Run("missing parent", func(t *testing.T) {
		err := NewTextStore("/nope/notes.txt", WithFS(mem)).Write("x")
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

		exists, existsErr := mem.Exists("/nope")
		require.NoError(t, existsErr)
		assert.False(t, exists)
	})
}

func TestTextStore_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		store := NewTextStore("/x.txt")
		assert.Equal(t, DefaultPerm, store.perm)
		assert.Equal(t, core.FSTypeLocal, store.filesystem.Type())
		assert.NotNil(t, store.logger)
	})

	t.Run("nil and zero values are ignored", func(t *testing.T) {
		store := NewTextStore("/x.txt", WithFS(nil), WithPerm(0), WithLogger(nil))
		assert.Equal(t, DefaultPerm, store.perm)
		assert.Equal(t, core.FSTypeLocal, store.filesystem.Type())
		assert.NotNil(t, store.logger)
	})

	t.Run("perm applied to new files", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("mode bits are not portable")
		}
		name := filepath.Join(t.TempDir(), "perm.txt")
		require.NoError(t, NewTextStore(name, WithPerm(0o600)).Write("x"))

		info, err := os.Stat(name)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
	})
}

func TestTextStore_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	name := filepath.Join(t.TempDir(), "logged.txt")
	store := NewTextStore(name, WithLogger(logger))

	require.NoError(t, store.Write("abc"))
	_, err := store.Read()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "wrote content")
	assert.Contains(t, out, "read content")
	assert.Contains(t, out, "bytes=3")
	assert.Contains(t, out, name)

	buf.Reset()
	_, err = NewTextStore(filepath.Join(t.TempDir(), "missing.txt"), WithLogger(logger)).Read()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "op=read")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"invalid utf-8", ErrInvalidUTF8, errors.CodeEncoding},
		{"not exist", &fs.PathError{Op: "open", Path: "/a", Err: fs.ErrNotExist}, errors.CodeNotFound},
		{"permission", &fs.PathError{Op: "open", Path: "/a", Err: fs.ErrPermission}, errors.CodeForbidden},
		{"other", errNotDir, errors.CodeStorage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestMakeContext(t *testing.T) {
	assert.Nil(t, makeContext())
	assert.Nil(t, makeContext(1, 2))
	assert.Equal(t, map[string]interface{}{"path": "/a"}, makeContext("path", "/a", "dangling"))
}
