// Package fstest provides a conformance test suite for core.FS providers.
//
// The suite checks exactly the behavior content stores rely on: whole-file
// reads and writes, truncation, byte-exact round trips of multi-byte UTF-8,
// existence checks and not-exist errors.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"path"
	"testing"

	"github.com/jmgilman/go/content/fs/core"
)

// FSTestConfig configures the suite for a provider.
type FSTestConfig struct {
	// Root is the directory all test paths are created under. Providers
	// rooted at "/" on real disk should pass a t.TempDir() here.
	Root string

	// SkipTests lists test names to skip, e.g. "WriteFS/Truncate".
	SkipTests []string
}

// TestSuite runs all conformance tests against a filesystem, creating test
// files relative to the provider root.
// The newFS function should return a fresh, empty filesystem for each group.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, FSTestConfig{})
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	t.Run("ReadFS", func(t *testing.T) {
		if config.shouldSkip("ReadFS") {
			t.Skip("Skipped by provider configuration")
		}
		TestReadFSWithConfig(t, newFS(), config)
	})

	t.Run("WriteFS", func(t *testing.T) {
		if config.shouldSkip("WriteFS") {
			t.Skip("Skipped by provider configuration")
		}
		TestWriteFSWithConfig(t, newFS(), config)
	})
}

func (c FSTestConfig) shouldSkip(testName string) bool {
	for _, skip := range c.SkipTests {
		if skip == testName {
			return true
		}
	}
	return false
}

// join places name under the configured root.
func (c FSTestConfig) join(name string) string {
	if c.Root == "" {
		return name
	}
	return path.Join(c.Root, name)
}
