// Package core defines the filesystem contract that content stores are
// written against.
//
// The contract is deliberately narrow: whole-file reads and writes, a Stat
// used to check that a parent directory exists, and MkdirAll for callers
// that need to prepare a tree. Providers live in sibling packages:
//
//   - github.com/jmgilman/go/content/fs/billy - go-billy-backed local and in-memory providers
//
// Errors returned by providers follow io/fs conventions, so callers can test
// them with errors.Is against ErrNotExist and ErrPermission.
package core
