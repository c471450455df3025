// Package lockfile reads npm package-lock.json documents and checks that
// every installed dependency entry carries the fields an install step needs:
// an integrity checksum and a resolved download location.
//
// The document is kept untyped on purpose. The check must tell apart a field
// that is absent, a field that is JSON null, and a field that is present
// with an unexpected type, and a typed struct unmarshal collapses those
// cases (or rejects the document outright).
package lockfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lockcheck/lockcheck/pkg/logger"
)

var parseLog = logger.New("lockfile:parse")

// FileName is the fixed name npm gives its lockfile.
const FileName = "package-lock.json"

// Lockfile holds a parsed package-lock.json document.
type Lockfile struct {
	doc any
}

// ReadDir reads and parses the package-lock.json inside dir.
func ReadDir(dir string) (*Lockfile, error) {
	return ReadFile(filepath.Join(dir, FileName))
}

// ReadFile reads and parses a lockfile from the given path.
func ReadFile(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lockfile: %w", err)
	}
	return Parse(data)
}

// Parse parses lockfile JSON data. Any syntactically valid JSON document is
// accepted; validation of its shape happens lazily in the accessors, which
// treat unexpected shapes as empty rather than erroring.
func Parse(data []byte) (*Lockfile, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse lockfile JSON: %w", err)
	}
	parseLog.Printf("parsed lockfile: %d bytes", len(data))
	return &Lockfile{doc: doc}, nil
}

// Name returns the lockfile's root name field, or "" when the field is
// absent or not a string.
func (l *Lockfile) Name() string {
	root, ok := l.doc.(map[string]any)
	if !ok {
		return ""
	}
	name, _ := root["name"].(string)
	return name
}

// packages returns the packages section, or nil when it is absent or not an
// object.
func (l *Lockfile) packages() map[string]any {
	root, ok := l.doc.(map[string]any)
	if !ok {
		return nil
	}
	packages, ok := root["packages"].(map[string]any)
	if !ok {
		return nil
	}
	return packages
}
