//go:build !integration

package lockfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixtureCopy writes content as the package-lock.json inside dir.
func writeFixtureCopy(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "truncated document", data: `{"packages": {"node_modules/foo"`},
		{name: "empty input", data: ``},
		{name: "trailing garbage", data: `{} trailing`},
		{name: "single quotes", data: `{'name': 'x'}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lf, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, lf)
			assert.Contains(t, err.Error(), "failed to parse lockfile JSON")
		})
	}
}

func TestParseAcceptsAnyValidJSON(t *testing.T) {
	// Shape validation is not Parse's job; non-object documents simply have
	// no packages to check.
	for _, data := range []string{`{}`, `[]`, `null`, `42`, `"lockfile"`} {
		lf, err := Parse([]byte(data))
		require.NoError(t, err, "input: %s", data)
		assert.Empty(t, lf.MissingResolutions(), "input: %s", data)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected string
	}{
		{name: "string name", data: `{"name": "demo-app"}`, expected: "demo-app"},
		{name: "absent name", data: `{"version": "1.0.0"}`, expected: ""},
		{name: "non-string name", data: `{"name": 42}`, expected: ""},
		{name: "non-object document", data: `[1, 2, 3]`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lf, err := Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lf.Name())
		})
	}
}

func TestReadDirJoinsLockfileName(t *testing.T) {
	dir := t.TempDir()
	writeFixtureCopy(t, dir, `{"name": "from-dir", "packages": {}}`)

	lf, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dir", lf.Name())
}

func TestReadDirMissingFile(t *testing.T) {
	lf, err := ReadDir(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, lf)
	assert.Contains(t, err.Error(), "failed to read lockfile")
}

func TestGoodFixturesHaveNoViolations(t *testing.T) {
	for _, fixture := range []string{"lockfile2", "lockfile2-workspaces", "lockfile3", "lockfile3-workspaces"} {
		t.Run(fixture, func(t *testing.T) {
			lf, err := ReadDir(filepath.Join("testdata", "good", fixture))
			require.NoError(t, err)
			assert.Empty(t, lf.MissingResolutions())
		})
	}
}

func TestBadFixturesHaveViolations(t *testing.T) {
	tests := []struct {
		fixture  string
		expected []string
	}{
		{fixture: "lockfile2", expected: []string{"node_modules/left-pad", "node_modules/ms"}},
		{fixture: "lockfile2-workspaces", expected: []string{"node_modules/ms"}},
		{fixture: "lockfile3", expected: []string{"node_modules/debug", "node_modules/ms"}},
		{fixture: "lockfile3-workspaces", expected: []string{"node_modules/debug"}},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			lf, err := ReadDir(filepath.Join("testdata", "bad", tt.fixture))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lf.MissingResolutions())
		})
	}
}
