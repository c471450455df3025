package lockfile

import (
	"sort"
	"strings"

	"github.com/lockcheck/lockcheck/pkg/logger"
)

var validateLog = logger.New("lockfile:validate")

// nodeModulesPrefix marks keys that identify installed dependencies. Keys
// outside node_modules are workspace members and exempt from the check.
const nodeModulesPrefix = "node_modules"

// MissingResolutions returns the keys of package entries that must carry
// integrity and resolved fields but are missing at least one of them.
//
// An entry is subject to the check when its key is non-empty, starts with
// node_modules, and the entry is not a symlink (link: true). A required
// field counts as missing only when it is absent or JSON null; a value of
// the wrong type still counts as present, since this is a completeness
// check, not a type validator.
//
// A lockfile without a packages section is valid and yields no violations:
// older lockfile versions may omit it entirely. The result is sorted so
// repeated runs over the same document agree.
func (l *Lockfile) MissingResolutions() []string {
	packages := l.packages()
	if packages == nil {
		// Deliberately permissive: no packages section means nothing to check.
		return nil
	}

	var missing []string
	for key, value := range packages {
		// The empty key is the root project itself, never a dependency.
		if key == "" {
			continue
		}
		if !strings.HasPrefix(key, nodeModulesPrefix) {
			continue
		}

		entry, _ := value.(map[string]any)
		if entry["link"] == true {
			continue
		}

		if fieldMissing(entry, "integrity") || fieldMissing(entry, "resolved") {
			missing = append(missing, key)
		}
	}

	sort.Strings(missing)
	validateLog.Printf("checked %d entries: %d missing resolutions", len(packages), len(missing))
	return missing
}

// fieldMissing reports whether a field is absent or explicitly null. A nil
// entry map (a package value that is not an object) has every field absent.
func fieldMissing(entry map[string]any, field string) bool {
	value, ok := entry[field]
	return !ok || value == nil
}
