// Package cli implements command execution for lockcheck.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/lockcheck/lockcheck/pkg/console"
	"github.com/lockcheck/lockcheck/pkg/lockfile"
	"github.com/lockcheck/lockcheck/pkg/logger"
)

var checkLog = logger.New("cli:check")

// CheckConfig holds configuration for check command execution
type CheckConfig struct {
	Dir string
}

// RunCheck reads the package-lock.json in the configured directory and
// reports package entries that are missing resolved or integrity fields.
//
// The report is the contract consumed by CI: nothing is printed on success,
// and any returned error means the process must exit non-zero. Read
// failures, parse failures, and validation findings are all printed to
// stdout before returning.
func RunCheck(config CheckConfig) error {
	dir := config.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, lockfile.FileName)
	checkLog.Printf("checking lockfile: path=%s", path)

	lf, err := lockfile.ReadDir(dir)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			fmt.Println(console.FormatErrorMessage(fmt.Sprintf("Could not read %s at %s", lockfile.FileName, path)))
		} else {
			fmt.Println(console.FormatErrorMessage(err.Error()))
		}
		return err
	}

	missing := lf.MissingResolutions()
	checkLog.Printf("validation complete: violations=%d", len(missing))
	if len(missing) == 0 {
		return nil
	}

	header := fmt.Sprintf("%s is missing the following resolved/integrity fields:", lockfile.FileName)
	if name := lf.Name(); name != "" {
		header = fmt.Sprintf("[%s] %s", name, header)
	}
	fmt.Println(console.FormatErrorMessage(header))
	for _, key := range missing {
		fmt.Println(console.FormatListItem(key))
	}

	return fmt.Errorf("%d package entries are missing resolved/integrity fields", len(missing))
}
