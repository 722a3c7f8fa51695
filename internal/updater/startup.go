package updater

import (
	"fmt"
	"io"
	"time"
)

// CheckAndRecordRun compares the running version against the last recorded
// run and prints a downgrade notice if the binary got older. It never
// blocks or fails loudly; development builds with unparsable versions are
// silently ignored. The current version is recorded for the next run.
func CheckAndRecordRun(w io.Writer, currentVersion, configDir string) {
	lr, err := LoadLastRun(configDir)
	if err == nil && lr != nil {
		if downgrade, cmpErr := IsDowngrade(currentVersion, lr.Version); cmpErr == nil && downgrade {
			fmt.Fprintf(w, "\nNote: running %s, but %s ran previously on this machine.\n\n",
				currentVersion, lr.Version)
		}
	}

	// Silently ignore save errors.
	_ = SaveLastRun(configDir, &LastRun{
		Version: currentVersion,
		RanAt:   time.Now(),
	})
}
