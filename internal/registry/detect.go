package registry

import (
	"os"
	"path/filepath"
)

// registryBaseName is the registry file name without extension.
const registryBaseName = "dynamics"

// probeOrder is the priority order for auto-detecting an existing registry.
var probeOrder = []Format{FormatTOML, FormatJSON, FormatYAML}

// RegistryPath returns the registry file path for a format inside the
// includes directory.
func RegistryPath(includesDir string, f Format) string {
	return filepath.Join(includesDir, registryBaseName+"."+f.Ext())
}

// DetectFormat probes the includes directory for an existing registry file
// and reports which format it found. The second return is false when no
// registry exists yet.
func DetectFormat(includesDir string) (Format, bool) {
	for _, f := range probeOrder {
		if _, err := os.Stat(RegistryPath(includesDir, f)); err == nil {
			return f, true
		}
	}
	return FormatYAML, false
}
