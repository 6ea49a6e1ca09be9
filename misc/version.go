// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X cssp/misc.version=... -X cssp/misc.buildHash=..."
var (
	version   = "dev"
	buildHash = "unknown"
)

// GetVersion returns version of the program.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit the program was built from.
func GetGitHash() string {
	return buildHash
}

// GetAppName returns base name of the executable without extension.
func GetAppName() string {
	if exe, err := os.Executable(); err == nil {
		name := strings.TrimSuffix(filepath.Base(exe), ".exe")
		// test binaries are named after the package
		if name != "" && !strings.HasSuffix(name, ".test") {
			return name
		}
	}
	return "cssp"
}
