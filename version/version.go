package version

import (
	"fmt"
	"runtime"
)

// These variables are populated by the Go linker during the build process.
var (
	Version   = "dev"     // Overridden by the Git tag
	Commit    = "none"    // Overridden by the Git commit hash
	BuildDate = "unknown" // Overridden by the build timestamp
)

// Info holds all the versioning information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns a struct populated with the version information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted string of the version information.
func (i Info) String() string {
	return fmt.Sprintf(
		"promptbridge %s\n  Commit:     %s\n  Built:      %s\n  Go Version: %s\n  Platform:   %s",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform,
	)
}
