package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String formats the build metadata for the version command and the history
// table.
func String() string {
	return fmt.Sprintf("motion-report %s (%s, built %s)", Version, GitSHA, BuildTime)
}
