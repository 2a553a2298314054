package version

import "fmt"

// These variables are overridden at build time using -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String renders the build metadata on one line for CLI output.
func String() string {
	s := fmt.Sprintf("%s (commit %s", Version, Commit)
	if Date != "" {
		s += ", built " + Date
	}
	if Dirty == "true" {
		s += ", dirty"
	}
	return s + ")"
}
