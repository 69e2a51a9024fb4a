package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/gabryel85/peopletable/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("peopletable %s (commit=%s, date=%s)", Version, Commit, Date)
}
