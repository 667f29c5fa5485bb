package buildinfo

import "fmt"

// Set at build time using -ldflags "-X hello/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the version line for the named program.
func String(program string) string {
	return fmt.Sprintf("%s %s (commit=%s, date=%s)", program, Version, Commit, Date)
}
