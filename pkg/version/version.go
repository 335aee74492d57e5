// Package version holds the build version of hookctl.
package version

var (
	// Version is the version of hookctl. It's set via ldflags when building.
	Version = ""

	// CommitSHA is the commit hookctl was built from. It's set via ldflags
	// when building.
	CommitSHA = ""
)

// UserAgent returns the User-Agent header value sent by hookctl.
func UserAgent() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	return "hookctl/" + v
}
