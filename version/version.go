// Package version exposes build-time metadata for the xylem binary.
// The variables are meant to be overridden at link time.
package version

//nolint:gochecknoglobals // set via -ldflags at build time
var (
	name    = "xylem"
	version = "dev"
	commit  = "unknown"
)

func Name() string { return name }

func Version() string { return version }

func Commit() string { return commit }
