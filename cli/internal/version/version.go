// Package version records the build metadata stamped into the binary
// with -ldflags "-X ...".
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "0.1.0"
	GitCommit = ""
	BuildDate = ""
)

// String is the one-line banner: name, version, platform, Go runtime.
func String() string {
	return fmt.Sprintf("mock-supabase %s (%s/%s, %s)", Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// Detailed appends commit and build date when they were stamped in.
func Detailed() string {
	out := String()
	if GitCommit != "" {
		out += fmt.Sprintf("\ncommit:     %s", GitCommit)
	}
	if BuildDate != "" {
		out += fmt.Sprintf("\nbuild date: %s", BuildDate)
	}
	return out
}
