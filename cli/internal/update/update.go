package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/cmoscosoz/mock-supabase-go/cli/internal/ui"
)

// latestKnownVersion is the newest release this build knows about. There is
// no network in this tool, so the check is purely local.
const latestKnownVersion = "0.1.0"

// CheckForUpdates compares the running version against the newest known
// release and prints a hint when an update is available.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnownVersion)
		fmt.Printf("\nUpdate with: go install github.com/cmoscosoz/mock-supabase-go/cli@latest\n")
	}

	return nil
}

// GetDownloadURL returns the release download URL for the current platform.
func GetDownloadURL(v string) string {
	return fmt.Sprintf("https://github.com/cmoscosoz/mock-supabase-go/releases/download/v%s/mock-supabase-%s-%s", v, runtime.GOOS, runtime.GOARCH)
}
