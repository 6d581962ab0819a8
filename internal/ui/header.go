package ui

import (
	"fmt"

	"github.com/penumbra-droid/droidsound/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "One voice for every droid sound board",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader draws the app name, tagline and an optional subtitle
func renderHeader(showVersion bool, subtitle string) string {
	line := theme.AppNameStyle.Render("droidsound")
	if showVersion {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s", versionInfo.Version, commit))
	}

	out := line + "\n" + theme.TaglineStyle.Render(versionInfo.Tagline)
	if subtitle != "" {
		out += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return out + "\n"
}
