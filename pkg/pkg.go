//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"runtime/debug"
	"strings"
	"sync"
)

// Version is the semantic version of the yaf module embedded at build time.
// It is printed by the CLI when users pass the version flag.
//
//go:embed VERSION
var Version string

// Builtin is the template rendered when no configuration file exists.
// It is printed verbatim by the dump-config flag.
//
//go:embed yaf.conf
var Builtin string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "yaf"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Yet another fetch"
)

// unknownRevision is reported when the binary carries no VCS metadata.
const unknownRevision = "unknown"

// Revision returns the abbreviated VCS revision recorded in the build info,
// suffixed with "-dirty" for modified trees.
var Revision = sync.OnceValue(
	func() string {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return unknownRevision
		}

		var rev string

		var dirty bool

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}

		if rev == "" {
			return unknownRevision
		}

		if len(rev) > 7 {
			rev = rev[:7]
		}

		if dirty {
			rev += "-dirty"
		}

		return rev
	},
)

// VersionString returns the version line printed by the version flag.
func VersionString() string {
	return Name + " " + strings.TrimSpace(Version) + " (" + Revision() + ")"
}
