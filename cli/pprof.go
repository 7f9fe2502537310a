//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/yaf/log"
	"github.com/ardnew/yaf/pkg"
	"github.com/ardnew/yaf/profile"
)

// pprofConfig selects a runtime profile captured for the whole run.
type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModes}" help:"Capture a runtime profile (${pprofModes})." short:"p"`
	Dir  string `default:"${pprofDir}"                       help:"Directory receiving the profile."            type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModes": strings.Join(profile.Modes(), ","),
		"pprofDir":   filepath.Join(pkg.CacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (pprof)"}
}

func (f pprofConfig) attr() slog.Attr {
	return slog.Group(profile.Tag,
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)
}

// start begins the configured profile and returns the function that
// flushes it. Without a mode both are no-ops.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	session := profile.Profiler{Mode: f.Mode, Path: f.Dir, Quiet: true}.Start()

	if f.Mode != "" {
		log.DebugContext(ctx, "profiling started", f.attr())
	}

	return func() {
		session.Stop()

		if f.Mode != "" {
			log.DebugContext(ctx, "profile written", f.attr())
		}
	}
}
