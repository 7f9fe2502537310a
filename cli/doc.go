// Package cli contains the command line interface for yaf.
//
// # Usage
//
//	yaf [flags] [config]          render a template (default command)
//	yaf parse [-f FORMAT] [config] print the parsed segments
//	yaf styles                    list style names and facts
//	yaf init [--force] [config]   write the builtin template
//
// The config path defaults to $XDG_CONFIG_HOME/yaf.conf. If that file does
// not exist, the builtin template is rendered instead; -d prints it.
//
// # Settings
//
// Flag defaults are read from the first of these files that exist:
//
//	$XDG_CONFIG_HOME/yaf/settings.json
//	$XDG_CONFIG_HOME/yaf/settings.yaml
//	$XDG_CONFIG_HOME/yaf/settings.toml
//
// Keys are flag names with hyphens or underscores, or nested tables whose
// keys are joined with hyphens:
//
//	color = "always"
//	timeout = "2s"
//
//	[log]
//	level = "debug"
//
// Command-line flags override settings values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time: Set timestamp format (none, RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output (default when stderr is a terminal)
//
// # Profiling Options
//
// Profiling is only available in binaries built with the pprof tag. There,
// --pprof-mode selects a profile (allocs, block, clock, cpu, goroutine, heap,
// mem, mutex, thread, trace) and --pprof-dir sets the output directory,
// $XDG_CACHE_HOME/yaf/pprof by default:
//
//	go build -tags pprof -o yaf .
//	yaf --pprof-mode=cpu
package cli
