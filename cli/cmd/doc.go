// Package cmd implements the yaf subcommands: render, parse, styles and
// init.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default template configuration file.
	ConfigIdentifier = "config"
)
