// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// The package offers configurable time formatting, caller information,
// colorized output, and output formats that are applied at logger creation
// time using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Warn("using builtin config", slog.String("path", path))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Warn], [Error], ...) write through
// a default logger on standard error, reconfigured with [Config].
//
// # Supported Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn], and [LevelError].
// Messages below the configured level are discarded. The default level is
// [LevelWarn].
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON]. With [WithPretty] enabled, both
// formats are colorized for a terminal.
package log
