// Package render resolves parsed templates into terminal output.
//
// A [Renderer] walks the segments of a [lang.Template] in order:
//
//   - literal text is copied unchanged;
//   - "{$NAME}" is replaced with the value of NAME from the environment, or
//     nothing if NAME is unset;
//   - "{@name}" is replaced with a fact (see [WithFacts]) or the escape
//     sequence of a style from the style table;
//   - any other directive is run as a shell command line and replaced with
//     its standard output, minus one trailing newline.
//
// Commands and environment variables fail softly: a command that cannot be
// started, exits non-zero, or prints invalid UTF-8 renders as an empty
// string. Style names fail hard with [ErrUnknownStyle], since a misspelled
// style is a configuration error.
//
// # Styles
//
//	bold italic underline reset
//	color0 ... color255    256-color foreground (0-15: standard palette)
package render
