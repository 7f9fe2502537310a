// Package lang parses the yaf template language.
//
// A template is plain text with directives embedded in curly braces. Each
// directive is replaced by computed content when the template is rendered:
//
//	{$NAME}     value of environment variable NAME (empty if unset)
//	{@name}     ANSI style code or built-in fact
//	{command}   standard output of a shell command line
//	{#command}  same as above; the '#' marker is optional
//
// # Grammar
//
// Informal EBNF:
//
//	Template  → (Text | Directive)* EOF
//	Directive → '{' Body '}'
//	Body      → '$' Name | '@' Name | ['#'] CommandLine
//	Escape    → '\{' | '\}' | '\\'
//
// Escapes are valid both inside and outside directives. Any other backslash
// is kept as written, so `{\$HOME}` is the command line `\$HOME` rather than
// an environment lookup.
//
// Directives do not nest. An unescaped '{' inside a directive, or an
// unescaped '}' outside one, is reported as [ErrUnexpectedBrace]. Input that
// ends inside a directive is reported as [ErrUnterminatedDirective].
//
// # Example
//
//	tmpl, err := lang.Parse(ctx, "{@bold}Hi {$USER}!")
//	if err != nil {
//	    return err
//	}
//
//	for seg := range tmpl.All() {
//	    fmt.Println(seg.Kind, seg.Body())
//	}
package lang
