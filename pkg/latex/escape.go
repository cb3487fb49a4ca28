package latex

import "strings"

var textReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
)

var urlReplacer = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`#`, `\#`,
	`{`, `\{`,
	`}`, `\}`,
)

// Escape makes s safe to use as LaTeX body text.
func Escape(s string) string {
	return textReplacer.Replace(s)
}

// EscapeURL makes s safe inside \url and \href arguments.
func EscapeURL(s string) string {
	return urlReplacer.Replace(s)
}
