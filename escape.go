package shaderpack

import "strings"

var (
	newlineEscaper = strings.NewReplacer("\n", `\n`)
	crStripper     = strings.NewReplacer("\r", "")
	quoteEscaper   = strings.NewReplacer(`"`, `\"`)
)

// Escape turns text into the body of a C string literal. Newlines become \n escapes,
// carriage returns are dropped and double quotes are backslash-escaped, in that order.
func Escape(text string) string {
	text = newlineEscaper.Replace(text)
	text = crStripper.Replace(text)
	return quoteEscaper.Replace(text)
}
