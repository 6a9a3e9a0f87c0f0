package shaderpack

import "strings"

const versionToken = "#version"

// StripVersions trims text and deletes every #version line except one starting at
// offset 0. Each deleted span runs from the token to the next newline; the newline
// itself is kept.
func StripVersions(text string) string {
	text = strings.TrimSpace(text)

	// Searching from offset 1 keeps a leading directive out of reach.
	var b strings.Builder
	pos := 0
	search := 1
	for search < len(text) {
		idx := strings.Index(text[search:], versionToken)
		if idx < 0 {
			break
		}
		start := search + idx
		end := lineEnd(text, start)
		b.WriteString(text[pos:start])
		pos = end
		search = end
	}
	b.WriteString(text[pos:])
	return b.String()
}
