// Package transform rewrites icon references in source text into numeric
// character references, so the rendered glyph no longer depends on ligatures.
package transform

import (
	"strings"

	"github.com/jonathan/md-icon-localize/internal/registry"
	"github.com/jonathan/md-icon-localize/internal/scanning"
)

// MissingCodepoint is written for names the registry does not know. U+FFFD
// renders as the replacement glyph, which makes the typo visible on the page.
const MissingCodepoint = "fffd"

// Rewrite replaces every icon reference in text with a numeric character
// reference to its codepoint, keeping the surrounding tags. Names without a
// codepoint get MissingCodepoint and are returned, deduplicated, in order of
// first appearance. Rewrite is safe for concurrent use and leaves its own
// output unchanged.
func Rewrite(text string, codepoints *registry.CodepointMap) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	out := scanning.ReferencePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := scanning.ReferencePattern.FindStringSubmatch(match)
		opening, name, closing := groups[1], groups[2], groups[3]

		cp, ok := codepoints.Lookup(name)
		if !ok {
			cp = MissingCodepoint
			if !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
		}
		return Entity(opening, cp, closing)
	})
	return out, missing
}

// Entity formats a rewritten reference.
func Entity(opening, codepoint, closing string) string {
	var sb strings.Builder
	sb.Grow(len(opening) + len(codepoint) + len(closing) + 4)
	sb.WriteString(opening)
	sb.WriteString("&#x")
	sb.WriteString(codepoint)
	sb.WriteString(";")
	sb.WriteString(closing)
	return sb.String()
}
