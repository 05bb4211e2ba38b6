// Package scanning finds icon references in source text and collects the
// icon names an application uses.
package scanning

import "regexp"

// ReferencePattern matches one icon reference: an opening md-icon tag (with
// any attributes), the icon name with optional surrounding whitespace or line
// breaks, and the closing tag. Groups: 1 opening tag, 2 name, 3 closing tag.
var ReferencePattern = regexp.MustCompile(`(<md-icon[^>]*>)\s*([a-z_]+)\s*(</md-icon\s*>)`)

// FindNames returns every icon name referenced in text, in order of
// appearance, duplicates included.
func FindNames(text string) []string {
	matches := ReferencePattern.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[2])
	}
	return names
}
