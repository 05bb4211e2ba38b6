// Package subset builds a Material Symbols font subset containing only the
// glyphs an application references.
package subset

import (
	"net/url"
	"strings"

	"github.com/jonathan/md-icon-localize/internal/registry"
	"github.com/jonathan/md-icon-localize/internal/types"
)

// DefaultFontsURL is the stylesheet endpoint of the fonts service.
const DefaultFontsURL = "https://fonts.googleapis.com/css2"

// axes requests the full variable ranges so the subset keeps every style axis.
const axes = ":opsz,wght,FILL,GRAD@20..48,100..700,0..1,-50..200"

// RequestURL returns the stylesheet URL for a subset of family limited to the
// given hexadecimal codepoints. Invalid codepoints are ignored; without any
// valid codepoint the text parameter is omitted.
func RequestURL(baseURL string, variant types.Variant, codepoints []string) string {
	if baseURL == "" {
		baseURL = DefaultFontsURL
	}

	var sb strings.Builder
	sb.WriteString(baseURL)
	sb.WriteString("?family=")
	sb.WriteString(variant.FamilyName())
	sb.WriteString(axes)

	text := subsetText(codepoints)
	if text != "" {
		sb.WriteString("&text=")
		sb.WriteString(encodeURIComponent(text))
	}
	return sb.String()
}

// subsetText concatenates the character of every codepoint, skipping repeats.
func subsetText(codepoints []string) string {
	seen := make(map[rune]bool, len(codepoints))
	var sb strings.Builder
	for _, cp := range codepoints {
		r, ok := registry.ParseCodepoint(cp)
		if !ok || seen[r] {
			continue
		}
		seen[r] = true
		sb.WriteRune(r)
	}
	return sb.String()
}

// encodeURIComponent percent-encodes s the way browsers encode a query value,
// leaving unreserved marks unescaped and encoding spaces as %20.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, mark := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(mark), mark)
	}
	return escaped
}
