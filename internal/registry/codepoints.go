// Package registry loads the Material Symbols codepoint registry, mapping
// icon names to hexadecimal codepoints for one style variant.
package registry

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// CodepointMap maps icon names to hexadecimal codepoint strings.
// It is never modified after construction and is safe for concurrent use.
type CodepointMap struct {
	entries map[string]string
}

// NewCodepointMap builds a map from explicit entries. The input is copied.
func NewCodepointMap(entries map[string]string) *CodepointMap {
	m := &CodepointMap{entries: make(map[string]string, len(entries))}
	for name, cp := range entries {
		m.entries[name] = cp
	}
	return m
}

// Parse reads a codepoint document: one "<name> <hex codepoint>" pair per
// line. Lines that are not exactly two whitespace-separated fields with a
// valid codepoint are skipped. A name defined twice keeps its last codepoint.
func Parse(doc string) *CodepointMap {
	m := &CodepointMap{entries: make(map[string]string)}
	for _, line := range strings.Split(doc, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		name, cp := fields[0], fields[1]
		if _, ok := ParseCodepoint(cp); !ok {
			continue
		}
		m.entries[name] = cp
	}
	return m
}

// ParseCodepoint converts a hexadecimal codepoint string to a rune.
func ParseCodepoint(hex string) (rune, bool) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

// Lookup returns the codepoint for name.
func (m *CodepointMap) Lookup(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	cp, ok := m.entries[name]
	return cp, ok
}

// Len returns the number of entries.
func (m *CodepointMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Resolve looks up every name in order. Codepoints of resolved names are
// returned in input order; unresolved names are returned separately.
func (m *CodepointMap) Resolve(names []string) (codepoints []string, missing []string) {
	codepoints = make([]string, 0, len(names))
	for _, name := range names {
		cp, ok := m.Lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		codepoints = append(codepoints, cp)
	}
	return codepoints, missing
}
