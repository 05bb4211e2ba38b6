package types

import (
	"regexp"
	"slices"
)

// iconNamePattern is the character class every canonical icon name must satisfy.
var iconNamePattern = regexp.MustCompile(`^[a-z_]+$`)

// IsIconName reports whether s is a well-formed icon name.
func IsIconName(s string) bool {
	return iconNamePattern.MatchString(s)
}

// IconNameSet is a deduplicated, lexicographically sorted list of icon names.
// The zero value is an empty set.
type IconNameSet []string

// NewIconNameSet builds a set from arbitrary names, dropping duplicates and sorting.
func NewIconNameSet(names ...string) IconNameSet {
	seen := make(map[string]bool, len(names))
	set := make(IconNameSet, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		set = append(set, name)
	}
	slices.Sort(set)
	return set
}

// Union returns a new set containing the members of s and every name in others.
func (s IconNameSet) Union(others ...string) IconNameSet {
	all := make([]string, 0, len(s)+len(others))
	all = append(all, s...)
	all = append(all, others...)
	return NewIconNameSet(all...)
}

// Contains reports whether name is a member of s.
func (s IconNameSet) Contains(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}

// Len returns the cardinality of the set.
func (s IconNameSet) Len() int {
	return len(s)
}

// Equal reports whether a and b hold exactly the same members.
// Order is ignored; both arguments are treated as sets, so duplicates in
// either slice do not count twice.
func Equal(a, b []string) bool {
	ma := toSet(a)
	mb := toSet(b)
	if len(ma) != len(mb) {
		return false
	}
	for name := range ma {
		if !mb[name] {
			return false
		}
	}
	return true
}

func toSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
