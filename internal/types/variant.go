// Package types provides type definitions for structured data used throughout the md-icon-localize system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Variant selects the Material Symbols style family used for a build.
type Variant string

const (
	// VariantOutlined is the outlined stroke family
	VariantOutlined Variant = "OUTLINED"
	// VariantRounded is the rounded stroke family
	VariantRounded Variant = "ROUNDED"
	// VariantSharp is the sharp stroke family
	VariantSharp Variant = "SHARP"
)

// DefaultVariant is used when no variant is configured.
const DefaultVariant = VariantOutlined

// Variants lists every supported variant in a stable order.
func Variants() []Variant {
	return []Variant{VariantOutlined, VariantRounded, VariantSharp}
}

// ParseVariant converts a user-supplied name (any case) into a Variant.
// An empty string yields DefaultVariant.
func ParseVariant(s string) (Variant, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultVariant, nil
	}
	v := Variant(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown variant %q (expected outlined, rounded or sharp)", s)
	}
	return v, nil
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantOutlined, VariantRounded, VariantSharp:
		return true
	}
	return false
}

// FamilyName returns the URL form of the font family, e.g. "Material+Symbols+Outlined".
func (v Variant) FamilyName() string {
	switch v {
	case VariantRounded:
		return "Material+Symbols+Rounded"
	case VariantSharp:
		return "Material+Symbols+Sharp"
	default:
		return "Material+Symbols+Outlined"
	}
}

func (v Variant) String() string {
	return string(v)
}
