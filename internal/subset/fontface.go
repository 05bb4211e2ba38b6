package subset

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// FontFace describes one @font-face rule of a subset stylesheet.
type FontFace struct {
	Family string
	Style  string
	Weight string
	Src    string
}

// ParseFontFaces returns the @font-face rules declared in stylesheet, in
// document order.
func ParseFontFaces(stylesheet string) ([]FontFace, error) {
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
	}

	var faces []FontFace
	for _, rule := range sheet.Rules {
		if rule.Kind != css.AtRule || !strings.EqualFold(rule.Name, "@font-face") {
			continue
		}
		var face FontFace
		for _, decl := range rule.Declarations {
			switch strings.ToLower(decl.Property) {
			case "font-family":
				face.Family = trimQuotes(strings.TrimSpace(decl.Value))
			case "font-style":
				face.Style = decl.Value
			case "font-weight":
				face.Weight = decl.Value
			case "src":
				face.Src = decl.Value
			}
		}
		faces = append(faces, face)
	}
	return faces, nil
}
