package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/md-icon-localize/internal/pipeline"
	"github.com/jonathan/md-icon-localize/internal/subset"
	"github.com/jonathan/md-icon-localize/internal/transform"
	"github.com/jonathan/md-icon-localize/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintIconNames(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIconNames(
		types.NewIconNameSet("add", "delete", "settings"),
		types.NewIconNameSet("delete", "home", "settings"),
	)
	output := buf.String()

	assert.Contains(t, output, "ICON NAMES")
	assert.Contains(t, output, "Referenced: 3 (last build: 3)")
	assert.Contains(t, output, "Added:")
	assert.Contains(t, output, "• add")
	assert.Contains(t, output, "Removed:")
	assert.Contains(t, output, "• home")
}

func TestPrintIconNames_Truncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var names []string
	for i := 0; i < maxItemsToShow+3; i++ {
		names = append(names, fmt.Sprintf("icon_%s", strings.Repeat("a", i+1)))
	}
	p.PrintIconNames(types.NewIconNameSet(names...), nil)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintUnresolved(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUnresolved([]string{"setings", "hom"})
	output := buf.String()

	assert.Contains(t, output, "UNRESOLVED ICON NAMES")
	assert.Contains(t, output, "Found 2 unknown icon names")
	assert.Contains(t, output, "⚠ setings")
}

func TestPrintUnresolved_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUnresolved(nil)

	assert.Contains(t, buf.String(), "ALL ICON NAMES RESOLVED")
}

func TestPrintBuildResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBuildResult(&pipeline.Result{
		Outcome: pipeline.OutcomeBuilt,
		Names:   types.NewIconNameSet("add", "setings"),
		Missing: []string{"setings"},
		Assets: &subset.Assets{
			Font:       []byte("wOF2"),
			Family:     "Material Symbols Outlined",
			Codepoints: []string{"e145"},
		},
		Exported: true,
	}, "public")
	output := buf.String()

	assert.Contains(t, output, "FONT BUILD")
	assert.Contains(t, output, "built")
	assert.Contains(t, output, "Family:   Material Symbols Outlined")
	assert.Contains(t, output, "Glyphs:   1")
	assert.Contains(t, output, "Font:     4 bytes")
	assert.Contains(t, output, "Unknown:  setings")
	assert.Contains(t, output, "Output:   public")
}

func TestPrintBuildResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBuildResult(nil, "public")

	assert.Empty(t, buf.String())
}

func TestPrintTransformResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTransformResult(&transform.TreeResult{
		Files:      4,
		Rewritten:  2,
		Missing:    []string{"nope"},
		OutputRoot: "dist",
	})
	output := buf.String()

	assert.Contains(t, output, "TRANSFORM")
	assert.Contains(t, output, "Files written:   4")
	assert.Contains(t, output, "• nope")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTransformResult(&transform.TreeResult{
		OutputRoot: "/a/very/long/output/directory/that/should/be/truncated/to/fit",
	})
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.Contains(t, output, "...")
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTransformResult(&transform.TreeResult{
		OutputRoot: strings.Repeat("é", boxWidth),
	})
	output := buf.String()

	assert.True(t, utf8.ValidString(output), "no multi-byte rune is split")
	assert.Contains(t, output, "é...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "⚠⚠⚠⚠...", truncate(strings.Repeat("⚠", 20), 7))
}
