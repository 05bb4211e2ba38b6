package scanning

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/md-icon-localize/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScan_DeduplicatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.ts", "html`<md-icon>settings</md-icon>`")
	b := writeFile(t, dir, "b.html", "<md-icon>delete</md-icon>\n<md-icon>settings</md-icon>")

	set, err := Scan(context.Background(), []string{a, b}, Options{})
	require.NoError(t, err)
	assert.Equal(t, types.IconNameSet{"delete", "settings"}, set)
}

func TestScan_OrderIndependent(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "one.js", "<md-icon>zoom_in</md-icon>"),
		writeFile(t, dir, "two.js", "<md-icon>add</md-icon><md-icon>home</md-icon>"),
		writeFile(t, dir, "three.js", "<md-icon>home</md-icon>"),
	}
	reversed := []string{files[2], files[1], files[0]}

	first, err := Scan(context.Background(), files, Options{Concurrency: 1})
	require.NoError(t, err)
	second, err := Scan(context.Background(), reversed, Options{Concurrency: 3})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, types.Equal(first, second))
}

func TestScan_AdditionalNames(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.ts", "<md-icon>home</md-icon>")

	set, err := Scan(context.Background(), []string{a}, Options{AdditionalNames: []string{"dark_mode", "home"}})
	require.NoError(t, err)
	assert.Equal(t, types.IconNameSet{"dark_mode", "home"}, set)
}

func TestScan_EmptyCorpus(t *testing.T) {
	set, err := Scan(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestScan_NoMatches(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.ts", "console.log('no icons here')")

	set, err := Scan(context.Background(), []string{a}, Options{})
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestScan_MissingFile(t *testing.T) {
	_, err := Scan(context.Background(), []string{filepath.Join(t.TempDir(), "missing.ts")}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read source file")
}
