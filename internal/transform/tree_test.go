package transform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteTree(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	files := map[string]string{
		"index.html":           "<md-icon>settings</md-icon>",
		"components/button.ts": "html`<md-icon>delete</md-icon><md-icon>nope</md-icon>`",
		"components/plain.ts":  "export {}",
	}
	var paths []string
	for rel, content := range files {
		path := filepath.Join(src, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		paths = append(paths, path)
	}

	result, err := RewriteTree(context.Background(), paths, src, out, testCodepoints(), TreeOptions{Concurrency: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Files)
	assert.Equal(t, 2, result.Rewritten)
	assert.Equal(t, []string{"nope"}, result.Missing)

	html, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<md-icon>&#xe8b8;</md-icon>", string(html))

	button, err := os.ReadFile(filepath.Join(out, "components", "button.ts"))
	require.NoError(t, err)
	assert.Equal(t, "html`<md-icon>&#xe872;</md-icon><md-icon>&#xfffd;</md-icon>`", string(button))

	plain, err := os.ReadFile(filepath.Join(out, "components", "plain.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export {}", string(plain))

	original, err := os.ReadFile(filepath.Join(src, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<md-icon>settings</md-icon>", string(original), "sources are left untouched")
}

func TestRewriteTree_MissingFile(t *testing.T) {
	src := t.TempDir()
	_, err := RewriteTree(context.Background(), []string{filepath.Join(src, "gone.ts")}, src, t.TempDir(), testCodepoints(), TreeOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
