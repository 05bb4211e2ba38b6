package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/md-icon-localize/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTransform(t *testing.T) {
	inProject(t)
	seedRegistry(t, types.VariantSharp, "home e88a\n")
	writeSource(t, filepath.Join("src", "views", "nav.html"), "<md-icon slot=\"icon\">\n  home\n</md-icon><md-icon>nope</md-icon>")

	transformFlags = defaultFlags()
	out, errOut := captureOutput(transformCmd)

	require.NoError(t, runTransform(transformCmd, []string{"src", "dist", "sharp"}))
	assert.Contains(t, out.String(), "Rewrote 1 of 1 files into dist")
	assert.Contains(t, errOut.String(), "nope")

	data, err := os.ReadFile(filepath.Join("dist", "views", "nav.html"))
	require.NoError(t, err)
	assert.Equal(t, "<md-icon slot=\"icon\">&#xe88a;</md-icon><md-icon>&#xfffd;</md-icon>", string(data))
}

func TestRunTransform_MissingSource(t *testing.T) {
	inProject(t)
	seedRegistry(t, types.VariantOutlined, "home e88a\n")

	transformFlags = defaultFlags()
	captureOutput(transformCmd)

	err := runTransform(transformCmd, []string{"src", "dist"})
	require.Error(t, err)
}
