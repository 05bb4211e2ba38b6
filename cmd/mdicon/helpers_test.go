package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/config"
	"github.com/jonathan/md-icon-localize/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// inProject moves the test into an empty project directory.
func inProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// seedRegistry stores a codepoint document in the default cache directory.
func seedRegistry(t *testing.T, variant types.Variant, doc string) {
	t.Helper()
	writeSource(t, filepath.Join(cache.DefaultDir, cache.RegistryFile(variant)), doc)
}

// newFontsServer serves a registry and a subset stylesheet with its font,
// and points the MDICON_* URLs at it.
func newFontsServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/registry/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("add e145\nhome e88a\nsettings e8b8\n"))
	})
	mux.HandleFunc("/css2", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("@font-face { src: url(/s/font.woff2) format('woff2'); }"))
	})
	mux.HandleFunc("/s/font.woff2", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("wOF2"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	t.Setenv("MDICON_REGISTRY_URL", server.URL+"/registry")
	t.Setenv("MDICON_FONTS_URL", server.URL+"/css2")
	return server
}

// captureOutput redirects cmd's stdout and stderr into buffers.
func captureOutput(cmd *cobra.Command) (*bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return &out, &errOut
}

func defaultFlags() commonFlags {
	return commonFlags{configPath: config.DefaultFile}
}
