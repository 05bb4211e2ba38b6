package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/fetch"
	"github.com/jonathan/md-icon-localize/internal/registry"
	"github.com/jonathan/md-icon-localize/internal/scanning"
	"github.com/jonathan/md-icon-localize/internal/transform"
	"github.com/jonathan/md-icon-localize/internal/types"
)

// TransformOptions holds configuration for rewriting a source tree.
type TransformOptions struct {
	Source      string // file or directory
	OutDir      string
	Extensions  []string
	Variant     types.Variant
	Store       cache.Store
	RegistryURL string
	Verbose     bool
}

// RunTransform loads the codepoint registry and rewrites every icon
// reference under opts.Source into opts.OutDir.
func RunTransform(ctx context.Context, opts TransformOptions) (*transform.TreeResult, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("pipeline: cache store is required")
	}

	info, err := os.Stat(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to access source path %s: %w", opts.Source, err)
	}
	srcRoot := opts.Source
	if !info.IsDir() {
		srcRoot = filepath.Dir(opts.Source)
	}

	files, err := scanning.FindSources([]string{opts.Source}, opts.Extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	fetcher := fetch.NewCachedFetcher(opts.Store, &fetch.CachedFetcherConfig{Verbose: opts.Verbose})
	codepoints, err := registry.Load(ctx, opts.Variant, fetcher, registry.Options{
		BaseURL: opts.RegistryURL,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	return transform.RewriteTree(ctx, files, srcRoot, opts.OutDir, codepoints, transform.TreeOptions{
		Verbose: opts.Verbose,
	})
}
