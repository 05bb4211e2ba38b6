// Package pipeline provides the high-level orchestration of a font build:
// scan sources, compare against the build cache, build a fresh subset when
// needed, and copy the assets to the output directory.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/fetch"
	"github.com/jonathan/md-icon-localize/internal/registry"
	"github.com/jonathan/md-icon-localize/internal/scanning"
	"github.com/jonathan/md-icon-localize/internal/subset"
	"github.com/jonathan/md-icon-localize/internal/types"
)

// Step names reported through ProgressEvent.
const (
	StepScan     = "scan"
	StepDiff     = "diff"
	StepRegistry = "registry"
	StepSubset   = "subset"
	StepExport   = "export"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Outcome describes how a build finished.
type Outcome string

const (
	// OutcomeEmpty means no icon is referenced; no font was produced.
	OutcomeEmpty Outcome = "empty"
	// OutcomeUpToDate means the cached subset was reused without network access.
	OutcomeUpToDate Outcome = "up_to_date"
	// OutcomeBuilt means a new subset was downloaded.
	OutcomeBuilt Outcome = "built"
	// OutcomeUnresolved means icons are referenced but none has a codepoint.
	OutcomeUnresolved Outcome = "unresolved"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Sources         []string // files or directories to scan
	Extensions      []string
	AdditionalNames []string
	OutDir          string
	Variant         types.Variant
	Store           cache.Store
	RegistryURL     string
	FontsURL        string
	Verbose         bool
	Out             io.Writer // step output, os.Stdout when nil
	OnProgress      ProgressCallback
}

// Result reports what a build did.
type Result struct {
	Outcome  Outcome
	Names    types.IconNameSet // names found by this build
	Previous types.IconNameSet // names recorded by the last build
	Missing  []string          // names without a codepoint
	Assets   *subset.Assets    // set when a subset was downloaded
	Exported bool              // assets reached OutDir
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// RunPipeline runs one build session. Stages run strictly in sequence.
// Only a missing registry or a failed subset download is fatal; cache
// bookkeeping failures are logged and ignored.
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Store == nil {
		return nil, errors.New("pipeline: cache store is required")
	}
	if !opts.Variant.Valid() {
		return nil, fmt.Errorf("pipeline: invalid variant %q", opts.Variant)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	_, _ = fmt.Fprintf(out, "Step 1/4: Scanning sources for icon references...\n")
	names, err := ScanSources(ctx, opts.Sources, opts.Extensions, opts.AdditionalNames, opts.Verbose)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, StepScan, fmt.Sprintf("Found %d icon names", names.Len()), names)

	result := &Result{Names: names}

	_, _ = fmt.Fprintf(out, "Step 2/4: Comparing with the last build...\n")
	previous := cache.ReadLastIconNames(opts.Store)
	result.Previous = previous
	changed := !types.Equal(names, previous)

	if names.Len() == 0 {
		persistNames(opts.Store, names)
		invalidateAssets(opts.Store)
		_, _ = fmt.Fprintf(out, "No icon references found; skipping font build.\n")
		emitProgress(&opts, StepDiff, "No icons referenced", nil)
		result.Outcome = OutcomeEmpty
		return result, nil
	}

	if cache.IsSubsetUpToDate(names, previous, cache.AssetsPresent(opts.Store)) {
		_, _ = fmt.Fprintf(out, "Icon set unchanged; using cached font files.\n")
		emitProgress(&opts, StepDiff, "Cached subset is up to date", nil)
		result.Outcome = OutcomeUpToDate
		result.Exported = exportCached(opts.Store, opts.OutDir)
		emitProgress(&opts, StepExport, "Copied cached font files", opts.OutDir)
		return result, nil
	}

	// The old subset goes before the new record is written: from here on a
	// failure (registry, unresolved names, download) must not leave assets
	// that the record would claim match the new names.
	invalidateAssets(opts.Store)
	if changed {
		persistNames(opts.Store, names)
	}
	emitProgress(&opts, StepDiff, "Icon set changed; building new subset", nil)

	_, _ = fmt.Fprintf(out, "Step 3/4: Loading %s codepoint registry...\n", opts.Variant)
	fetcher := fetch.NewCachedFetcher(opts.Store, &fetch.CachedFetcherConfig{Verbose: opts.Verbose})
	codepoints, err := registry.Load(ctx, opts.Variant, fetcher, registry.Options{
		BaseURL: opts.RegistryURL,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, StepRegistry, fmt.Sprintf("Loaded %d codepoints", codepoints.Len()), nil)

	_, _ = fmt.Fprintf(out, "Step 4/4: Building font subset for %d icons...\n", names.Len())
	builder := subset.NewBuilder(opts.Store, subset.Options{
		FontsURL: opts.FontsURL,
		Verbose:  opts.Verbose,
	})
	assets, err := builder.Build(ctx, names, opts.Variant, codepoints)
	if errors.Is(err, subset.ErrNoCodepoints) {
		_, result.Missing = codepoints.Resolve(names)
		log.Printf("[WARN] None of the %d icon names has a codepoint; no font produced", names.Len())
		result.Outcome = OutcomeUnresolved
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("subset build failed: %w", err)
	}
	result.Outcome = OutcomeBuilt
	result.Assets = assets
	result.Missing = assets.Missing
	emitProgress(&opts, StepSubset, fmt.Sprintf("Downloaded subset with %d glyphs", len(assets.Codepoints)), assets.Missing)

	if err := assets.WriteTo(opts.OutDir); err != nil {
		log.Printf("[CACHE] Failed to copy font files to %s: %v", opts.OutDir, err)
	} else {
		result.Exported = true
		emitProgress(&opts, StepExport, "Copied font files", opts.OutDir)
	}

	return result, nil
}

// ScanSources discovers source files under roots and returns the icon names
// they reference, plus the additional names.
func ScanSources(ctx context.Context, roots, extensions, additional []string, verbose bool) (types.IconNameSet, error) {
	files, err := scanning.FindSources(roots, extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	if verbose {
		log.Printf("[SCAN] %d source files under %v", len(files), roots)
	}
	return scanning.Scan(ctx, files, scanning.Options{
		AdditionalNames: additional,
		Verbose:         verbose,
	})
}

func persistNames(store cache.Store, names types.IconNameSet) {
	if err := cache.WriteIconNames(store, names); err != nil {
		log.Printf("[CACHE] Failed to record icon names: %v", err)
	}
}

func invalidateAssets(store cache.Store) {
	if err := cache.InvalidateAssets(store); err != nil {
		log.Printf("[CACHE] Failed to remove previous font files: %v", err)
	}
}

func exportCached(store cache.Store, outDir string) bool {
	if err := cache.Export(store, outDir, cache.AssetFiles()...); err != nil {
		log.Printf("[CACHE] Failed to copy cached font files to %s: %v", outDir, err)
		return false
	}
	return true
}
