package subset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/fetch"
	"github.com/jonathan/md-icon-localize/internal/registry"
	"github.com/jonathan/md-icon-localize/internal/types"
)

// ErrNoCodepoints is returned when none of the requested names resolves, so
// there is nothing to subset.
var ErrNoCodepoints = errors.New("no icon name resolved to a codepoint")

// Options configures a Builder.
type Options struct {
	FontsURL string         // stylesheet endpoint, DefaultFontsURL when empty
	HTTP     *fetch.Options // request options, browser-like when nil
	Verbose  bool
}

// Builder downloads subset assets and stores them in a cache store.
type Builder struct {
	store    cache.Store
	fontsURL string
	http     *fetch.Options
	fonts    *fetch.CachedFetcher
	verbose  bool
}

// NewBuilder creates a Builder writing into store.
func NewBuilder(store cache.Store, opts Options) *Builder {
	httpOpts := opts.HTTP
	if httpOpts == nil {
		httpOpts = fetch.BrowserOptions()
	}
	return &Builder{
		store:    store,
		fontsURL: opts.FontsURL,
		http:     httpOpts,
		fonts: fetch.NewCachedFetcher(store, &fetch.CachedFetcherConfig{
			Options: httpOpts,
			Refresh: true,
			Verbose: opts.Verbose,
		}),
		verbose: opts.Verbose,
	}
}

// Assets is the result of one subset build.
type Assets struct {
	Font       []byte
	Stylesheet string
	RequestURL string
	FontURL    string
	Family     string // font-family of the first @font-face rule
	Codepoints []string
	Missing    []string // names without a codepoint, left out of the subset
}

// Build resolves names against reg, requests the matching subset stylesheet,
// downloads the font it references and stores both in the cache. Names that
// do not resolve are reported in Assets.Missing and skipped.
func (b *Builder) Build(ctx context.Context, names types.IconNameSet, variant types.Variant, reg *registry.CodepointMap) (*Assets, error) {
	codepoints, missing := reg.Resolve(names)
	if len(missing) > 0 {
		log.Printf("[WARN] No codepoint for icon names: %v", missing)
	}
	if len(codepoints) == 0 {
		return nil, ErrNoCodepoints
	}

	// Anything left from an earlier subset no longer matches the name set.
	if err := cache.InvalidateAssets(b.store); err != nil {
		log.Printf("[CACHE] Failed to invalidate previous subset: %v", err)
	}

	cssURL := RequestURL(b.fontsURL, variant, codepoints)
	log.Printf("[SUBSET] Downloading stylesheet for %d glyphs...", len(codepoints))
	if b.verbose {
		log.Printf("[SUBSET] Stylesheet URL: %s", cssURL)
	}
	cssResult, err := fetch.URL(ctx, cssURL, b.http)
	if err != nil {
		return nil, fmt.Errorf("failed to download subset stylesheet: %w", err)
	}

	css, fontURL, ok := LocalizeStylesheet(cssResult.Text())
	if !ok {
		return nil, &ContractError{URL: cssURL, Message: "no woff2 src declaration found"}
	}
	fontURL = resolveReference(cssURL, fontURL)

	family := ""
	if faces, err := ParseFontFaces(cssResult.Text()); err != nil {
		log.Printf("[SUBSET] Could not read @font-face rules: %v", err)
	} else if len(faces) > 0 {
		family = faces[0].Family
		if b.verbose {
			log.Printf("[SUBSET] %d @font-face rules, family %q weight %q", len(faces), family, faces[0].Weight)
		}
	}

	log.Printf("[SUBSET] Downloading font file...")
	fontResult, err := b.fonts.Fetch(ctx, cache.FontFile, fontURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download subset font: %w", err)
	}

	// Written last: a present stylesheet implies the font download finished.
	if err := b.store.Write(cache.StylesheetFile, []byte(css)); err != nil {
		log.Printf("[CACHE] Failed to persist %s: %v", cache.StylesheetFile, err)
	}

	if b.verbose {
		log.Printf("[SUBSET] Font: %d bytes, stylesheet: %d bytes", len(fontResult.Body), len(css))
	}

	return &Assets{
		Font:       fontResult.Body,
		Stylesheet: css,
		RequestURL: cssURL,
		FontURL:    fontURL,
		Family:     family,
		Codepoints: codepoints,
		Missing:    missing,
	}, nil
}

// WriteTo writes the font and stylesheet into destDir under their cache names.
func (a *Assets) WriteTo(destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", destDir, err)
	}
	if err := os.WriteFile(filepath.Join(destDir, cache.FontFile), a.Font, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cache.FontFile, err)
	}
	if err := os.WriteFile(filepath.Join(destDir, cache.StylesheetFile), []byte(a.Stylesheet), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cache.StylesheetFile, err)
	}
	return nil
}

// resolveReference makes a relative font location absolute against the
// stylesheet URL. Unparseable input is returned unchanged.
func resolveReference(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
