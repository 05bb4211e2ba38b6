package registry

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/fetch"
	"github.com/jonathan/md-icon-localize/internal/types"
)

// DefaultBaseURL is where the variable-font codepoint documents are published.
const DefaultBaseURL = "https://raw.githubusercontent.com/google/material-design-icons/master/variablefont"

// axesSuffix is the URL-encoded "[FILL,GRAD,opsz,wght].codepoints" file suffix.
const axesSuffix = "%5BFILL%2CGRAD%2Copsz%2Cwght%5D.codepoints"

// DocumentURL returns the location of the codepoint document for variant.
func DocumentURL(baseURL string, variant types.Variant) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	family := strings.ReplaceAll(variant.FamilyName(), "+", "")
	return strings.TrimSuffix(baseURL, "/") + "/" + family + axesSuffix
}

// Options configures Load.
type Options struct {
	BaseURL string
	Verbose bool
}

// Load returns the codepoint map for variant. A document already in the
// fetcher's store is parsed as is; otherwise it is downloaded, stored
// verbatim, then parsed.
func Load(ctx context.Context, variant types.Variant, fetcher *fetch.CachedFetcher, opts Options) (*CodepointMap, error) {
	docURL := DocumentURL(opts.BaseURL, variant)

	result, err := fetcher.Fetch(ctx, cache.RegistryFile(variant), docURL)
	if err != nil {
		return nil, &UnavailableError{Variant: variant, URL: docURL, Cause: err}
	}

	m := Parse(result.Text())
	if opts.Verbose {
		source := "remote"
		if result.FromCache {
			source = "cache"
		}
		log.Printf("[REGISTRY] Loaded %d codepoints for %s from %s", m.Len(), variant, source)
	}
	return m, nil
}
