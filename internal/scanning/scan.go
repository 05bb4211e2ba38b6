package scanning

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/jonathan/md-icon-localize/internal/types"
	"golang.org/x/sync/errgroup"
)

// Options configures Scan.
type Options struct {
	// AdditionalNames are always included, for icons whose names are built at
	// runtime and never appear literally in markup.
	AdditionalNames []string
	// Concurrency bounds the number of files read at once (default: NumCPU).
	Concurrency int
	Verbose     bool
}

// ScanText returns the set of icon names referenced in a single text.
func ScanText(text string) types.IconNameSet {
	return types.NewIconNameSet(FindNames(text)...)
}

// Scan reads every file and returns the sorted set of referenced icon names,
// unioned with opts.AdditionalNames. An empty file list or a corpus without
// references yields an empty set.
func Scan(ctx context.Context, files []string, opts Options) (types.IconNameSet, error) {
	perFile := make([][]string, len(files))

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read source file %s: %w", path, err)
			}
			perFile[i] = FindNames(string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []string
	for _, names := range perFile {
		all = append(all, names...)
	}
	set := types.NewIconNameSet(all...).Union(opts.AdditionalNames...)

	if opts.Verbose {
		log.Printf("[SCAN] Scanned %d files, found %d distinct icon names", len(files), set.Len())
	}
	return set, nil
}
