package transform

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/jonathan/md-icon-localize/internal/registry"
	"golang.org/x/sync/errgroup"
)

// TreeOptions configures RewriteTree.
type TreeOptions struct {
	Concurrency int // files processed at once (default: NumCPU)
	Verbose     bool
}

// TreeResult summarizes a RewriteTree run.
type TreeResult struct {
	Files      int      // files written
	Rewritten  int      // files that contained at least one reference
	Missing    []string // unresolved names across all files, sorted
	OutputRoot string
}

// RewriteTree rewrites each file under srcRoot and writes the result to the
// same relative path under outRoot. Files are independent and processed
// concurrently; codepoints is only read.
func RewriteTree(ctx context.Context, files []string, srcRoot, outRoot string, codepoints *registry.CodepointMap, opts TreeOptions) (*TreeResult, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	var (
		mu        sync.Mutex
		rewritten int
		missing   = make(map[string]bool)
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rel, err := filepath.Rel(srcRoot, path)
			if err != nil {
				return fmt.Errorf("failed to resolve %s relative to %s: %w", path, srcRoot, err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			text := string(data)
			out, fileMissing := Rewrite(text, codepoints)

			dest := filepath.Join(outRoot, rel)
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", dest, err)
			}
			if err := os.WriteFile(dest, []byte(out), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", dest, err)
			}

			if len(fileMissing) > 0 {
				log.Printf("[WARN] %s: no codepoint for %v", rel, fileMissing)
			}
			if opts.Verbose && out != text {
				log.Printf("[TRANSFORM] Rewrote %s", rel)
			}

			mu.Lock()
			defer mu.Unlock()
			if out != text {
				rewritten++
			}
			for _, name := range fileMissing {
				missing[name] = true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &TreeResult{
		Files:      len(files),
		Rewritten:  rewritten,
		Missing:    make([]string, 0, len(missing)),
		OutputRoot: outRoot,
	}
	for name := range missing {
		result.Missing = append(result.Missing, name)
	}
	sort.Strings(result.Missing)
	return result, nil
}
