package scanning

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the source file types searched for icon references.
func DefaultExtensions() []string {
	return []string{".js", ".ts", ".jsx", ".tsx", ".html"}
}

// FindSources walks each root and returns the files whose extension is in
// extensions, sorted and deduplicated. A root may also name a single file,
// which is included regardless of its extension.
func FindSources(roots []string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		wanted[ext] = true
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to access source path %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if wanted[strings.ToLower(filepath.Ext(path))] {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk source path %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// skipDir excludes hidden directories (including the cache) and node_modules.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}
