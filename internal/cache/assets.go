package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/md-icon-localize/internal/types"
)

const (
	// FontFile is the cached subset font binary.
	FontFile = "material-symbols.woff2"
	// StylesheetFile is the cached stylesheet pointing at FontFile.
	StylesheetFile = "material-symbols.css"
)

// RegistryFile returns the entry name of the cached codepoint document for a variant.
func RegistryFile(variant types.Variant) string {
	return variant.String() + ".codepoints"
}

// AssetFiles lists the entries that make up one built subset.
func AssetFiles() []string {
	return []string{FontFile, StylesheetFile}
}

// AssetsPresent reports whether both subset files are in the store.
func AssetsPresent(store Store) bool {
	for _, name := range AssetFiles() {
		if !store.Exists(name) {
			return false
		}
	}
	return true
}

// InvalidateAssets removes the subset files so a partially completed download
// can never look like a usable subset.
func InvalidateAssets(store Store) error {
	var errs []error
	for _, name := range AssetFiles() {
		if err := store.Remove(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Export copies the named entries from the store into destDir. The store keeps
// its copies. Every entry is attempted; failures are joined into the result.
func Export(store Store, destDir string, names ...string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", destDir, err)
	}

	var errs []error
	for _, name := range names {
		data, err := store.Read(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.WriteFile(filepath.Join(destDir, name), data, 0644); err != nil {
			errs = append(errs, fmt.Errorf("failed to copy %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
