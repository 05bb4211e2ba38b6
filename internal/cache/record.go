package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/md-icon-localize/internal/schemas"
	"github.com/jonathan/md-icon-localize/internal/types"
)

// IconNamesFile holds the icon names used by the last subset build.
const IconNamesFile = "icon-names.json"

// ReadLastIconNames returns the icon names recorded by the previous subset build.
// A missing, unreadable or malformed record yields an empty set and no error:
// the record only ever saves work, so losing it forces a rebuild at worst.
func ReadLastIconNames(store Store) types.IconNameSet {
	data, err := store.Read(IconNamesFile)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[CACHE] Ignoring unreadable icon name record: %v", err)
		}
		return types.IconNameSet{}
	}

	if err := validateRecord(data); err != nil {
		log.Printf("[CACHE] Ignoring invalid icon name record: %v", err)
		return types.IconNameSet{}
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Printf("[CACHE] Ignoring undecodable icon name record: %v", err)
		return types.IconNameSet{}
	}
	return types.NewIconNameSet(names...)
}

// WriteIconNames replaces the recorded icon names.
func WriteIconNames(store Store, names types.IconNameSet) error {
	if names == nil {
		names = types.IconNameSet{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to marshal icon names: %w", err)
	}
	return store.Write(IconNamesFile, data)
}

// IsSubsetUpToDate reports whether a previously built subset can be reused:
// the current and cached name sets must hold the same members and the asset
// files must be present.
func IsSubsetUpToDate(current, cached types.IconNameSet, assetsPresent bool) bool {
	return types.Equal(current, cached) && assetsPresent
}

func validateRecord(data []byte) error {
	err := schemas.Validate(schemas.IconNames, data)
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("record does not match schema: %s", validationErr.Summary())
	}
	return err
}
