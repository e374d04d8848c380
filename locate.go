package restitch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Locate returns the paths of all archive files below root, at any depth,
// sorted by [NaturalCompare] over the textual path so multi-part sets are
// returned in numeric part order. Archives with equal ordering keys keep
// their traversal order.
//
// A missing or non-directory root yields an empty result without error,
// absence of input is not a failure at this layer. A directory that cannot
// be read is a failure: a partial listing could silently skip archives.
func Locate(root string, cfg *Config) ([]string, error) {
	cfg = ensureConfig(cfg)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read source root: %w", err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	// iterative walk with an explicit work list to bound stack depth on
	// deeply nested trees
	var found []string
	pending := []string{root}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				pending = append(pending, path)
				continue
			}
			if hasArchiveExtension(entry.Name()) {
				cfg.Logger().Debug("found archive", "path", path)
				found = append(found, path)
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return NaturalCompare(found[i], found[j]) < 0
	})

	cfg.Logger().Info("archive discovery finished", "root", root, "archives", len(found))
	return found, nil
}
