// pkg/maintenance/cache.go

package maintenance

import (
	"os"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultCacheDir is where pacstall (which rpk wraps) keeps downloaded .deb
// archives.
const DefaultCacheDir = "/var/cache/pacstall"

// PruneCache removes cached .deb archives from dir and returns how many were
// deleted. A missing cache directory is not an error; there is simply nothing
// to clean.
func PruneCache(log *zap.Logger, dir string) (int, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		log.Debug("No cache directory found, nothing to clean", zap.String("dir", dir))
		return 0, nil
	}
	if err != nil {
		return 0, cerr.Wrapf(err, "failed to stat cache directory %s", dir)
	}
	if !info.IsDir() {
		return 0, cerr.Newf("cache path %s is not a directory", dir)
	}

	debs, err := filepath.Glob(filepath.Join(dir, "*.deb"))
	if err != nil {
		return 0, cerr.Wrap(err, "failed to list cached archives")
	}

	removed := 0
	for _, deb := range debs {
		if err := os.Remove(deb); err != nil {
			return removed, cerr.Wrapf(err, "failed to remove %s", deb)
		}
		removed++
	}

	log.Info("Pruned package cache",
		zap.String("dir", dir),
		zap.Int("removed", removed))
	return removed, nil
}
