package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/qoobee/assetgen/core/logger"
)

// missingHash marks a file that did not exist when last checked.
const missingHash = ""

// ContentCache remembers the last seen content hash of each input file so
// watch mode can ignore writes that leave a file unchanged.
type ContentCache struct {
	hashes  map[string]string
	metrics *CacheMetrics
	mutex   sync.RWMutex
}

func NewContentCache() *ContentCache {
	return &ContentCache{
		hashes:  make(map[string]string),
		metrics: &CacheMetrics{},
	}
}

func hashFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// HasChanged records the current hash of filePath and reports whether it
// differs from the previous one. A file that stays absent is unchanged;
// any other read failure always counts as a change.
func (cc *ContentCache) HasChanged(filePath string) bool {
	hash, err := hashFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		hash, err = missingHash, nil
	}

	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	if err != nil {
		logger.Debug("Could not hash %s: %v", filePath, err)
		if _, ok := cc.hashes[filePath]; ok {
			delete(cc.hashes, filePath)
			cc.metrics.Invalidations++
		}
		cc.metrics.Misses++
		return true
	}

	if prev, ok := cc.hashes[filePath]; ok && prev == hash {
		cc.metrics.Hits++
		return false
	}

	cc.hashes[filePath] = hash
	cc.metrics.Misses++
	return true
}

func (cc *ContentCache) Invalidate(filePath string) {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	if _, ok := cc.hashes[filePath]; ok {
		delete(cc.hashes, filePath)
		cc.metrics.Invalidations++
	}
}

func (cc *ContentCache) Stats() CacheMetrics {
	cc.mutex.RLock()
	defer cc.mutex.RUnlock()

	stats := *cc.metrics
	stats.TotalEntries = len(cc.hashes)
	stats.CalculateHitRate()
	return stats
}

func (cc *ContentCache) LogStats() {
	stats := cc.Stats()
	logger.Debug("Content cache: %d entries, %d hits, %d misses, %d invalidations (%.1f%% hit rate)",
		stats.TotalEntries, stats.Hits, stats.Misses, stats.Invalidations, stats.HitRate)
}
