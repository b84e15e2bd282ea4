package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/arthur-debert/buildplan/pkg/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of digests kept by NewCache callers
// that have no better estimate.
const DefaultCacheSize = 4096

// Digest returns the hex SHA256 digest of data
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FileDigest reads path through fsys and returns its content digest
func FileDigest(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Digest(data), nil
}

// Cache memoizes file digests. Entries are keyed by path, size and
// modification time so an edited file is hashed again.
type Cache struct {
	entries *lru.Cache[string, string]
}

// NewCache creates a digest cache holding at most size entries
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// FileDigest returns the digest of path, hashing it only on a cache miss
func (c *Cache) FileDigest(fsys types.FS, path string) (string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
	if digest, ok := c.entries.Get(key); ok {
		return digest, nil
	}

	digest, err := FileDigest(fsys, path)
	if err != nil {
		return "", err
	}
	c.entries.Add(key, digest)
	return digest, nil
}

// Len returns the number of cached digests
func (c *Cache) Len() int {
	return c.entries.Len()
}
