package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// DocCache keeps design briefs memory-mapped for the lifetime of a build or
// watch session. Briefs are re-read on every rebuild in watch mode, and
// mapping keeps repeat access cheap while letting the OS manage residency.
// If mmap fails for a file (exotic filesystems, zero-length files), the
// cache falls back to a plain read and remembers the bytes instead.
//
// Safe for concurrent use: parallel reads share an RWMutex, loads take the
// write lock.
type DocCache struct {
	mu     sync.RWMutex
	mapped map[string]mmap.MMap
	plain  map[string][]byte
	logger *slog.Logger

	// maxFiles bounds the number of cached documents so a runaway glob
	// cannot exhaust file descriptors.
	maxFiles int
}

// DefaultMaxCachedDocs bounds the cache; a workspace rarely holds more than
// a handful of briefs.
const DefaultMaxCachedDocs = 1024

// NewDocCache creates a cache. maxFiles <= 0 means DefaultMaxCachedDocs.
func NewDocCache(maxFiles int, logger *slog.Logger) *DocCache {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxCachedDocs
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DocCache{
		mapped:   make(map[string]mmap.MMap),
		plain:    make(map[string][]byte),
		logger:   logger,
		maxFiles: maxFiles,
	}
}

// Get returns the contents of path, mapping it on first access. The
// returned bytes are valid until Invalidate(path) or Close; callers that
// hold data across either must copy.
func (c *DocCache) Get(path string) ([]byte, error) {
	c.mu.RLock()
	if m, ok := c.mapped[path]; ok {
		c.mu.RUnlock()
		return m, nil
	}
	if b, ok := c.plain[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have loaded it while we swapped locks.
	if m, ok := c.mapped[path]; ok {
		return m, nil
	}
	if b, ok := c.plain[path]; ok {
		return b, nil
	}

	if len(c.mapped)+len(c.plain) >= c.maxFiles {
		return nil, fmt.Errorf("document cache limit reached (%d files)", c.maxFiles)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// Fallback path; zero-length files in particular cannot be mapped.
		b, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("mmap failed (%v) and read fallback failed: %w", err, readErr)
		}
		c.logger.Debug("mmap failed, using read fallback", "path", path, "error", err)
		c.plain[path] = b
		return b, nil
	}

	c.mapped[path] = m
	return m, nil
}

// Invalidate drops a single document, unmapping it if needed. Watch mode
// calls this when a brief changes on disk.
func (c *DocCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.mapped[path]; ok {
		if err := m.Unmap(); err != nil {
			c.logger.Warn("failed to unmap document", "path", path, "error", err)
		}
		delete(c.mapped, path)
	}
	delete(c.plain, path)
}

// Size returns the number of cached documents.
func (c *DocCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.mapped) + len(c.plain)
}

// Close unmaps everything. The cache is reusable afterwards; subsequent
// Gets reload from disk.
func (c *DocCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for path, m := range c.mapped {
		if err := m.Unmap(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to unmap %s: %w", path, err)
		}
	}
	c.mapped = make(map[string]mmap.MMap)
	c.plain = make(map[string][]byte)
	return firstErr
}
