// Package buildcache implements the on-disk signature cache that lets the
// Orchestrator skip Transform+Emit for a declaration whose shape hasn't
// changed since the last run (spec.md §4.7). Unlike a single JSON blob, the
// cache is an append-only set of signature lines — readers memoize the file
// once per process, writers append under an advisory lock.
package buildcache

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rsicarelli/fakt/internal/filelock"
	"github.com/rsicarelli/fakt/internal/signature"
)

// SchemaVersion selects the cache file name (signatures.v<N>.txt). A bump
// here abandons the previous file entirely rather than attempting migration —
// every signature already embeds its own "v<N>:" prefix (signature.Version),
// so an old file is simply never consulted by a newer reader.
const SchemaVersion = signature.Version

const lockRetryWindow = 200 * time.Millisecond
const lockRetryInterval = 5 * time.Millisecond

// Cache is a lazily-loaded, process-local view of the on-disk signature set
// rooted at a single output directory. The zero value is not usable; use New.
type Cache struct {
	path string

	once    sync.Once
	loadErr error
	seen    map[string]struct{}

	mu sync.Mutex // serializes in-process appends to seen/file
}

// New returns a Cache bound to outputRoot's cache file
// (<outputRoot>/.fakt-cache/signatures.v<N>.txt). The file is not read until
// the first Contains or Record call.
func New(outputRoot string) *Cache {
	return &Cache{
		path: filepath.Join(outputRoot, ".fakt-cache", fmt.Sprintf("signatures.v%d.txt", SchemaVersion)),
	}
}

// Contains reports whether sig has already been recorded. The backing file is
// read at most once per Cache; a missing file is treated as an empty set, not
// an error — cache miss is always safe (spec.md §4.7).
func (c *Cache) Contains(sig string) bool {
	c.once.Do(c.load)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[sig]
	return ok
}

func (c *Cache) load() {
	c.seen = make(map[string]struct{})

	f, err := os.Open(c.path)
	if err != nil {
		// Absent file is an empty cache, not a load error.
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		// A corrupt line is any line that doesn't round-trip as a bare
		// signature token; since signatures never contain whitespace, a
		// line with embedded whitespace is treated as corrupt and skipped
		// rather than failing the whole load.
		if hasWhitespace(line) {
			c.loadErr = fmt.Errorf("buildcache: skipping corrupt line in %s: %q", c.path, line)
			continue
		}
		c.seen[line] = struct{}{}
	}
}

// LoadWarning returns a non-nil error describing the last corrupt line
// skipped while loading, if any. It exists purely for telemetry surfacing;
// callers are never required to check it.
func (c *Cache) LoadWarning() error {
	c.once.Do(c.load)
	return c.loadErr
}

// Record appends sig to the on-disk set under an exclusive advisory lock. If
// the lock cannot be acquired within the bounded retry window, Record falls
// back to recording in-process only (the in-memory seen-set is updated
// either way, so Contains stays correct for the remainder of this process;
// only persistence across processes is lost).
func (c *Cache) Record(sig string) error {
	c.once.Do(c.load)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[sig]; ok {
		return nil
	}
	c.seen[sig] = struct{}{}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("buildcache: creating cache directory: %w", err)
	}

	lk, locked, err := filelock.TryLockWithRetry(c.path+".lock", lockRetryWindow, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("buildcache: acquiring lock: %w", err)
	}
	if !locked {
		// In-process fallback: the signature is already in c.seen above, so
		// this process won't re-emit it; it just won't be visible to others.
		return nil
	}
	defer lk.Unlock()

	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("buildcache: opening cache file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(sig + "\n"); err != nil {
		return fmt.Errorf("buildcache: appending signature: %w", err)
	}
	return nil
}

func hasWhitespace(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\r' {
			return true
		}
	}
	return false
}
