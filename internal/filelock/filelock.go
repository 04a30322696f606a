// Package filelock provides advisory exclusive locking over a single file,
// used to serialize writers to the signature cache (spec.md §4.7, §5
// "Cache file writes are serialized by an advisory file lock").
package filelock

import (
	"time"

	"github.com/gofrs/flock"
)

// TryLockWithRetry attempts to acquire an exclusive advisory lock on path,
// polling at interval until deadline elapses. It returns a non-nil *flock.Flock
// (which the caller must Unlock) only on success; on timeout it returns nil,
// false, nil — the caller falls back to an in-process-only path per spec.md
// §4.7 ("failure to lock after a bounded retry window falls back to
// recording in-process only").
func TryLockWithRetry(path string, deadline, interval time.Duration) (*flock.Flock, bool, error) {
	lk := flock.New(path)

	start := time.Now()
	for {
		ok, err := lk.TryLock()
		if err != nil {
			return nil, false, err
		}
		if ok {
			return lk, true, nil
		}
		if time.Since(start) >= deadline {
			return nil, false, nil
		}
		time.Sleep(interval)
	}
}
