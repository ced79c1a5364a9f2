package store

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFileLock_BasicAcquireRelease(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "tokens.json")

	lock, err := acquireFileLock(testFile)
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}

	lockPath := testFile + ".lock"
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		t.Errorf("Lock file was not created")
	}

	if err := lock.release(); err != nil {
		t.Errorf("Failed to release lock: %v", err)
	}

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Errorf("Lock file was not removed after release")
	}
}

func TestFileLock_MutualExclusion(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "tokens.json")

	const goroutines = 4
	const iterations = 3

	var (
		holders atomic.Int32
		done    atomic.Int32
		wg      sync.WaitGroup
	)

	wg.Add(goroutines)
	for i := range goroutines {
		go func(id int) {
			defer wg.Done()

			for j := range iterations {
				lock, err := acquireFileLock(testFile)
				if err != nil {
					t.Errorf("goroutine %d iteration %d: failed to acquire lock: %v", id, j, err)
					return
				}

				if n := holders.Add(1); n != 1 {
					t.Errorf("lock held by %d goroutines at once", n)
				}
				time.Sleep(5 * time.Millisecond)
				holders.Add(-1)
				done.Add(1)

				if err := lock.release(); err != nil {
					t.Errorf("goroutine %d iteration %d: failed to release lock: %v", id, j, err)
					return
				}
			}
		}(i)
	}

	wg.Wait()

	if got := done.Load(); got != goroutines*iterations {
		t.Errorf("expected %d successful operations, got %d", goroutines*iterations, got)
	}
}

func TestFileLock_StaleLockIsRemoved(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "tokens.json")
	lockPath := testFile + ".lock"

	if err := os.WriteFile(lockPath, []byte("12345"), 0o600); err != nil {
		t.Fatalf("failed to create lock file: %v", err)
	}
	old := time.Now().Add(-2 * lockStaleAfter)
	if err := os.Chtimes(lockPath, old, old); err != nil {
		t.Fatalf("failed to age lock file: %v", err)
	}

	lock, err := acquireFileLock(testFile)
	if err != nil {
		t.Fatalf("expected stale lock to be taken over, got: %v", err)
	}
	_ = lock.release()
}
