package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// Locker serializes mutating operations on a project record across
// processes. Operations within one process are already serialized by
// the single-threaded command flow.
type Locker interface {
	// Lock acquires the lock and returns a release function.
	Lock() (release func(), err error)
}

// FlockLocker guards the record with an advisory file lock placed
// beside it.
type FlockLocker struct {
	lockPath string
}

// NewFlockLocker creates a locker for the record at recordPath.
func NewFlockLocker(recordPath string) *FlockLocker {
	base := strings.TrimSuffix(filepath.Base(recordPath), filepath.Ext(recordPath))
	return &FlockLocker{
		lockPath: filepath.Join(filepath.Dir(recordPath), base+".lock"),
	}
}

func (l *FlockLocker) Lock() (func(), error) {
	fl := flock.New(l.lockPath)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire project lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("project is locked by another workbench process (%s)", l.lockPath)
	}

	return func() { _ = fl.Unlock() }, nil
}

// NoopLocker is used in tests and by hosts that own their own locking.
type NoopLocker struct{}

func (NoopLocker) Lock() (func(), error) {
	return func() {}, nil
}
