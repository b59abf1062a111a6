package slidepuzzle

import (
	"sync"
	"sync/atomic"
)

// RWLocker is the reader/writer lock collaborator the core consumes to
// serialize operations on a single Puzzle (spec.md §5, §6). Lookups take a
// shared lock (ReadBegin/ReadEnd); attaching a database, setting the stream
// or move handler, and solving take an exclusive lock (WriteBegin/WriteEnd).
//
// Destroy reports whether the lock could be torn down: false ("busy") means
// a holder is still active and the caller (Release) must leave the instance
// usable, mirroring the original core's EBUSY path out of rw_ac_destroy.
type RWLocker interface {
	ReadBegin()
	ReadEnd()
	WriteBegin()
	WriteEnd()
	Destroy() bool
}

// defaultRWLocker is a straightforward sync.RWMutex-backed RWLocker,
// generalized from core.Graph's dual muVert/muEdgeAdj RWMutex fields in the
// teacher library down to the single read/write discipline this core needs.
// An atomic holder count lets Destroy report busy without blocking.
type defaultRWLocker struct {
	mu      sync.RWMutex
	holders int32
}

// newRWLocker returns a ready-to-use RWLocker.
func newRWLocker() RWLocker {
	return &defaultRWLocker{}
}

func (l *defaultRWLocker) ReadBegin() {
	l.mu.RLock()
	atomic.AddInt32(&l.holders, 1)
}

func (l *defaultRWLocker) ReadEnd() {
	atomic.AddInt32(&l.holders, -1)
	l.mu.RUnlock()
}

func (l *defaultRWLocker) WriteBegin() {
	l.mu.Lock()
	atomic.AddInt32(&l.holders, 1)
}

func (l *defaultRWLocker) WriteEnd() {
	atomic.AddInt32(&l.holders, -1)
	l.mu.Unlock()
}

// Destroy reports false (busy) if a holder is active at the instant of the
// call. It never blocks.
func (l *defaultRWLocker) Destroy() bool {
	return atomic.LoadInt32(&l.holders) == 0
}
