// Package registry implements the descriptor taint registry: the two
// concurrent sets of file descriptors (DELAY_FDS, ERR_FDS) that decide
// whether a given fd is subject to fault injection.
package registry

import "sync"

// bucketCount is the number of hash buckets in a TaintSet. Descriptor
// numbers are small and dense in practice (the kernel reuses low
// numbers aggressively), so a small fixed table with chaining is enough;
// it never needs to grow to stay correct, only to stay fast.
const bucketCount = 64

// reentrantHash folds a file descriptor's bytes with XOR into a bucket
// index.
//
// This is deliberately not Go's builtin map hash, nor any hash that
// might reach for a keyed/seeded algorithm. The source history this
// library is grounded on moved off the Rust default hasher after hitting
// exactly this cycle on older Linux kernels:
//
//	default hash -> reads entropy source -> open() -> interceptor ->
//	lock acquisition -> default hash (deadlock)
//
// A taint set is consulted on every read/write/seek of a preloaded
// process, including calls made during libc/allocator startup before
// any entropy source is guaranteed initialized. The hash function used
// here must never perform an operation this library itself intercepts,
// so it is pinned to byte-XOR: no syscalls, no allocation, no fallback
// path that could recurse into open().
func reentrantHash(fd int32) uint32 {
	var h uint32
	v := uint32(fd)
	h ^= v & 0xff
	h ^= (v >> 8) & 0xff
	h ^= (v >> 16) & 0xff
	h ^= (v >> 24) & 0xff
	return h % bucketCount
}

// TaintSet is a concurrent set of file descriptors, reader/writer
// discipline: contains() acquires only the reader lock, insert()/
// remove() require the writer lock. Lock hold time is minimal and never
// spans a call into libc or the dynamic loader.
type TaintSet struct {
	mu      sync.RWMutex
	buckets [bucketCount][]int32
}

// NewTaintSet returns an empty TaintSet.
func NewTaintSet() *TaintSet {
	return &TaintSet{}
}

// Contains reports whether fd is a member. Hot path: reader lock only.
func (s *TaintSet) Contains(fd int) bool {
	fd32 := int32(fd)
	idx := reentrantHash(fd32)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.buckets[idx] {
		if v == fd32 {
			return true
		}
	}
	return false
}

// Insert adds fd to the set. Idempotent: inserting an already-present fd
// is a no-op.
func (s *TaintSet) Insert(fd int) {
	fd32 := int32(fd)
	idx := reentrantHash(fd32)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.buckets[idx] {
		if v == fd32 {
			return
		}
	}
	s.buckets[idx] = append(s.buckets[idx], fd32)
}

// Remove removes fd from the set, if present. Removing an absent fd
// (e.g. a duplicate close) is not an error.
func (s *TaintSet) Remove(fd int) {
	fd32 := int32(fd)
	idx := reentrantHash(fd32)

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.buckets[idx]
	for i, v := range bucket {
		if v == fd32 {
			bucket[i] = bucket[len(bucket)-1]
			s.buckets[idx] = bucket[:len(bucket)-1]
			return
		}
	}
}
