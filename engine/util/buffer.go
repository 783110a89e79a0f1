package util

import (
	"sync"
	"sync/atomic"
)

// CheckedBuffer hands a value from one goroutine to another.
// A writer replaces the payload and raises the updated flag, the single reader
// polls the flag and takes the payload. Checking and clearing the flag happen
// under the same lock as reading the payload, so each update is consumed at most once
// and an update written between check and read is never lost.
type CheckedBuffer[T any] struct {
	updated atomic.Bool
	lock    sync.Mutex
	payload T
}

func NewCheckedBuffer[T any]() *CheckedBuffer[T] {
	return &CheckedBuffer[T]{}
}

// Set stores a new payload, overwriting any payload that has not been taken yet.
func (b *CheckedBuffer[T]) Set(value T) {
	b.lock.Lock()
	b.payload = value
	b.updated.Store(true)
	b.lock.Unlock()
}

// HasUpdate is a cheap check that does not take the lock.
func (b *CheckedBuffer[T]) HasUpdate() bool {
	return b.updated.Load()
}

// Take returns the pending payload and clears the flag.
// The second return value is false when there was nothing to take.
func (b *CheckedBuffer[T]) Take() (T, bool) {
	var zero T
	if !b.updated.Load() {
		return zero, false
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	if !b.updated.Load() {
		return zero, false
	}
	value := b.payload
	b.payload = zero
	b.updated.Store(false)
	return value, true
}
