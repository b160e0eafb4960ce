// Package secure provides memory-hygiene utilities for handling secret
// material. Split uses it to hold a copy of the freshly sampled secret's
// bytes; Combine does not use it.
//
//nolint:revive // Internal package name is intentional
package secure

import (
	"runtime"
	"sync"
)

// Bytes is a wrapper for sensitive byte slices that provides secure memory
// handling with mlock and explicit zeroing.
type Bytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// New creates a new Bytes buffer of the given size.
// The memory is locked if the system supports it.
func New(size int) *Bytes {
	data := make([]byte, size)

	b := &Bytes{
		data: data,
	}

	// Try to lock memory - don't fail if not possible
	b.locked = mlock(data)

	// Set finalizer to ensure memory is cleared even if Destroy isn't called
	runtime.SetFinalizer(b, func(s *Bytes) {
		s.Destroy()
	})

	return b
}

// FromSlice creates a Bytes buffer from an existing slice.
// The data is copied into secure memory; the caller should zero the
// original slice with ZeroBytes once it is no longer needed.
func FromSlice(data []byte) *Bytes {
	b := New(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying byte slice.
// Returns nil if the buffer has been destroyed.
func (b *Bytes) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// IsLocked returns whether the memory is locked (mlocked).
func (b *Bytes) IsLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Destroy zeros the memory and unlocks it. Safe to call multiple times.
func (b *Bytes) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}

	for i := range b.data {
		b.data[i] = 0
	}

	if b.locked {
		munlock(b.data)
		b.locked = false
	}

	b.data = nil
	runtime.SetFinalizer(b, nil)
}

// Len returns the length of the data.
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return 0
	}
	return len(b.data)
}

// ZeroBytes overwrites data with zeros in place, for one-off slices that
// are not wrapped in a Bytes buffer.
func ZeroBytes(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
