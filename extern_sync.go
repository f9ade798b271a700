package bincode

import (
	"fmt"
	"sync"
)

// Mutex guards a value behind a sync.Mutex so it can be encoded while shared.
type Mutex[T any] struct {
	mu sync.Mutex
	v  T
}

// NewMutex creates a guard around v.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{v: v}
}

// Load returns a copy of the guarded value.
func (m *Mutex[T]) Load() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.v
}

// Store replaces the guarded value.
func (m *Mutex[T]) Store(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.v = v
}

// EncodeMutex acquires the guard, encodes the inner value with elem, and
// releases.
func EncodeMutex[T any](e *Encoder, m *Mutex[T], elem EncodeFn[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return elem(e, m.v)
}

// TryEncodeMutex is the non-blocking variant: if the guard is currently held
// it fails with *LockFailedError instead of waiting.
func TryEncodeMutex[T any](e *Encoder, m *Mutex[T], elem EncodeFn[T]) error {
	if !m.mu.TryLock() {
		return &LockFailedError{TypeName: fmt.Sprintf("%T", m)}
	}
	defer m.mu.Unlock()
	return elem(e, m.v)
}

// DecodeMutex decodes the inner value with elem and wraps it in a fresh,
// unlocked guard.
func DecodeMutex[T any](d *Decoder, elem DecodeFn[T]) (*Mutex[T], error) {
	v, err := elem(d)
	if err != nil {
		return nil, err
	}
	return NewMutex(v), nil
}

// RWMutex guards a value behind a sync.RWMutex. Encoding takes the read lock,
// so concurrent encodes of the same guard do not serialize each other.
type RWMutex[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewRWMutex creates a guard around v.
func NewRWMutex[T any](v T) *RWMutex[T] {
	return &RWMutex[T]{v: v}
}

// Load returns a copy of the guarded value.
func (m *RWMutex[T]) Load() T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.v
}

// Store replaces the guarded value.
func (m *RWMutex[T]) Store(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.v = v
}

// EncodeRWMutex read-locks the guard, encodes the inner value, and releases.
func EncodeRWMutex[T any](e *Encoder, m *RWMutex[T], elem EncodeFn[T]) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return elem(e, m.v)
}

// TryEncodeRWMutex is the non-blocking variant of EncodeRWMutex.
func TryEncodeRWMutex[T any](e *Encoder, m *RWMutex[T], elem EncodeFn[T]) error {
	if !m.mu.TryRLock() {
		return &LockFailedError{TypeName: fmt.Sprintf("%T", m)}
	}
	defer m.mu.RUnlock()
	return elem(e, m.v)
}

// DecodeRWMutex decodes the inner value and wraps it in a fresh guard.
func DecodeRWMutex[T any](d *Decoder, elem DecodeFn[T]) (*RWMutex[T], error) {
	v, err := elem(d)
	if err != nil {
		return nil, err
	}
	return NewRWMutex(v), nil
}
