package handle

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for handle operations.
var (
	// ErrEmpty indicates the handle holds no resource.
	ErrEmpty = errors.New("handle: empty handle")

	// ErrReleased indicates the handle was already released.
	ErrReleased = errors.New("handle: handle already released")
)

// shared is the state common to every handle of one resource.
type shared[T any] struct {
	refs     atomic.Int64
	value    atomic.Pointer[T]
	releaser func(*T)
}

// Option configures a Handle at construction time.
type Option[T any] func(*shared[T])

// WithReleaser registers fn to run exactly once, with the resource, when the
// last handle is released. It is not called for empty handles.
func WithReleaser[T any](fn func(*T)) Option[T] {
	return func(s *shared[T]) { s.releaser = fn }
}

// Handle is one owner of a shared resource.
// The zero value is not usable; construct with New or Empty.
type Handle[T any] struct {
	state    *shared[T]
	released bool
}

// New takes ownership of v and returns the first handle to it (count 1).
// A nil v yields an empty handle.
func New[T any](v *T, opts ...Option[T]) *Handle[T] {
	s := &shared[T]{}
	for _, opt := range opts {
		opt(s)
	}
	s.value.Store(v)
	s.refs.Store(1)

	return &Handle[T]{state: s}
}

// Empty returns a handle that owns nothing. Clones of it share the same
// (empty) count, as any other handle would.
func Empty[T any]() *Handle[T] {
	return New[T](nil)
}

// Clone returns a new handle to the same resource and increments the count.
//
// Complexity: O(1).
func (h *Handle[T]) Clone() (*Handle[T], error) {
	if h.released {
		return nil, ErrReleased
	}
	h.state.refs.Add(1)

	return &Handle[T]{state: h.state}, nil
}

// Release gives up this handle's share. When it was the last share, the
// releaser runs and the resource is dropped.
// Returns ErrReleased if this handle was already released.
//
// Complexity: O(1) plus the releaser.
func (h *Handle[T]) Release() error {
	if h.released {
		return ErrReleased
	}
	h.released = true
	if h.state.refs.Add(-1) > 0 {
		return nil
	}

	v := h.state.value.Swap(nil)
	if v != nil && h.state.releaser != nil {
		h.state.releaser(v)
	}

	return nil
}

// Assign makes h share other's resource, releasing h's previous share first.
// Assigning a handle to one that already shares the same resource is a no-op.
// A released h may be assigned again; a released other returns ErrReleased.
func (h *Handle[T]) Assign(other *Handle[T]) error {
	if other.released {
		return ErrReleased
	}
	if h.state == other.state && !h.released {
		return nil
	}

	other.state.refs.Add(1)
	if !h.released {
		_ = h.Release()
	}
	h.state = other.state
	h.released = false

	return nil
}

// Get returns a copy of the resource value.
// Returns ErrEmpty for an empty handle, ErrReleased after Release.
func (h *Handle[T]) Get() (T, error) {
	var zero T
	if h.released {
		return zero, ErrReleased
	}
	v := h.state.value.Load()
	if v == nil {
		return zero, ErrEmpty
	}

	return *v, nil
}

// Raw returns the non-owning pointer to the resource, or nil when the handle
// is empty or released. The pointer must not outlive the last handle.
func (h *Handle[T]) Raw() *T {
	if h.released {
		return nil
	}

	return h.state.value.Load()
}

// Count reports how many live handles share this resource (0 once released).
func (h *Handle[T]) Count() int64 {
	if h.released {
		return 0
	}

	return h.state.refs.Load()
}

// Released reports whether Release has been called on this handle.
func (h *Handle[T]) Released() bool {
	return h.released
}
