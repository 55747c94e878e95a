// Package handle provides Handle[T], a shared-ownership wrapper over a single
// resource with an atomic reference count.
//
// What
//
//   - New(v) takes ownership of *v and starts the count at 1.
//   - Clone() hands out another handle to the same resource (count+1).
//   - Release() gives up one handle (count-1). When the count reaches zero the
//     optional releaser registered with WithReleaser runs exactly once and the
//     resource pointer is dropped.
//   - Assign(other) is reassignment: the receiver releases its share and then
//     shares other's resource.
//   - Get() dereferences; Raw() returns a non-owning *T.
//
// Every Handle value is one owner. Copying the Handle struct itself is not a
// clone; always go through Clone so the count stays exact.
//
// Errors
//
//   - ErrEmpty:    the handle was created with Empty (or New(nil)) and holds nothing.
//   - ErrReleased: the handle was already released; it may not be used again.
//
// Concurrency
//
//	The shared count is an atomic.Int64, so handles to one resource may be
//	cloned and released from different goroutines. The resource itself is not
//	synchronized; callers guard it as they would any shared value.
package handle
