// Package bytebuf implements the buffer engine of the reio toolkit: a
// growable byte buffer with a configurable expansion policy and a
// non-owning view with bounds-checked editing primitives.
//
// bytes.Buffer only ever appends at the end and gives no control over
// capacity growth or over editing in the middle of the used range, which
// is why this package does not build on it
//
// the two types here split the problem instead: View is a window over
// memory someone else owns and can never grow, so its overwrite/insert
// fail (or truncate) when the window is full; Buffer owns its allocation,
// tracks used length separately from capacity, and grows through a
// pluggable Allocator according to a GrowthPolicy whenever a write needs
// more room
//
// neither type is safe for concurrent mutation; callers wrapping them in
// goroutines must provide their own exclusion
package bytebuf
