package bytebuf

import "github.com/pkg/errors"

// Buffer is a dynamically-sized contiguous byte sequence that manages
// its own allocation. It exposes the same editing operations as View,
// but overwrite and insert transparently grow the allocation when
// necessary, governed by the buffer's GrowthPolicy.
//
// Used length and total capacity are tracked separately: erase and
// ResizeToZero shrink the length, capacity is only ever released by
// Release or replaced by a growing reallocation.
//
// A Buffer has exclusive ownership of its allocation and must not be
// copied; Take is the explicit hand-off primitive.
type Buffer struct {
	store  []byte
	length int
	alloc  Allocator
	growth GrowthPolicy
}

// NewBuffer creates an empty buffer with no allocation.
func NewBuffer(alloc Allocator) (*Buffer, error) {
	if alloc == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "buffer can't have a nil allocator")
	}
	return &Buffer{alloc: alloc, growth: DefaultGrowthPolicy}, nil
}

// NewBufferCapacity creates a buffer that pre-allocates capacity bytes.
// The initial length is zero; the bytes stay unused until written.
func NewBufferCapacity(capacity int, alloc Allocator) (*Buffer, error) {
	if alloc == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "buffer can't have a nil allocator")
	}
	if capacity < 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "buffer capacity can't be negative")
	}

	b := &Buffer{alloc: alloc, growth: DefaultGrowthPolicy}
	if capacity > 0 {
		block, err := alloc.Allocate(capacity)
		if err != nil {
			return nil, errors.Wrap(err, "buffer failed to pre-allocate")
		}
		if len(block) < capacity {
			return nil, errors.Wrap(ErrAllocation, "allocator returned an undersized block")
		}
		b.store = block[:capacity]
	}

	return b, nil
}

// NewBufferFill creates a buffer of length bytes, every byte set to
// value. The full capacity counts as used.
func NewBufferFill(length int, value byte, alloc Allocator) (*Buffer, error) {
	b, err := NewBufferCapacity(length, alloc)
	if err != nil {
		return nil, err
	}

	for i := range b.store {
		b.store[i] = value
	}
	b.length = len(b.store)
	return b, nil
}

// NewBufferFrom creates a buffer sized to src's length with its contents
// copied in. The full capacity counts as used.
func NewBufferFrom(src View, alloc Allocator) (*Buffer, error) {
	b, err := NewBufferCapacity(src.Len(), alloc)
	if err != nil {
		return nil, err
	}

	copy(b.store, src.Data())
	b.length = len(b.store)
	return b, nil
}

// Data returns the used bytes without any checks.
func (b *Buffer) Data() []byte { return b.store[:b.length] }

// Len returns the number of used bytes.
func (b *Buffer) Len() int { return b.length }

// Cap returns the number of allocated bytes.
func (b *Buffer) Cap() int { return len(b.store) }

// Growth returns the buffer's expansion policy.
func (b *Buffer) Growth() GrowthPolicy { return b.growth }

// SetGrowth updates the buffer's expansion policy.
func (b *Buffer) SetGrowth(policy GrowthPolicy) { b.growth = policy }

// Allocator returns the allocator the buffer was created with, or nil
// for a taken-from buffer.
func (b *Buffer) Allocator() Allocator { return b.alloc }

// At returns the used byte at index, bounds-checked.
func (b *Buffer) At(index int) (byte, error) {
	if index < 0 || index >= b.length {
		return 0, errors.Wrap(ErrOutOfRange, "subscript out of buffer range")
	}
	return b.store[index], nil
}

// View returns a View over the used bytes. The View is invalidated by
// any growing overwrite or insert on this buffer.
func (b *Buffer) View() View { return NewView(b.Data()) }

// Subview returns a View over size used bytes starting at offset.
func (b *Buffer) Subview(offset, size int) (View, error) { return b.View().Subview(offset, size) }

// First returns a View over the first size used bytes.
func (b *Buffer) First(size int) (View, error) { return b.View().First(size) }

// Last returns a View over the last size used bytes.
func (b *Buffer) Last(size int) (View, error) { return b.View().Last(size) }

// LastFrom returns a View over all the used bytes past offset.
func (b *Buffer) LastFrom(offset int) (View, error) { return b.View().LastFrom(offset) }

// ResizeToZero sets the length to zero. Capacity and contents are
// untouched; this is a logical truncate.
func (b *Buffer) ResizeToZero() { b.length = 0 }

// ResizeToCapacity sets the length to the full capacity. Bytes beyond
// the previous length become used but hold whatever the allocation last
// contained.
func (b *Buffer) ResizeToCapacity() { b.length = len(b.store) }

// Overwrite copies src into the buffer starting at dest, growing the
// allocation first when the destination range exceeds the current
// capacity. dest has to lie within the used range at call time. The
// length extends to cover the highest byte written; a write fully within
// the old bounds leaves it unchanged. Source and destination must not
// overlap. Returns the offset past the last written byte, or -1 on
// failure, in which case the buffer is unmodified.
func (b *Buffer) Overwrite(src []byte, dest int) (int, error) {
	if err := b.live(); err != nil {
		return -1, err
	}
	if dest < 0 || dest > b.length {
		return -1, errors.Wrap(ErrOutOfRange, "destination offset out of buffer bounds")
	}

	oldLength := b.length

	if len(src) > len(b.store)-dest {
		newCapacity, err := NextCapacity(b.growth, len(b.store), dest+len(src))
		if err != nil {
			return -1, err
		}
		if err := b.realloc(newCapacity); err != nil {
			return -1, err
		}
	}

	if end := dest + len(src); end > oldLength {
		b.length = end
	}
	copy(b.store[dest:], src)
	return dest + len(src), nil
}

// Insert copies src into the buffer at dest after shifting the bytes
// from dest to the end of the used range rightwards, growing the
// allocation first when the remaining capacity beyond the used length
// can't hold the inserted bytes. Nothing is ever dropped; this is the
// always-succeeding growing variant, unlike View.Insert. Source and
// destination must not overlap. Returns the offset past the last
// inserted byte, or -1 on failure, in which case the buffer is
// unmodified.
func (b *Buffer) Insert(src []byte, dest int) (int, error) {
	if err := b.live(); err != nil {
		return -1, err
	}
	if dest < 0 || dest > b.length {
		return -1, errors.Wrap(ErrOutOfRange, "destination offset out of buffer bounds")
	}

	if len(src) > len(b.store)-b.length {
		newCapacity, err := NextCapacity(b.growth, len(b.store), b.length+len(src))
		if err != nil {
			return -1, err
		}
		if err := b.realloc(newCapacity); err != nil {
			return -1, err
		}
	}

	copy(b.store[dest+len(src):], b.store[dest:b.length])
	copy(b.store[dest:], src)
	b.length += len(src)
	return dest + len(src), nil
}

// Erase removes the used bytes in [first, last) by shifting the tail
// left to close the gap. Capacity is unchanged. Returns the offset just
// past the erased range, which after the shift equals first.
func (b *Buffer) Erase(first, last int) (int, error) {
	if err := b.live(); err != nil {
		return -1, err
	}
	if first > last {
		return -1, errors.Wrap(ErrInvalidArgument, "erase range is misordered")
	}
	if first < 0 || last > b.length {
		return -1, errors.Wrap(ErrOutOfRange, "erase range out of buffer bounds")
	}

	copy(b.store[first:], b.store[last:b.length])
	b.length -= last - first
	return first, nil
}

// Take transfers ownership of the contents to a freshly returned buffer
// and leaves the receiver in the inert empty state: nil storage, nil
// allocator, default growth. Every subsequent mutating operation on the
// receiver fails with ErrInvalidArgument, so use-after-move mistakes
// surface instead of corrupting memory.
func (b *Buffer) Take() *Buffer {
	taken := &Buffer{
		store:  b.store,
		length: b.length,
		alloc:  b.alloc,
		growth: b.growth,
	}

	b.store = nil
	b.length = 0
	b.alloc = nil
	b.growth = DefaultGrowthPolicy

	return taken
}

// Release returns the allocation to the allocator and resets the buffer
// to empty. The buffer keeps its allocator and stays usable.
func (b *Buffer) Release() {
	if b.store != nil && b.alloc != nil {
		b.alloc.Deallocate(b.store)
	}
	b.store = nil
	b.length = 0
}

func (b *Buffer) live() error {
	if b.alloc == nil {
		return errors.Wrap(ErrInvalidArgument, "buffer has no allocator (zero value or taken-from)")
	}
	return nil
}

// realloc is the single point of view invalidation: used bytes move into
// a fresh allocation and the old block goes back to the allocator.
func (b *Buffer) realloc(newCapacity int) error {
	if newCapacity <= len(b.store) {
		return nil
	}

	block, err := b.alloc.Allocate(newCapacity)
	if err != nil {
		return errors.Wrap(err, "buffer failed to reallocate")
	}
	if len(block) < newCapacity {
		return errors.Wrap(ErrAllocation, "allocator returned an undersized block")
	}

	copy(block, b.store[:b.length])
	if b.store != nil {
		b.alloc.Deallocate(b.store)
	}
	b.store = block[:newCapacity]
	return nil
}
