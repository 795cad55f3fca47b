package bytebuf

import (
	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"
)

// Allocator is the capability a Buffer uses for every allocation and
// deallocation during its life. Buffers never allocate directly, so
// memory-arena strategies stay pluggable.
type Allocator interface {
	// Allocate returns a block of at least size bytes, or an error
	// wrapping ErrAllocation when the request can't be satisfied.
	Allocate(size int) ([]byte, error)

	// Deallocate returns a block previously obtained from Allocate.
	Deallocate(block []byte)
}

// HeapAllocator satisfies allocations from the Go heap. Deallocate is a
// no-op; the garbage collector reclaims released blocks.
type HeapAllocator struct{}

// Allocate returns a zeroed block of exactly size bytes.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Wrap(ErrAllocation, "allocation size can't be negative")
	}
	return make([]byte, size), nil
}

// Deallocate does nothing; the block becomes garbage once unreferenced.
func (HeapAllocator) Deallocate([]byte) {}

var defaultAllocator Allocator = HeapAllocator{}

// DefaultAllocator returns the process-wide allocator used when a caller
// has nothing more specific. The default is obtained explicitly rather
// than substituted silently inside constructors.
func DefaultAllocator() Allocator { return defaultAllocator }

// SetDefaultAllocator replaces the process-wide default allocator.
func SetDefaultAllocator(alloc Allocator) error {
	if alloc == nil {
		return errors.Wrap(ErrInvalidArgument, "default allocator can't be nil")
	}
	defaultAllocator = alloc
	return nil
}

// maximum allocation size tracked by InstrumentedAllocator histograms,
// larger requests are clamped to this value when recorded
const maxTrackableAllocation = 1 << 30

// InstrumentedAllocator decorates another Allocator and records the size
// distribution of its allocations in an HDR histogram, which is useful
// for checking what a growth policy actually does under a workload.
type InstrumentedAllocator struct {
	inner  Allocator
	hist   *hdrhistogram.Histogram
	allocs int64
	frees  int64
}

// NewInstrumentedAllocator wraps inner with size-distribution recording.
func NewInstrumentedAllocator(inner Allocator) (*InstrumentedAllocator, error) {
	if inner == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "instrumented allocator can't wrap nil")
	}

	return &InstrumentedAllocator{
		inner: inner,
		hist:  hdrhistogram.New(1, maxTrackableAllocation, 3),
	}, nil
}

// Allocate delegates to the wrapped allocator and records the size.
func (a *InstrumentedAllocator) Allocate(size int) ([]byte, error) {
	block, err := a.inner.Allocate(size)
	if err != nil {
		return nil, err
	}

	a.allocs++
	recorded := int64(size)
	if recorded > maxTrackableAllocation {
		recorded = maxTrackableAllocation
	}
	if recorded > 0 {
		_ = a.hist.RecordValue(recorded)
	}

	return block, nil
}

// Deallocate delegates to the wrapped allocator.
func (a *InstrumentedAllocator) Deallocate(block []byte) {
	a.frees++
	a.inner.Deallocate(block)
}

// Allocations returns the number of successful allocations so far.
func (a *InstrumentedAllocator) Allocations() int64 { return a.allocs }

// Deallocations returns the number of deallocations so far.
func (a *InstrumentedAllocator) Deallocations() int64 { return a.frees }

// MaxAllocation returns the largest recorded allocation size.
func (a *InstrumentedAllocator) MaxAllocation() int64 { return a.hist.Max() }

// MeanAllocation returns the mean recorded allocation size.
func (a *InstrumentedAllocator) MeanAllocation() float64 { return a.hist.Mean() }

// AllocationAtQuantile returns the allocation size at quantile q in [0, 100].
func (a *InstrumentedAllocator) AllocationAtQuantile(q float64) int64 {
	return a.hist.ValueAtQuantile(q)
}
