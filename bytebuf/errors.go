package bytebuf

import "github.com/pkg/errors"

// Error kinds returned by buffer and view operations. Concrete failures
// wrap one of these with a message describing the violated precondition,
// so callers can branch on the kind with errors.Is while still getting a
// useful description.
var (
	// ErrInvalidArgument is returned when a caller passes something
	// structurally unusable: a nil allocator, a negative size, or an
	// operation on a buffer whose contents were taken.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a subscript, subview, destination
	// offset or erase range lands outside the addressable bytes.
	ErrOutOfRange = errors.New("out of range")

	// ErrCapacity is returned when a write cannot fit: a view overflow,
	// or growth attempted under the 'none' growth policy.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrAllocation is returned when an allocator cannot satisfy a request.
	ErrAllocation = errors.New("allocation failed")
)
