package bytebuf

import "github.com/pkg/errors"

// GrowthPolicy decides the next capacity of a Buffer whenever a write
// needs more room than the current allocation provides.
type GrowthPolicy uint32

// values for GrowthPolicy
const (
	// GrowthNone fixes the capacity; any write that needs growth fails.
	GrowthNone GrowthPolicy = 1 + iota

	// GrowthTight grows to exactly the minimum required capacity.
	GrowthTight

	// GrowthMult2x doubles the capacity, starting at 1, until sufficient.
	GrowthMult2x
)

// DefaultGrowthPolicy is the policy buffers are created with unless a
// caller picks another one.
const DefaultGrowthPolicy = GrowthMult2x

func (g GrowthPolicy) String() string {
	switch g {
	case GrowthNone:
		return "none"
	case GrowthTight:
		return "tight"
	case GrowthMult2x:
		return "mult2x"
	}
	return "unknown"
}

// ParseGrowthPolicy maps a policy name to its GrowthPolicy value.
func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch s {
	case "none":
		return GrowthNone, nil
	case "tight":
		return GrowthTight, nil
	case "mult2x":
		return GrowthMult2x, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown growth policy %q", s)
}

// NextCapacity computes the capacity a buffer should grow to so that at
// least required bytes fit, given its current capacity. It is a pure
// function so policies can be tested independently of any buffer.
func NextCapacity(policy GrowthPolicy, current, required int) (int, error) {
	switch policy {
	case GrowthNone:
		return 0, errors.Wrap(ErrCapacity, "buffer can't expand with 'none' growth policy")
	case GrowthTight:
		return required, nil
	case GrowthMult2x:
		next := current
		if next < 1 {
			next = 1
		}
		for next < required {
			next *= 2
		}
		return next, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown growth policy %d", uint32(policy))
}
