package bytebuf

import "github.com/pkg/errors"

// View is a non-owning fixed-size window over a contiguous byte range
// allocated somewhere else. It can be passed around by value without
// copying the underlying bytes, and it decouples editing logic from how
// the bytes are stored.
//
// A View must not outlive the range it refers to; in particular, any
// View derived from a Buffer becomes invalid once a growing write
// reallocates that buffer.
type View struct {
	data []byte
}

// NewView creates a View over data. The View aliases the slice, it does
// not copy it.
func NewView(data []byte) View {
	return View{data: data}
}

// Data returns the viewed bytes without any checks. It is the escape
// hatch for callers that accept the consequences of misuse.
func (v View) Data() []byte { return v.data }

// Len returns the number of viewed bytes.
func (v View) Len() int { return len(v.data) }

// At returns the byte at index, bounds-checked.
func (v View) At(index int) (byte, error) {
	if index < 0 || index >= len(v.data) {
		return 0, errors.Wrap(ErrOutOfRange, "subscript out of buffer range")
	}
	return v.data[index], nil
}

// Subview returns a View over size bytes starting at offset.
func (v View) Subview(offset, size int) (View, error) {
	if offset < 0 || offset > len(v.data) {
		return View{}, errors.Wrap(ErrOutOfRange, "subview offset out of buffer bounds")
	}
	if size < 0 || offset+size > len(v.data) {
		return View{}, errors.Wrap(ErrOutOfRange, "subview size bigger than buffer length")
	}
	return View{data: v.data[offset : offset+size]}, nil
}

// First returns a View over the first size bytes.
func (v View) First(size int) (View, error) {
	if size < 0 || size > len(v.data) {
		return View{}, errors.Wrap(ErrOutOfRange, "subview size bigger than buffer length")
	}
	return View{data: v.data[:size]}, nil
}

// Last returns a View over the last size bytes.
func (v View) Last(size int) (View, error) {
	if size < 0 || size > len(v.data) {
		return View{}, errors.Wrap(ErrOutOfRange, "subview size bigger than buffer length")
	}
	return View{data: v.data[len(v.data)-size:]}, nil
}

// LastFrom returns a View over all the bytes past offset.
func (v View) LastFrom(offset int) (View, error) {
	if offset < 0 || offset > len(v.data) {
		return View{}, errors.Wrap(ErrOutOfRange, "subview offset out of buffer bounds")
	}
	return View{data: v.data[offset:]}, nil
}

// Overwrite copies src into the view starting at dest. A View can never
// grow, so the destination range has to fit inside it. Source and
// destination must not overlap. Returns the offset past the last
// written byte, or -1 on failure.
func (v View) Overwrite(src []byte, dest int) (int, error) {
	if dest < 0 || dest > len(v.data) {
		return -1, errors.Wrap(ErrOutOfRange, "destination offset out of buffer bounds")
	}
	if len(src) > len(v.data)-dest {
		return -1, errors.Wrap(ErrCapacity, "overwrite would overflow the buffer")
	}

	copy(v.data[dest:], src)
	return dest + len(src), nil
}

// Insert copies src into the view at dest after shifting the existing
// bytes from dest rightwards inside the fixed window. Bytes shifted past
// the end of the view are discarded; this is the deliberate truncating
// variant that fixed-size memory streams rely on. The source still has
// to fit between dest and the end of the view. Source and destination
// must not overlap. Returns the offset past the last inserted byte, or
// -1 on failure.
func (v View) Insert(src []byte, dest int) (int, error) {
	if dest < 0 || dest > len(v.data) {
		return -1, errors.Wrap(ErrOutOfRange, "destination offset out of buffer bounds")
	}
	if len(src) > len(v.data)-dest {
		return -1, errors.Wrap(ErrCapacity, "insert would overflow the buffer")
	}

	copy(v.data[dest+len(src):], v.data[dest:])
	copy(v.data[dest:], src)
	return dest + len(src), nil
}
