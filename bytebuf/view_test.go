package bytebuf

import (
	"bytes"
	"errors"
	"testing"
)

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func TestViewAt(t *testing.T) {
	v := NewView([]byte{10, 20, 30})

	for i, expected := range []byte{10, 20, 30} {
		got, err := v.At(i)
		if err != nil {
			t.Error(err)
			return
		}
		if got != expected {
			t.Errorf("pos: %v, expected: %v, got %v", i, expected, got)
		}
	}

	if _, err := v.At(3); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an out of range error for subscript past the end")
	}
	if _, err := v.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an out of range error for a negative subscript")
	}
}

func TestViewSubview(t *testing.T) {
	src := sequence(10)
	v := NewView(src)

	cases := []struct {
		offset, size int
	}{
		{0, 10}, {0, 0}, {3, 4}, {10, 0}, {9, 1},
	}

	for _, c := range cases {
		sub, err := v.Subview(c.offset, c.size)
		if err != nil {
			t.Errorf("subview(%v, %v): %v", c.offset, c.size, err)
			continue
		}
		if !bytes.Equal(sub.Data(), src[c.offset:c.offset+c.size]) {
			t.Errorf("subview(%v, %v) has wrong contents: %v", c.offset, c.size, sub.Data())
		}
	}

	if _, err := v.Subview(11, 0); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an error for an offset past the end")
	}
	if _, err := v.Subview(4, 7); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an error for a size reaching past the end")
	}
}

func TestViewSubviewComposition(t *testing.T) {
	v := NewView(sequence(16))

	outer, err := v.Subview(2, 12)
	if err != nil {
		t.Error(err)
		return
	}

	inner, err := outer.Subview(3, 5)
	if err != nil {
		t.Error(err)
		return
	}

	direct, err := v.Subview(5, 5)
	if err != nil {
		t.Error(err)
		return
	}

	if !bytes.Equal(inner.Data(), direct.Data()) {
		t.Errorf("sub-sub-view %v differs from direct subview %v", inner.Data(), direct.Data())
	}
}

func TestViewFirstLast(t *testing.T) {
	src := sequence(8)
	v := NewView(src)

	first, err := v.First(3)
	if err != nil {
		t.Error(err)
		return
	}
	for i := 0; i < 3; i++ {
		if b, _ := first.At(i); b != src[i] {
			t.Errorf("first(3)[%v]: expected %v, got %v", i, src[i], b)
		}
	}

	last, err := v.Last(3)
	if err != nil {
		t.Error(err)
		return
	}
	for i := 0; i < 3; i++ {
		if b, _ := last.At(i); b != src[len(src)-3+i] {
			t.Errorf("last(3)[%v]: expected %v, got %v", i, src[len(src)-3+i], b)
		}
	}

	tail, err := v.LastFrom(5)
	if err != nil {
		t.Error(err)
		return
	}
	if !bytes.Equal(tail.Data(), src[5:]) {
		t.Errorf("last_from(5) has wrong contents: %v", tail.Data())
	}

	if _, err = v.First(9); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an error for first(9) on an 8 byte view")
	}
	if _, err = v.Last(9); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an error for last(9) on an 8 byte view")
	}
	if _, err = v.LastFrom(9); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an error for last_from(9) on an 8 byte view")
	}
}

func TestViewOverwrite(t *testing.T) {
	storage := sequence(10)
	v := NewView(storage)

	next, err := v.Overwrite([]byte{21, 22, 23}, 4)
	if err != nil {
		t.Error(err)
		return
	}
	if next != 7 {
		t.Errorf("expected the next write offset to be 7, got %v", next)
	}

	expected := []byte{1, 2, 3, 4, 21, 22, 23, 8, 9, 10}
	if !bytes.Equal(storage, expected) {
		t.Errorf("expected %v, got %v", expected, storage)
	}
}

func TestViewOverwriteOverflow(t *testing.T) {
	storage := sequence(4)
	v := NewView(storage)

	next, err := v.Overwrite([]byte{1, 2, 3}, 2)
	if !errors.Is(err, ErrCapacity) {
		t.Error("expected a capacity error for a write guaranteed to overflow")
	}
	if next != -1 {
		t.Error("expected write failure to return -1")
	}
	if !bytes.Equal(storage, sequence(4)) {
		t.Error("a failed overwrite must leave the view unmodified")
	}

	if _, err = v.Overwrite([]byte{1}, 5); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an out of range error for a destination past the end")
	}
	if _, err = v.Overwrite([]byte{1}, -1); !errors.Is(err, ErrOutOfRange) {
		t.Error("expected an out of range error for a negative destination")
	}
}

func TestViewOverwriteEmptySource(t *testing.T) {
	storage := sequence(6)
	v := NewView(storage)

	for dest := 0; dest <= v.Len(); dest++ {
		next, err := v.Overwrite(nil, dest)
		if err != nil {
			t.Errorf("dest %v: %v", dest, err)
			continue
		}
		if next != dest {
			t.Errorf("dest %v: expected next offset %v, got %v", dest, dest, next)
		}
		if !bytes.Equal(storage, sequence(6)) {
			t.Errorf("dest %v: empty overwrite changed contents to %v", dest, storage)
		}
	}
}

func TestViewInsert(t *testing.T) {
	storage := sequence(8)
	v := NewView(storage)

	next, err := v.Insert([]byte{41, 42}, 2)
	if err != nil {
		t.Error(err)
		return
	}
	if next != 4 {
		t.Errorf("expected the next write offset to be 4, got %v", next)
	}

	// the two trailing bytes shifted past the fixed window are dropped
	expected := []byte{1, 2, 41, 42, 3, 4, 5, 6}
	if !bytes.Equal(storage, expected) {
		t.Errorf("expected %v, got %v", expected, storage)
	}
}

func TestViewInsertOverflow(t *testing.T) {
	storage := sequence(4)
	v := NewView(storage)

	next, err := v.Insert([]byte{1, 2, 3}, 2)
	if !errors.Is(err, ErrCapacity) {
		t.Error("expected a capacity error for an insert guaranteed to overflow")
	}
	if next != -1 {
		t.Error("expected insert failure to return -1")
	}
	if !bytes.Equal(storage, sequence(4)) {
		t.Error("a failed insert must leave the view unmodified")
	}
}
