package reio

import (
	"bytes"
	"io"
	"os"
	"path"
	"testing"
)

func TestMemoryMappedStreamWrite(t *testing.T) {
	loc := path.Join(t.TempDir(), "mapped.bin")

	s, err := NewMemoryMappedStream(loc, 32)
	if err != nil {
		t.Fatal(err)
	}

	if s.Length() != 32 {
		t.Errorf("expected length 32, got %v", s.Length())
	}

	payload := sequence(16)
	n, err := s.Write(payload)
	if err != nil {
		t.Error(err)
		return
	}
	if n != 16 || s.Position() != 16 {
		t.Errorf("expected 16 bytes written at position 16, got %v at %v", n, s.Position())
	}

	if err = s.Flush(); err != nil {
		t.Error(err)
		return
	}

	// the write is visible through the backing file
	got, err := os.ReadFile(loc)
	if err != nil {
		t.Error(err)
		return
	}
	if !bytes.Equal(got[:16], payload) {
		t.Errorf("expected %v in the backing file, got %v", payload, got[:16])
	}

	if err = s.Close(); err != nil {
		t.Error(err)
		return
	}
	if _, err = os.Stat(loc); err != nil {
		t.Error("Close must keep the backing file around")
	}
}

func TestMemoryMappedStreamTruncatesAtCapacity(t *testing.T) {
	loc := path.Join(t.TempDir(), "truncated.bin")

	s, err := NewMemoryMappedStream(loc, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Unmap(true)

	n, err := s.Write(sequence(12))
	if n != 8 {
		t.Errorf("expected 8 bytes written into an 8 byte mapping, got %v", n)
	}
	if err != io.ErrShortWrite {
		t.Errorf("expected io.ErrShortWrite, got %v", err)
	}

	n, _ = s.Write([]byte{1})
	if n != 0 {
		t.Errorf("expected a full mapping to write 0 bytes, got %v", n)
	}
}

func TestMemoryMappedStreamSeek(t *testing.T) {
	loc := path.Join(t.TempDir(), "seeked.bin")

	s, err := NewMemoryMappedStream(loc, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Unmap(true)

	if _, err = s.Seek(4, io.SeekStart); err != nil {
		t.Error(err)
		return
	}
	if err = s.WriteByte(0x7F); err != nil {
		t.Error(err)
		return
	}

	if b, _ := s.View().At(4); b != 0x7F {
		t.Errorf("expected byte 0x7F at offset 4, got %v", b)
	}
}

func TestMemoryMappedStreamReplacesExisting(t *testing.T) {
	loc := path.Join(t.TempDir(), "existing.bin")
	if err := os.WriteFile(loc, []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewMemoryMappedStream(loc, 4)
	if err != nil {
		t.Fatal(err)
	}

	if b, _ := s.View().At(0); b != 0 {
		t.Error("a fresh mapping must start zeroed")
	}

	if err = s.Unmap(true); err != nil {
		t.Error(err)
		return
	}
	if _, err = os.Stat(loc); !os.IsNotExist(err) {
		t.Error("Unmap(true) must remove the backing file")
	}
}

func TestMemoryMappedStreamBadSize(t *testing.T) {
	if _, err := NewMemoryMappedStream(path.Join(t.TempDir(), "bad.bin"), 0); err == nil {
		t.Error("expected an error for a zero-size mapping")
	}
}
