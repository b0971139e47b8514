package billy

import (
	"io"
	"testing"
)

// TestFile_ReadSeek verifies files opened for reading start at offset zero
// and support seeking and positional reads.
func TestFile_ReadSeek(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFile("data.bin", []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := fs.Open("data.bin")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer testCloser(t, f)

	file, ok := f.(*File)
	if !ok {
		t.Fatalf("Open() returned %T, want *File", f)
	}
	if file.Name() != "data.bin" {
		t.Errorf("Name() = %q, want %q", file.Name(), "data.bin")
	}

	buf := make([]byte, 3)
	if _, err := io.ReadFull(file, buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf) != "012" {
		t.Errorf("Read() = %q, want %q", buf, "012")
	}

	if _, err := file.Seek(7, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(rest) != "789" {
		t.Errorf("ReadAll() after Seek = %q, want %q", rest, "789")
	}

	at := make([]byte, 2)
	if _, err := file.ReadAt(at, 4); err != nil {
		t.Fatalf("ReadAt() error = %v", err)
	}
	if string(at) != "45" {
		t.Errorf("ReadAt() = %q, want %q", at, "45")
	}

	info, err := file.Stat()
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 10 {
		t.Errorf("Stat().Size() = %d, want 10", info.Size())
	}
}

// TestFile_EmptyIsReadable verifies a zero-byte file opens successfully.
func TestFile_EmptyIsReadable(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFile("empty", nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := fs.Open("empty")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer testCloser(t, f)

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("ReadAll() = %q, want empty", data)
	}
}

// TestFile_Write verifies files created through the provider are writable.
func TestFile_Write(t *testing.T) {
	fs := NewMemory()
	f, err := fs.Create("out.txt")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.Write([]byte("written")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := fs.ReadFile("out.txt")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "written" {
		t.Errorf("ReadFile() = %q, want %q", data, "written")
	}
}
