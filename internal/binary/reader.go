// Package binary provides bounds-checked binary reading primitives and the
// integer codec used by ID3 tags (plain and synchsafe big-endian integers).
package binary

import (
	"fmt"
	"io"
)

// OutOfBoundsError is returned when a read would leave the byte source.
// Tags routinely declare sizes their file cannot back, so the bounds check
// runs before every read and names the field that tripped it.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	msg := fmt.Sprintf("%d bytes at offset %d exceed source size %d while reading %s",
		e.Length, e.Offset, e.Size, e.What)
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

// SafeReader reads fixed-length fields out of a bounded io.ReaderAt.
// Every read is validated against the source size before it is issued, so
// truncated or lying tags surface as a typed *OutOfBoundsError instead of
// a short read somewhere downstream.
type SafeReader struct {
	src  io.ReaderAt
	path string
	size int64
}

// NewSafeReader wraps src, whose total size must be known up front.
func NewSafeReader(src io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{src: src, size: size, path: path}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string { return sr.path }

// Size returns the total size of the underlying source in bytes.
func (sr *SafeReader) Size() int64 { return sr.size }

// Read returns the n bytes at off in a freshly allocated slice. what names
// the field being read for error messages. Reads outside the source bounds
// return a *OutOfBoundsError without touching the source.
func (sr *SafeReader) Read(off int64, n int, what string) ([]byte, error) {
	if off < 0 || n < 0 || off+int64(n) > sr.size {
		return nil, &OutOfBoundsError{Path: sr.path, What: what, Offset: off, Length: n, Size: sr.size}
	}

	b := make([]byte, n)
	read, err := sr.src.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: reading %s at offset %d: %w", sr.path, what, off, err)
	}
	if read < n {
		return nil, fmt.Errorf("%s: reading %s at offset %d: %w", sr.path, what, off, io.ErrUnexpectedEOF)
	}
	return b, nil
}
