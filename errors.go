package id3

import (
	"fmt"

	binutil "github.com/simonhull/id3/internal/binary"
)

// Warning represents a non-fatal issue encountered while parsing a tag.
//
// Warnings indicate problems that do not prevent metadata extraction but
// may point at corrupted or unusual data: malformed frames, unsupported
// header fields, declared sizes the source cannot back. They are collected
// in Tag.Warnings; no recoverable condition surfaces as an error.
type Warning struct {
	// Stage where the warning occurred: "header", "frames", "v1".
	Stage string

	// Warning message.
	Message string

	// File offset where the issue occurred (0 if not applicable).
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

// OutOfBoundsError is returned when a read would leave the byte source.
// Re-exported from internal/binary to keep the public error surface in one
// place.
type OutOfBoundsError = binutil.OutOfBoundsError

// UnsupportedFormatError reports an ID3v2 header whose version or layout
// the library cannot read. It surfaces through Tag.Warnings; the v2 region
// is skipped and v1 trailers may still populate the tag.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return "unsupported format: " + e.Reason
	}
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedTagError reports tag structure that contradicts the byte
// source, e.g. a declared size larger than the file or a frame overflowing
// the region. It surfaces through Tag.Warnings.
type CorruptedTagError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedTagError) Error() string {
	msg := e.Reason
	if e.Offset > 0 {
		msg = fmt.Sprintf("corrupted tag at offset %d: %s", e.Offset, e.Reason)
	}
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

// StrictParsingError is returned by Open when strict parsing is enabled and
// any warning was collected.
type StrictParsingError struct {
	Path    string
	Warning Warning
}

func (e *StrictParsingError) Error() string {
	return fmt.Sprintf("%s: strict parsing failed: %s", e.Path, e.Warning)
}

// OversizedTagError is returned when a serialized tag would exceed
// MaxTagSize.
type OversizedTagError struct {
	Size int
}

func (e *OversizedTagError) Error() string {
	return fmt.Sprintf("serialized tag of %d bytes exceeds maximum of %d", e.Size, MaxTagSize)
}
