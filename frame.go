package id3

import (
	"bytes"
	"fmt"
	"slices"

	binutil "github.com/simonhull/id3/internal/binary"
)

// Frame is a single typed ID3v2 frame.
//
// Frames are values: none of the variants carries parse state beyond the
// fields read from its body. A frame read from a file keeps the raw bytes it
// was parsed from; a frame that could not be parsed is null and answers
// neutral values from its accessors.
type Frame interface {
	// ID returns the canonical frame identifier. ID3v2.2 identifiers are
	// translated at parse time and never appear here.
	ID() FrameID

	// Kind returns the frame category.
	Kind() FrameKind

	// Version returns the ID3v2 major version the frame was read from
	// (2, 3 or 4). Frames constructed in memory report WriteVersion.
	Version() byte

	// Size returns the body size in bytes as captured on read.
	Size() int

	// Empty reports semantic emptiness, e.g. a text frame with no content.
	Empty() bool

	// Null reports whether the frame body could not be parsed. The raw
	// bytes are preserved; typed accessors return neutral values.
	Null() bool

	// Edited reports whether a setter has modified the frame since it was
	// read or created.
	Edited() bool

	// Bytes returns the raw frame bytes (header and body) as captured on
	// read, or nil for frames constructed in memory.
	Bytes() []byte

	// Encode serializes the frame as a complete ID3v2.4 frame: a 10-byte
	// header followed by the body. It returns nil for frames that must not
	// be written (null, empty, or flagged discard-if-unknown).
	Encode() []byte

	// Revert restores the frame's fields from its captured bytes,
	// discarding edits. Frames constructed in memory are unchanged.
	Revert()

	// Equal reports semantic equality: same identifier, same category,
	// same canonical payload. Two null frames with the same identifier
	// are equal.
	Equal(other Frame) bool

	// String returns a human-readable debug representation.
	String() string
}

// frameBase carries the state shared by every frame variant.
type frameBase struct {
	id      FrameID
	version byte
	raw     []byte
	null    bool
	edited  bool
}

func newFrameBase(id FrameID, version byte, raw []byte) frameBase {
	return frameBase{id: id, version: version, raw: raw}
}

func (f *frameBase) ID() FrameID   { return f.id }
func (f *frameBase) Version() byte { return f.version }
func (f *frameBase) Null() bool    { return f.null }
func (f *frameBase) Edited() bool  { return f.edited }

func (f *frameBase) Bytes() []byte { return f.raw }

// Size returns the captured body size.
func (f *frameBase) Size() int {
	if len(f.raw) < headerSize {
		return 0
	}
	return len(f.raw) - headerSize
}

// body returns the captured frame body.
func (f *frameBase) body() []byte {
	if len(f.raw) < headerSize {
		return nil
	}
	return f.raw[headerSize:]
}

// markEdited flags the frame as modified by a setter.
func (f *frameBase) markEdited() {
	f.edited = true
	f.null = false
}

// headerFlags returns the 2-byte frame flags as captured on read. They are
// preserved when the frame body is regenerated.
func (f *frameBase) headerFlags() uint16 {
	if len(f.raw) < headerSize {
		return 0
	}
	return uint16(f.raw[8])<<8 | uint16(f.raw[9])
}

// effectiveVersion is the version governing the frame's current content:
// edited frames carry canonical ID3v2.4 content regardless of their source.
func (f *frameBase) effectiveVersion() byte {
	if f.edited {
		return WriteVersion
	}
	return f.version
}

// unedited reports whether the captured v2.4 bytes can be re-emitted
// verbatim on write, preserving byte-identical round trips.
func (f *frameBase) unedited() bool {
	return !f.edited && !f.null && f.version == WriteVersion && len(f.raw) >= headerSize
}

// renderFrame assembles a complete ID3v2.4 frame: 4-byte identifier,
// 4-byte synchsafe size, 2-byte flags, then the body.
func renderFrame(id FrameID, flags uint16, body []byte) []byte {
	b := make([]byte, 0, headerSize+len(body))
	b = append(b, id.String()...)
	b = append(b, binutil.IntBytes(uint64(len(body)), 4, true)...)
	b = append(b, byte(flags>>8), byte(flags))
	return append(b, body...)
}

// UnknownFrame holds a frame whose identifier or body layout is not
// understood. The bytes are preserved verbatim and round-trip unchanged,
// except that a frame flagged discard-if-unknown is not written.
type UnknownFrame struct {
	frameBase
}

func newUnknownFrame(id FrameID, version byte, raw []byte) *UnknownFrame {
	f := &UnknownFrame{frameBase: newFrameBase(id, version, raw)}
	f.null = len(raw) < headerSize
	return f
}

// Kind returns KindUnknown.
func (f *UnknownFrame) Kind() FrameKind { return KindUnknown }

// Empty reports whether the frame has no body.
func (f *UnknownFrame) Empty() bool { return f.Size() == 0 }

// Revert is a no-op: unknown frames have no typed fields.
func (f *UnknownFrame) Revert() { f.edited = false }

// discardOnTagAlter reports the "discard if unknown" frame flag.
func (f *UnknownFrame) discardOnTagAlter() bool {
	return len(f.raw) >= headerSize && f.raw[8]&frameFlagDiscardUnknown != 0
}

// Encode re-emits the captured bytes. Frames read from an ID3v2.3 source
// have their plain size field re-encoded as synchsafe; v2.2 frames were
// already rebuilt with a synthetic v2.4 header at parse time. Null or
// empty frames, and frames flagged discard-if-unknown, are dropped.
func (f *UnknownFrame) Encode() []byte {
	if f.null || f.Empty() || f.discardOnTagAlter() {
		return nil
	}
	out := slices.Clone(f.raw)
	if f.version == 3 {
		copy(out[4:8], binutil.IntBytes(uint64(len(out)-headerSize), 4, true))
	}
	return out
}

// Equal reports whether other is an unknown frame with the same identifier
// and identical bytes.
func (f *UnknownFrame) Equal(other Frame) bool {
	o, ok := other.(*UnknownFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null && o.null {
		return true
	}
	return f.null == o.null && bytes.Equal(f.raw, o.raw)
}

func (f *UnknownFrame) String() string {
	return fmt.Sprintf("%s (%s): %d bytes", f.id, f.id.Description(), f.Size())
}
