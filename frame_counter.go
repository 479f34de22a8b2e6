package id3

import (
	"fmt"
	"slices"

	binutil "github.com/simonhull/id3/internal/binary"
	"github.com/simonhull/id3/internal/encoding"
)

// playCountWidth returns the byte width needed to store count: at least
// four bytes, growing beyond that only when the value requires it.
func playCountWidth(count uint64) int {
	width := 4
	for width < 8 && count > binutil.MaxInt(width, false) {
		width++
	}
	return width
}

// PlayCountFrame is a play counter (PCNT): an unsigned counter stored
// big-endian in at least four bytes.
type PlayCountFrame struct {
	frameBase
	count uint64
}

func newPlayCountFrame(id FrameID, version byte, raw []byte) *PlayCountFrame {
	f := &PlayCountFrame{frameBase: newFrameBase(id, version, raw)}
	f.read()
	return f
}

// NewPlayCountFrame creates a play counter frame.
func NewPlayCountFrame(count uint64) *PlayCountFrame {
	f := &PlayCountFrame{
		frameBase: frameBase{id: frameIDFromName(FramePlayCount), version: WriteVersion},
		count:     count,
	}
	f.edited = true
	return f
}

func (f *PlayCountFrame) read() {
	body := f.body()
	if len(body) == 0 {
		f.null = true
		f.count = 0
		return
	}
	f.count = binutil.ByteInt(body, false)
	f.null = false
}

// Kind returns KindPlayCount.
func (f *PlayCountFrame) Kind() FrameKind { return KindPlayCount }

// Empty reports whether the counter is zero.
func (f *PlayCountFrame) Empty() bool { return f.count == 0 }

// Count returns the play count.
func (f *PlayCountFrame) Count() uint64 { return f.count }

// SetCount replaces the play count.
func (f *PlayCountFrame) SetCount(count uint64) {
	f.count = count
	f.markEdited()
}

// Increment adds one to the play count.
func (f *PlayCountFrame) Increment() {
	f.count++
	f.markEdited()
}

// Revert restores the counter from the captured bytes.
func (f *PlayCountFrame) Revert() {
	if f.raw != nil {
		f.read()
	}
	f.edited = false
}

// Encode serializes the frame with the minimum counter width of four bytes.
func (f *PlayCountFrame) Encode() []byte {
	if f.null || f.Empty() {
		return nil
	}
	if f.unedited() {
		return slices.Clone(f.raw)
	}
	return renderFrame(f.id, f.headerFlags(), binutil.IntBytes(f.count, playCountWidth(f.count), false))
}

// Equal reports whether other is a play counter with the same count.
func (f *PlayCountFrame) Equal(other Frame) bool {
	o, ok := other.(*PlayCountFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null || o.null {
		return f.null == o.null
	}
	return f.count == o.count
}

func (f *PlayCountFrame) String() string {
	return fmt.Sprintf("%s (%s): %d", f.id, f.id.Description(), f.count)
}

// PopularimeterFrame is a popularimeter (POPM): a 0-255 rating and a play
// counter keyed by an email address.
type PopularimeterFrame struct {
	frameBase
	email  string
	rating uint8
	count  uint64
}

func newPopularimeterFrame(id FrameID, version byte, raw []byte) *PopularimeterFrame {
	f := &PopularimeterFrame{frameBase: newFrameBase(id, version, raw)}
	f.read()
	return f
}

// NewPopularimeterFrame creates a popularimeter frame.
func NewPopularimeterFrame(email string, rating uint8, count uint64) *PopularimeterFrame {
	f := &PopularimeterFrame{
		frameBase: frameBase{id: frameIDFromName(FramePopularimeter), version: WriteVersion},
		email:     email,
		rating:    rating,
		count:     count,
	}
	f.edited = true
	return f
}

func (f *PopularimeterFrame) read() {
	f.email = ""
	f.rating = 0
	f.count = 0

	body := f.body()
	if len(body) == 0 {
		f.null = true
		return
	}

	email, rest := encoding.Cut(body, encoding.Latin1)
	f.email = encoding.DecodeLatin1(email)
	if len(rest) == 0 {
		f.null = true
		return
	}
	f.rating = rest[0]
	// The counter may be absent; it then reads as zero.
	f.count = binutil.ByteInt(rest[1:], false)
	f.null = false
}

// Kind returns KindPopularimeter.
func (f *PopularimeterFrame) Kind() FrameKind { return KindPopularimeter }

// Empty reports whether the frame has neither rating nor count.
func (f *PopularimeterFrame) Empty() bool { return f.rating == 0 && f.count == 0 }

// Email returns the email address keying the rating.
func (f *PopularimeterFrame) Email() string { return f.email }

// Rating returns the raw 0-255 rating.
func (f *PopularimeterFrame) Rating() uint8 { return f.rating }

// Stars returns the rating bucketized to the ID3v1-era five-star scale:
// 0, 1-31, 32-95, 96-159, 160-223 and 224-255 map to zero through five.
func (f *PopularimeterFrame) Stars() int {
	switch {
	case f.rating == 0:
		return 0
	case f.rating <= 31:
		return 1
	case f.rating <= 95:
		return 2
	case f.rating <= 159:
		return 3
	case f.rating <= 223:
		return 4
	default:
		return 5
	}
}

// Count returns the play count.
func (f *PopularimeterFrame) Count() uint64 { return f.count }

// SetEmail replaces the email address.
func (f *PopularimeterFrame) SetEmail(email string) {
	f.email = email
	f.markEdited()
}

// SetRating replaces the raw rating.
func (f *PopularimeterFrame) SetRating(rating uint8) {
	f.rating = rating
	f.markEdited()
}

// SetCount replaces the play count.
func (f *PopularimeterFrame) SetCount(count uint64) {
	f.count = count
	f.markEdited()
}

// Revert restores all fields from the captured bytes.
func (f *PopularimeterFrame) Revert() {
	if f.raw != nil {
		f.read()
	}
	f.edited = false
}

// Encode serializes the frame: Latin-1 email with NUL terminator, rating
// byte, then the counter in at least four bytes.
func (f *PopularimeterFrame) Encode() []byte {
	if f.null || f.Empty() {
		return nil
	}
	if f.unedited() {
		return slices.Clone(f.raw)
	}

	email := encoding.EncodeLatin1(f.email)
	body := make([]byte, 0, len(email)+1+1+8)
	body = append(body, email...)
	body = append(body, 0x00)
	body = append(body, f.rating)
	body = append(body, binutil.IntBytes(f.count, playCountWidth(f.count), false)...)
	return renderFrame(f.id, f.headerFlags(), body)
}

// Equal reports whether other is a popularimeter with the same email,
// rating and count.
func (f *PopularimeterFrame) Equal(other Frame) bool {
	o, ok := other.(*PopularimeterFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null || o.null {
		return f.null == o.null
	}
	return f.email == o.email && f.rating == o.rating && f.count == o.count
}

func (f *PopularimeterFrame) String() string {
	return fmt.Sprintf("%s (%s): %s rating=%d count=%d", f.id, f.id.Description(), f.email, f.rating, f.count)
}
