package id3

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/simonhull/id3/internal/encoding"
)

// PictureType categorizes the purpose of an attached picture, following the
// ID3v2 APIC frame picture types.
type PictureType byte

const (
	PictureOther             PictureType = iota // Other
	PictureFileIcon                             // 32x32 file icon (PNG only)
	PictureOtherFileIcon                        // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeafletPage                          // Leaflet page
	PictureMedia                                // Media (e.g. label side of CD)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media",
	"Lead artist",
	"Artist",
	"Conductor",
	"Band/orchestra",
	"Composer",
	"Lyricist",
	"Recording location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright colored fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/studio logotype",
}

// String returns a human-readable name for the picture type.
func (t PictureType) String() string {
	if int(t) >= len(pictureTypeNames) {
		return fmt.Sprintf("PictureType(%d)", int(t))
	}
	return pictureTypeNames[t]
}

// normalizeMIME expands short image format names to their full MIME form.
// Only PNG and JPEG are recognized; anything else returns "".
func normalizeMIME(mime string) string {
	switch strings.ToLower(mime) {
	case "png", "image/png":
		return "image/png"
	case "jpg", "jpeg", "image/jpeg", "image/jpg":
		return "image/jpeg"
	default:
		return ""
	}
}

// PictureFrame is an attached picture (APIC): MIME type, picture type,
// description and the binary image payload. A frame whose MIME type is not
// recognized is null.
type PictureFrame struct {
	frameBase
	mimeType    string
	picType     PictureType
	description string
	data        []byte
}

func newPictureFrame(id FrameID, version byte, raw []byte) *PictureFrame {
	f := &PictureFrame{frameBase: newFrameBase(id, version, raw)}
	f.read()
	return f
}

// NewPictureFrame creates an attached-picture frame. The MIME type accepts
// the short forms "png" and "jpg"; an unrecognized type yields a null frame.
func NewPictureFrame(data []byte, mimeType, description string, picType PictureType) *PictureFrame {
	f := &PictureFrame{
		frameBase:   frameBase{id: frameIDFromName(FrameAttachedPicture), version: WriteVersion},
		picType:     picType,
		description: description,
		data:        slices.Clone(data),
	}
	f.mimeType = normalizeMIME(mimeType)
	f.null = f.mimeType == ""
	f.edited = true
	return f
}

func (f *PictureFrame) read() {
	f.mimeType = ""
	f.picType = PictureFrontCover
	f.description = ""
	f.data = nil

	body := f.body()
	if len(body) < 2 {
		f.null = true
		return
	}

	enc := body[0]
	rest := body[1:]

	if f.version <= 2 {
		// ID3v2.2 stores a fixed 3-byte image format instead of a MIME string.
		if len(rest) < 3 {
			f.null = true
			return
		}
		f.mimeType = normalizeMIME(string(rest[:3]))
		rest = rest[3:]
	} else {
		var mime []byte
		mime, rest = encoding.Cut(rest, encoding.Latin1)
		f.mimeType = normalizeMIME(encoding.DecodeLatin1(mime))
	}

	if len(rest) < 1 {
		f.null = true
		return
	}
	f.picType = PictureType(rest[0])
	rest = rest[1:]

	var desc []byte
	desc, rest = encoding.Cut(rest, enc)
	f.description = encoding.Decode(enc, desc)
	f.data = rest

	f.null = f.mimeType == ""
}

// Kind returns KindPicture.
func (f *PictureFrame) Kind() FrameKind { return KindPicture }

// Empty reports whether the frame has no image payload.
func (f *PictureFrame) Empty() bool { return len(f.data) == 0 }

// MIMEType returns the normalized MIME type ("image/png" or "image/jpeg").
func (f *PictureFrame) MIMEType() string { return f.mimeType }

// Type returns the picture type.
func (f *PictureFrame) Type() PictureType { return f.picType }

// Description returns the picture description.
func (f *PictureFrame) Description() string { return f.description }

// Data returns the binary image payload.
func (f *PictureFrame) Data() []byte { return f.data }

// SetPicture replaces the image payload and MIME type. An unrecognized MIME
// type marks the frame null.
func (f *PictureFrame) SetPicture(data []byte, mimeType string) {
	f.data = slices.Clone(data)
	f.mimeType = normalizeMIME(mimeType)
	f.markEdited()
	f.null = f.mimeType == ""
}

// SetDescription replaces the picture description.
func (f *PictureFrame) SetDescription(description string) {
	f.description = description
	f.markEdited()
}

// SetType replaces the picture type.
func (f *PictureFrame) SetType(picType PictureType) {
	f.picType = picType
	f.markEdited()
}

// Revert restores all fields from the captured bytes.
func (f *PictureFrame) Revert() {
	if f.raw != nil {
		f.read()
	}
	f.edited = false
}

// Encode serializes the frame: encoding byte, Latin-1 MIME type, picture
// type, UTF-8 description, then the image bytes. A payload that cannot fit
// under MaxTagSize is dropped rather than truncated.
func (f *PictureFrame) Encode() []byte {
	if f.null || f.Empty() {
		return nil
	}
	if f.unedited() {
		return slices.Clone(f.raw)
	}

	body := make([]byte, 0, 1+len(f.mimeType)+1+1+len(f.description)+1+len(f.data))
	body = append(body, encoding.UTF8)
	body = append(body, f.mimeType...)
	body = append(body, 0x00)
	body = append(body, byte(f.picType))
	body = append(body, f.description...)
	body = append(body, 0x00)
	body = append(body, f.data...)

	if len(body) > MaxTagSize-headerSize {
		return nil
	}
	return renderFrame(f.id, f.headerFlags(), body)
}

// Equal reports whether other is a picture frame with the same MIME type,
// picture type, description and image bytes.
func (f *PictureFrame) Equal(other Frame) bool {
	o, ok := other.(*PictureFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null || o.null {
		return f.null == o.null
	}
	return f.mimeType == o.mimeType &&
		f.picType == o.picType &&
		f.description == o.description &&
		bytes.Equal(f.data, o.data)
}

func (f *PictureFrame) String() string {
	return fmt.Sprintf("%s (%s): %s, %s, %d bytes", f.id, f.id.Description(), f.picType, f.mimeType, len(f.data))
}
