package id3

import (
	"fmt"

	binutil "github.com/simonhull/id3/internal/binary"
)

// createFrame reads and classifies the frame starting at off within the v2
// frame region ending at regionEnd. It returns the frame and the offset of
// the next frame.
//
// A nil frame means the reader entered padding (or ran out of region) and
// iteration should stop. A non-nil frame with a zero next offset is the
// malformed-frame sentinel: the frame is a null UnknownFrame preserving the
// identifier, and iteration should stop after it.
func createFrame(sr *binutil.SafeReader, off int64, version byte, regionEnd int64) (Frame, int64) {
	hdrSize := int64(headerSize)
	if version <= 2 {
		hdrSize = v22FrameHeaderSize
	}

	if off+hdrSize > regionEnd {
		return nil, 0
	}

	hdr, err := sr.Read(off, int(hdrSize), "frame header")
	if err != nil {
		return nil, 0
	}

	// A NUL where the identifier should start marks the padding region.
	if hdr[0] == 0 {
		return nil, 0
	}

	var (
		id   FrameID
		size int64
	)
	if version <= 2 {
		id = frameIDForVersion(string(hdr[:3]), version)
		size = int64(binutil.ByteInt(hdr[3:6], false))
	} else {
		id = frameIDForVersion(string(hdr[:4]), version)
		size = int64(binutil.ByteInt(hdr[4:8], version >= 4))
	}

	if size <= 0 || off+hdrSize+size > regionEnd {
		return newUnknownFrame(id, version, nil), 0
	}

	body, err := sr.Read(off+hdrSize, int(size), fmt.Sprintf("frame %s body", id))
	if err != nil {
		return newUnknownFrame(id, version, nil), 0
	}

	var raw []byte
	if version <= 2 {
		// Rebuild a synthetic v2.4 header (4-byte ID, synchsafe size,
		// discard-if-unknown flag) so downstream code sees one layout.
		raw = renderFrame(id, uint16(frameFlagDiscardUnknown)<<8, body)
	} else {
		raw = make([]byte, 0, hdrSize+size)
		raw = append(raw, hdr...)
		raw = append(raw, body...)
	}

	return instantiateFrame(id, version, raw), off + hdrSize + size
}

// instantiateFrame builds the frame variant matching the identifier's
// registered category.
func instantiateFrame(id FrameID, version byte, raw []byte) Frame {
	switch id.Kind() {
	case KindText:
		return newTextFrame(id, version, raw)
	case KindNumericalText:
		return newNumericalTextFrame(id, version, raw)
	case KindDescriptiveText:
		return newDescriptiveTextFrame(id, version, raw)
	case KindURL:
		return newURLTextFrame(id, version, raw)
	case KindPicture:
		return newPictureFrame(id, version, raw)
	case KindPlayCount:
		return newPlayCountFrame(id, version, raw)
	case KindPopularimeter:
		return newPopularimeterFrame(id, version, raw)
	case KindEventTiming:
		return newEventTimingFrame(id, version, raw)
	default:
		return newUnknownFrame(id, version, raw)
	}
}

// newFrameForID builds an empty, editable frame variant for the identifier,
// used by Tag setters when no frame with the identifier exists yet.
func newFrameForID(id FrameID, values ...string) Frame {
	switch id.Kind() {
	case KindNumericalText:
		return NewNumericalTextFrame(id, values...)
	case KindDescriptiveText:
		content := ""
		if len(values) > 0 {
			content = values[0]
		}
		return NewDescriptiveTextFrame(id, content, "", "")
	case KindURL:
		url := ""
		if len(values) > 0 {
			url = values[0]
		}
		return NewURLTextFrame(id, url)
	default:
		return NewTextFrame(id, values...)
	}
}
