package id3

import (
	"bytes"
	"io"

	binutil "github.com/simonhull/id3/internal/binary"
)

// Bytes serializes the tag as a complete ID3v2.4 header plus frame region.
//
// Frames that were read from an ID3v2.4 source and never edited re-emit
// their captured bytes verbatim, so parsing and re-serializing an
// unedited v2.4 tag reproduces it byte for byte. Edited frames and frames
// from older versions are regenerated under v2.4 rules. Null and empty
// frames are dropped.
//
// Padding read from the source is preserved; the WithPadding minimum
// applies when it is larger.
func (t *Tag) Bytes() ([]byte, error) {
	var frames bytes.Buffer
	fw := binutil.NewSafeWriter(&frames)
	for _, f := range t.frames {
		if b := f.Encode(); len(b) > 0 {
			fw.WriteBytes(b)
		}
	}
	if err := fw.Err(); err != nil {
		return nil, err
	}

	padding := 0
	if t.markers.V2 {
		if p := int(headerSize + int64(t.v2.Size) - t.v2.PaddingStart); p > 0 {
			padding = p
		}
	}
	if t.minPadding > padding {
		padding = t.minPadding
	}

	total := frames.Len() + padding
	if total > MaxTagSize {
		return nil, &OversizedTagError{Size: total}
	}

	var out bytes.Buffer
	out.Grow(headerSize + total)
	w := binutil.NewSafeWriter(&out)
	w.WriteString("ID3")
	w.WriteBytes([]byte{WriteVersion, SupportedMinorVersion, 0x00})
	w.WriteInt(uint64(total), 4, true)
	w.WriteBytes(frames.Bytes())
	w.WriteBytes(make([]byte, padding))
	if err := w.Err(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteTo serializes the tag into w. It implements io.WriterTo.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	b, err := t.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
