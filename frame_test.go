package id3

import (
	"bytes"
	"testing"

	binutil "github.com/simonhull/id3/internal/binary"
)

// buildRawFrame assembles an on-disk frame as the given version writes it:
// plain size for v2.3, synchsafe for v2.4.
func buildRawFrame(id string, version byte, body []byte) []byte {
	b := []byte(id)
	b = append(b, binutil.IntBytes(uint64(len(body)), 4, version >= 4)...)
	b = append(b, 0x00, 0x00)
	return append(b, body...)
}

func TestTextFrameRead(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		version byte
		want    string
	}{
		{
			name:    "latin1",
			body:    append([]byte{0x00}, "Hello"...),
			version: 4,
			want:    "Hello",
		},
		{
			name:    "latin1 high bytes",
			body:    []byte{0x00, 0xE9},
			version: 3,
			want:    "é",
		},
		{
			name:    "utf16 with LE BOM",
			body:    []byte{0x01, 0xFF, 0xFE, 0x41, 0x00, 0x42, 0x00},
			version: 3,
			want:    "AB",
		},
		{
			name:    "utf8",
			body:    append([]byte{0x03}, "Hello, 世界"...),
			version: 4,
			want:    "Hello, 世界",
		},
		{
			name:    "terminated latin1",
			body:    []byte{0x00, 'H', 'i', 0x00},
			version: 3,
			want:    "Hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := buildRawFrame("TIT2", tt.version, tt.body)
			f := newTextFrame(NewFrameID("TIT2"), tt.version, raw)
			if f.Null() {
				t.Fatal("frame is null")
			}
			if f.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", f.Text(), tt.want)
			}
		})
	}
}

func TestTextFrameReadEmptyBodyIsNull(t *testing.T) {
	raw := buildRawFrame("TIT2", 4, nil)
	f := newTextFrame(NewFrameID("TIT2"), 4, raw)
	if !f.Null() {
		t.Error("expected null frame for empty body")
	}
	if f.Text() != "" {
		t.Errorf("Text() = %q, want empty", f.Text())
	}
}

func TestTextFrameEncodeChoosesEncoding(t *testing.T) {
	ascii := NewTextFrame(NewFrameID("TALB"), "Plain Album")
	b := ascii.Encode()
	if b == nil {
		t.Fatal("Encode returned nil")
	}
	if b[headerSize] != 0x00 {
		t.Errorf("encoding byte = %#x, want 0x00 (Latin-1) for ASCII content", b[headerSize])
	}

	utf8Frame := NewTextFrame(NewFrameID("TALB"), "Café")
	b = utf8Frame.Encode()
	if b[headerSize] != 0x03 {
		t.Errorf("encoding byte = %#x, want 0x03 (UTF-8) for non-ASCII content", b[headerSize])
	}
	if got := string(b[headerSize+1:]); got != "Café" {
		t.Errorf("content = %q, want %q", got, "Café")
	}
}

func TestTextFrameEncodeHeader(t *testing.T) {
	f := NewTextFrame(NewFrameID("TIT2"), "Hello")
	b := f.Encode()

	if got := string(b[0:4]); got != "TIT2" {
		t.Errorf("ID = %q, want TIT2", got)
	}
	size := binutil.ByteInt(b[4:8], true)
	if int(size) != len(b)-headerSize {
		t.Errorf("size field = %d, want %d", size, len(b)-headerSize)
	}
}

func TestTextFrameUneditedRoundTrip(t *testing.T) {
	raw := buildRawFrame("TIT2", 4, append([]byte{0x03}, "Hello, 世界"...))
	f := newTextFrame(NewFrameID("TIT2"), 4, raw)

	if !bytes.Equal(f.Encode(), raw) {
		t.Error("unedited v2.4 frame must re-emit its captured bytes")
	}

	f.SetText("Other")
	if bytes.Equal(f.Encode(), raw) {
		t.Error("edited frame must be regenerated")
	}
	if !f.Edited() {
		t.Error("Edited() = false after SetText")
	}

	f.Revert()
	if f.Edited() {
		t.Error("Edited() = true after Revert")
	}
	if f.Text() != "Hello, 世界" {
		t.Errorf("Text() after Revert = %q", f.Text())
	}
}

func TestTextFrameValues(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		version byte
		body    []byte
		want    []string
	}{
		{
			name:    "v2.3 slash separated artists",
			id:      "TPE1",
			version: 3,
			body:    append([]byte{0x00}, "Alice/Bob"...),
			want:    []string{"Alice", "Bob"},
		},
		{
			name:    "v2.4 NUL separated artists",
			id:      "TPE1",
			version: 4,
			body:    append([]byte{0x03}, "Alice\x00Bob"...),
			want:    []string{"Alice", "Bob"},
		},
		{
			name:    "v2.3 slash in non-artist frame stays whole",
			id:      "TALB",
			version: 3,
			body:    append([]byte{0x00}, "AC/DC Live"...),
			want:    []string{"AC/DC Live"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := buildRawFrame(tt.id, tt.version, tt.body)
			f := newTextFrame(NewFrameID(tt.id), tt.version, raw)
			got := f.Values()
			if len(got) != len(tt.want) {
				t.Fatalf("Values() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Values()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNumericalTextFrame(t *testing.T) {
	raw := buildRawFrame("TYER", 4, append([]byte{0x00}, "1984"...))
	f := newNumericalTextFrame(NewFrameID("TYER"), 4, raw)
	if f.Text() != "1984" {
		t.Errorf("Text() = %q, want 1984", f.Text())
	}

	f.SetText("not a year")
	if f.Text() != "" {
		t.Errorf("Text() = %q, want empty after non-numerical assignment", f.Text())
	}

	f.SetValues("120", "fast", "128")
	got := f.Values()
	if len(got) != 2 || got[0] != "120" || got[1] != "128" {
		t.Errorf("Values() = %v, want [120 128]", got)
	}
}

func TestNumericalTextFrameFiltersOnRead(t *testing.T) {
	raw := buildRawFrame("TYER", 4, append([]byte{0x00}, "abcd"...))
	f := newNumericalTextFrame(NewFrameID("TYER"), 4, raw)
	if f.Text() != "" {
		t.Errorf("Text() = %q, want empty for non-numerical body", f.Text())
	}
}

func TestDescriptiveTextFrameComment(t *testing.T) {
	body := []byte{0x00}
	body = append(body, "eng"...)
	body = append(body, "note"...)
	body = append(body, 0x00)
	body = append(body, "the comment"...)

	raw := buildRawFrame("COMM", 4, body)
	f := newDescriptiveTextFrame(NewFrameID("COMM"), 4, raw)

	if f.Null() {
		t.Fatal("frame is null")
	}
	if f.Language() != "eng" {
		t.Errorf("Language() = %q, want eng", f.Language())
	}
	if f.Description() != "note" {
		t.Errorf("Description() = %q, want note", f.Description())
	}
	if f.Text() != "the comment" {
		t.Errorf("Text() = %q, want %q", f.Text(), "the comment")
	}
}

func TestDescriptiveTextFrameUTF16UnalignedNUL(t *testing.T) {
	// Description "AĀ" in UTF-16BE contains a NUL inside the second code
	// unit (0x0100); scanning must continue to the aligned NUL-NUL pair.
	body := []byte{0x01}
	body = append(body, "eng"...)
	body = append(body, 0xFE, 0xFF, 0x00, 0x41, 0x01, 0x00) // BOM + "AĀ"
	body = append(body, 0x00, 0x00)                         // aligned terminator
	body = append(body, 0xFE, 0xFF, 0x00, 0x42)             // content "B"

	raw := buildRawFrame("COMM", 3, body)
	f := newDescriptiveTextFrame(NewFrameID("COMM"), 3, raw)

	if f.Description() != "AĀ" {
		t.Errorf("Description() = %q, want AĀ", f.Description())
	}
	if f.Text() != "B" {
		t.Errorf("Text() = %q, want B", f.Text())
	}
}

func TestDescriptiveTextFrameTermsOfUse(t *testing.T) {
	// USER carries a language but no description.
	body := []byte{0x00}
	body = append(body, "eng"...)
	body = append(body, "all rights reserved"...)

	raw := buildRawFrame("USER", 4, body)
	f := newDescriptiveTextFrame(NewFrameID("USER"), 4, raw)

	if f.Text() != "all rights reserved" {
		t.Errorf("Text() = %q", f.Text())
	}
	if f.Description() != "" {
		t.Errorf("Description() = %q, want empty for USER", f.Description())
	}
}

func TestDescriptiveTextFrameEncodeDefaultLanguage(t *testing.T) {
	f := NewDescriptiveTextFrame(NewFrameID("COMM"), "hi", "desc", "")
	b := f.Encode()
	if b == nil {
		t.Fatal("Encode returned nil")
	}
	if got := string(b[headerSize+1 : headerSize+4]); got != "xxx" {
		t.Errorf("language = %q, want xxx when unset", got)
	}
}

func TestURLTextFrame(t *testing.T) {
	raw := buildRawFrame("WOAR", 4, []byte("https://example.com"))
	f := newURLTextFrame(NewFrameID("WOAR"), 4, raw)

	if f.URL() != "https://example.com" {
		t.Errorf("URL() = %q", f.URL())
	}

	f.SetText("https://example.org")
	b := f.Encode()
	// URL frames carry no encoding byte.
	if got := string(b[headerSize:]); got != "https://example.org" {
		t.Errorf("body = %q", got)
	}
}

func TestUnknownFrameRoundTrip(t *testing.T) {
	raw := buildRawFrame("PRIV", 4, []byte("owner\x00payload"))
	f := newUnknownFrame(NewFrameID("PRIV"), 4, raw)

	if !bytes.Equal(f.Encode(), raw) {
		t.Error("unknown v2.4 frame must round-trip verbatim")
	}
}

func TestUnknownFrameV23SizeReencoded(t *testing.T) {
	body := make([]byte, 200)
	raw := buildRawFrame("PRIV", 3, body)
	f := newUnknownFrame(NewFrameID("PRIV"), 3, raw)

	out := f.Encode()
	if out == nil {
		t.Fatal("Encode returned nil")
	}
	if got := binutil.ByteInt(out[4:8], true); got != 200 {
		t.Errorf("synchsafe size = %d, want 200", got)
	}
}

func TestUnknownFrameDiscardFlag(t *testing.T) {
	raw := buildRawFrame("ZZZZ", 4, []byte("data"))
	raw[8] |= frameFlagDiscardUnknown
	f := newUnknownFrame(NewFrameID("ZZZZ"), 4, raw)

	if f.Encode() != nil {
		t.Error("frame flagged discard-if-unknown must not be written")
	}
}

func TestPictureFrame(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}
	body := []byte{0x00}
	body = append(body, "image/png"...)
	body = append(body, 0x00)
	body = append(body, byte(PictureFrontCover))
	body = append(body, "cover"...)
	body = append(body, 0x00)
	body = append(body, data...)

	raw := buildRawFrame("APIC", 4, body)
	f := newPictureFrame(NewFrameID("APIC"), 4, raw)

	if f.Null() {
		t.Fatal("frame is null")
	}
	if f.MIMEType() != "image/png" {
		t.Errorf("MIMEType() = %q", f.MIMEType())
	}
	if f.Type() != PictureFrontCover {
		t.Errorf("Type() = %v", f.Type())
	}
	if f.Description() != "cover" {
		t.Errorf("Description() = %q", f.Description())
	}
	if !bytes.Equal(f.Data(), data) {
		t.Errorf("Data() = %v", f.Data())
	}
}

func TestPictureFrameV22Layout(t *testing.T) {
	// ID3v2.2 PIC bodies carry a fixed 3-byte image format.
	data := []byte{1, 2, 3}
	body := []byte{0x00}
	body = append(body, "PNG"...)
	body = append(body, byte(PictureBackCover))
	body = append(body, 0x00) // empty description
	body = append(body, data...)

	// The factory rebuilds a v2.4 header but the body keeps its layout.
	raw := renderFrame(NewFrameID("APIC"), uint16(frameFlagDiscardUnknown)<<8, body)
	f := newPictureFrame(NewFrameID("APIC"), 2, raw)

	if f.Null() {
		t.Fatal("frame is null")
	}
	if f.MIMEType() != "image/png" {
		t.Errorf("MIMEType() = %q, want image/png", f.MIMEType())
	}
	if !bytes.Equal(f.Data(), data) {
		t.Errorf("Data() = %v", f.Data())
	}
}

func TestPictureFrameUnknownMIMEIsNull(t *testing.T) {
	f := NewPictureFrame([]byte{1}, "image/webp", "", PictureOther)
	if !f.Null() {
		t.Error("expected null frame for unrecognized MIME type")
	}

	short := NewPictureFrame([]byte{1}, "jpg", "", PictureOther)
	if short.Null() {
		t.Error("short form jpg must be accepted")
	}
	if short.MIMEType() != "image/jpeg" {
		t.Errorf("MIMEType() = %q, want image/jpeg", short.MIMEType())
	}
}

func TestPlayCountFrame(t *testing.T) {
	raw := buildRawFrame("PCNT", 4, []byte{0x00, 0x00, 0x01, 0x00})
	f := newPlayCountFrame(NewFrameID("PCNT"), 4, raw)
	if f.Count() != 256 {
		t.Errorf("Count() = %d, want 256", f.Count())
	}

	f.SetCount(7)
	b := f.Encode()
	if len(b)-headerSize != 4 {
		t.Errorf("counter width = %d, want minimum 4 bytes", len(b)-headerSize)
	}

	// Counters wider than 4 bytes grow as needed.
	f.SetCount(1 << 40)
	b = f.Encode()
	if len(b)-headerSize != 6 {
		t.Errorf("counter width = %d, want 6 bytes for 2^40", len(b)-headerSize)
	}
	if got := binutil.ByteInt(b[headerSize:], false); got != 1<<40 {
		t.Errorf("decoded count = %d", got)
	}
}

func TestPopularimeterFrame(t *testing.T) {
	body := []byte("rater@example.com")
	body = append(body, 0x00, 196, 0x00, 0x00, 0x00, 0x09)

	raw := buildRawFrame("POPM", 4, body)
	f := newPopularimeterFrame(NewFrameID("POPM"), 4, raw)

	if f.Email() != "rater@example.com" {
		t.Errorf("Email() = %q", f.Email())
	}
	if f.Rating() != 196 {
		t.Errorf("Rating() = %d, want 196", f.Rating())
	}
	if f.Count() != 9 {
		t.Errorf("Count() = %d, want 9", f.Count())
	}
}

func TestPopularimeterStars(t *testing.T) {
	tests := []struct {
		rating uint8
		want   int
	}{
		{0, 0}, {1, 1}, {31, 1}, {32, 2}, {95, 2},
		{96, 3}, {159, 3}, {160, 4}, {223, 4}, {224, 5}, {255, 5},
	}

	for _, tt := range tests {
		f := NewPopularimeterFrame("a@b.c", tt.rating, 0)
		if got := f.Stars(); got != tt.want {
			t.Errorf("Stars() with rating %d = %d, want %d", tt.rating, got, tt.want)
		}
	}
}

func TestEventTimingFrame(t *testing.T) {
	body := []byte{byte(TimestampMilliseconds)}
	body = append(body, 0x03, 0x00, 0x00, 0x0B, 0xB8) // event 3 at 3000ms
	body = append(body, 0x02, 0x00, 0x00, 0x00, 0x64) // event 2 at 100ms

	raw := buildRawFrame("ETCO", 4, body)
	f := newEventTimingFrame(NewFrameID("ETCO"), 4, raw)

	if f.Format() != TimestampMilliseconds {
		t.Errorf("Format() = %v", f.Format())
	}
	events := f.Events()
	if len(events) != 2 {
		t.Fatalf("len(Events()) = %d, want 2", len(events))
	}
	if ts, ok := f.Timestamp(0x03); !ok || ts != 3000 {
		t.Errorf("Timestamp(3) = %d, %v; want 3000, true", ts, ok)
	}
	if _, ok := f.Timestamp(0x07); ok {
		t.Error("Timestamp(7) found unexpectedly")
	}

	f.SetTimestamp(0x02, 200)
	if ts, _ := f.Timestamp(0x02); ts != 200 {
		t.Errorf("Timestamp(2) after set = %d, want 200", ts)
	}
}

func TestFrameEquality(t *testing.T) {
	a := NewTextFrame(NewFrameID("TIT2"), "Same")
	b := NewTextFrame(NewFrameID("TIT2"), "Same")
	c := NewTextFrame(NewFrameID("TIT2"), "Other")
	d := NewTextFrame(NewFrameID("TALB"), "Same")

	if !a.Equal(b) {
		t.Error("frames with identical ID and content must be equal")
	}
	if a.Equal(c) {
		t.Error("frames with different content must not be equal")
	}
	if a.Equal(d) {
		t.Error("frames with different IDs must not be equal")
	}

	// Equality is semantic, not byte-level: the same content read from
	// different encodings compares equal.
	latin1 := newTextFrame(NewFrameID("TIT2"), 4, buildRawFrame("TIT2", 4, append([]byte{0x00}, "Same"...)))
	utf16 := newTextFrame(NewFrameID("TIT2"), 4, buildRawFrame("TIT2", 4, []byte{0x01, 0xFF, 0xFE, 'S', 0x00, 'a', 0x00, 'm', 0x00, 'e', 0x00}))
	if !latin1.Equal(utf16) {
		t.Error("same content in different encodings must be equal")
	}

	// A numerical frame never equals a plain text frame.
	year := NewNumericalTextFrame(NewFrameID("TYER"), "1984")
	text := NewTextFrame(NewFrameID("TYER"), "1984")
	if year.Equal(text) {
		t.Error("frames of different categories must not be equal")
	}
}
