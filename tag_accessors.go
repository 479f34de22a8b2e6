package id3

import (
	"strconv"
	"strings"
)

// texter is satisfied by every frame variant that carries text content.
type texter interface {
	Text() string
}

// textContent returns the content of the first frame with the given
// canonical identifier, or "" when absent or null.
func (t *Tag) textContent(name FrameName) string {
	f := t.Frame(frameTable[name].id)
	if f == nil || f.Null() {
		return ""
	}
	if tf, ok := f.(texter); ok {
		return tf.Text()
	}
	return ""
}

// setText replaces the content of the first frame with the given canonical
// identifier, creating the frame when absent.
func (t *Tag) setText(name FrameName, values ...string) {
	id := frameIDFromName(name)
	f := t.Frame(id.String())
	if f == nil {
		t.addFrame(newFrameForID(id, values...))
		return
	}

	switch tf := f.(type) {
	case *NumericalTextFrame:
		tf.SetValues(values...)
	case *DescriptiveTextFrame:
		tf.SetText(strings.Join(values, "\x00"))
	case *URLTextFrame:
		tf.SetText(strings.Join(values, "\x00"))
	case *TextFrame:
		tf.SetValues(values...)
	default:
		t.addFrame(newFrameForID(id, values...))
	}
}

// Title returns the content of the TIT2 frame.
func (t *Tag) Title() string { return t.textContent(FrameTitle) }

// SetTitle replaces the title.
func (t *Tag) SetTitle(title string) { t.setText(FrameTitle, title) }

// Artist returns the content of the TPE1 frame.
func (t *Tag) Artist() string { return t.textContent(FrameArtist) }

// Artists returns the individual values of the TPE1 frame. ID3v2.4 frames
// separate artists with NUL bytes, ID3v2.3 and earlier with slashes.
func (t *Tag) Artists() []string {
	f, ok := t.Frame(frameTable[FrameArtist].id).(*TextFrame)
	if !ok || f.Null() {
		return nil
	}
	return f.Values()
}

// SetArtist replaces the artist(s).
func (t *Tag) SetArtist(artists ...string) { t.setText(FrameArtist, artists...) }

// Album returns the content of the TALB frame.
func (t *Tag) Album() string { return t.textContent(FrameAlbum) }

// SetAlbum replaces the album.
func (t *Tag) SetAlbum(album string) { t.setText(FrameAlbum, album) }

// AlbumArtist returns the content of the TPE2 frame.
func (t *Tag) AlbumArtist() string { return t.textContent(FrameAlbumArtist) }

// SetAlbumArtist replaces the album artist.
func (t *Tag) SetAlbumArtist(artist string) { t.setText(FrameAlbumArtist, artist) }

// Composer returns the content of the TCOM frame.
func (t *Tag) Composer() string { return t.textContent(FrameComposer) }

// SetComposer replaces the composer.
func (t *Tag) SetComposer(composer string) { t.setText(FrameComposer, composer) }

// Year returns the content of the TYER frame.
func (t *Tag) Year() string { return t.textContent(FrameYear) }

// SetYear replaces the year. Non-numerical values are dropped silently.
func (t *Tag) SetYear(year string) { t.setText(FrameYear, year) }

// BPM returns the content of the TBPM frame.
func (t *Tag) BPM() string { return t.textContent(FrameBPM) }

// SetBPM replaces the beats-per-minute value.
func (t *Tag) SetBPM(bpm int) { t.setText(FrameBPM, strconv.Itoa(bpm)) }

// Genre returns the content of the TCON frame with ID3v1 genre references
// resolved: a numeric string, or a "(n)" with nothing after it, is replaced
// with the referenced v1 genre name; a "(n)" followed by text is stripped,
// leaving the text.
func (t *Tag) Genre() string { return processGenre(t.textContent(FrameGenre)) }

// GenreRaw returns the content of the TCON frame without processing.
func (t *Tag) GenreRaw() string { return t.textContent(FrameGenre) }

// SetGenre replaces the genre.
func (t *Tag) SetGenre(genre string) { t.setText(FrameGenre, genre) }

// SetGenreIndex replaces the genre with the name of the given ID3v1 genre.
func (t *Tag) SetGenreIndex(index int) { t.setText(FrameGenre, V1Genre(index)) }

// Track returns the track number from the TRCK frame, with any "/total"
// suffix stripped. Non-integer forms yield "".
func (t *Tag) Track() string {
	num, _ := splitNumberTotal(t.textContent(FrameTrack))
	return num
}

// TrackTotal returns the total-tracks part of the TRCK frame, or "" when
// absent or not an integer.
func (t *Tag) TrackTotal() string {
	_, total := splitNumberTotal(t.textContent(FrameTrack))
	return total
}

// TrackRaw returns the content of the TRCK frame without processing.
func (t *Tag) TrackRaw() string { return t.textContent(FrameTrack) }

// SetTrack replaces the track number and total. An empty total writes just
// the number.
func (t *Tag) SetTrack(track, total string) {
	t.setText(FrameTrack, joinNumberTotal(track, total))
}

// Disc returns the disc number from the TPOS frame, with any "/total"
// suffix stripped. Non-integer forms yield "".
func (t *Tag) Disc() string {
	num, _ := splitNumberTotal(t.textContent(FrameDisc))
	return num
}

// DiscTotal returns the total-discs part of the TPOS frame, or "" when
// absent or not an integer.
func (t *Tag) DiscTotal() string {
	_, total := splitNumberTotal(t.textContent(FrameDisc))
	return total
}

// DiscRaw returns the content of the TPOS frame without processing.
func (t *Tag) DiscRaw() string { return t.textContent(FrameDisc) }

// SetDisc replaces the disc number and total. An empty total writes just
// the number.
func (t *Tag) SetDisc(disc, total string) {
	t.setText(FrameDisc, joinNumberTotal(disc, total))
}

// Comment returns the content of the first COMM frame.
func (t *Tag) Comment() string { return t.textContent(FrameComment) }

// SetComment replaces the content of the first COMM frame, creating one
// with an empty description when absent.
func (t *Tag) SetComment(comment string) { t.setText(FrameComment, comment) }

// Lyrics returns the content of the first USLT frame.
func (t *Tag) Lyrics() string { return t.textContent(FrameLyrics) }

// SetLyrics replaces the content of the first USLT frame.
func (t *Tag) SetLyrics(lyrics string) { t.setText(FrameLyrics, lyrics) }

// Picture returns the first attached picture, or nil if none is present.
func (t *Tag) Picture() *PictureFrame {
	f, ok := t.Frame(frameTable[FrameAttachedPicture].id).(*PictureFrame)
	if !ok || f.Null() {
		return nil
	}
	return f
}

// Pictures returns every attached picture in file order.
func (t *Tag) Pictures() []*PictureFrame {
	var out []*PictureFrame
	for _, f := range t.Frames(frameTable[FrameAttachedPicture].id) {
		if pf, ok := f.(*PictureFrame); ok && !pf.Null() {
			out = append(out, pf)
		}
	}
	return out
}

// AddPicture attaches a picture to the tag. An unrecognized MIME type is
// dropped silently.
func (t *Tag) AddPicture(data []byte, mimeType, description string, picType PictureType) {
	f := NewPictureFrame(data, mimeType, description, picType)
	if f.Null() {
		return
	}
	t.addFrame(f)
}

// PlayCount returns the counter of the PCNT frame, or 0 when absent.
func (t *Tag) PlayCount() uint64 {
	f, ok := t.Frame(frameTable[FramePlayCount].id).(*PlayCountFrame)
	if !ok || f.Null() {
		return 0
	}
	return f.Count()
}

// SetPlayCount replaces the PCNT counter, creating the frame when absent.
func (t *Tag) SetPlayCount(count uint64) {
	if f, ok := t.Frame(frameTable[FramePlayCount].id).(*PlayCountFrame); ok {
		f.SetCount(count)
		return
	}
	t.addFrame(NewPlayCountFrame(count))
}

// splitNumberTotal splits an "N/M" value into its parts, dropping any part
// that is not an integer string.
func splitNumberTotal(s string) (num, total string) {
	num, total, found := strings.Cut(s, "/")
	if !isIntegerString(num) {
		num = ""
	}
	if !found || !isIntegerString(total) {
		total = ""
	}
	return num, total
}

// joinNumberTotal joins a number and total back into "N/M" form.
func joinNumberTotal(num, total string) string {
	if total == "" {
		return num
	}
	if num == "" {
		return total
	}
	return num + "/" + total
}
