package id3

import (
	"fmt"
	"slices"
	"strings"

	"github.com/simonhull/id3/internal/encoding"
)

// slashSeparatedV23 lists the text frames whose ID3v2.3 bodies separate
// multiple values with a slash. In ID3v2.4 every text frame uses NUL.
var slashSeparatedV23 = map[FrameName]bool{
	FrameArtist:           true,
	FrameComposer:         true,
	FrameLyricist:         true,
	FrameOriginalLyricist: true,
	FrameOriginalArtist:   true,
}

// TextFrame is a frame whose body is an encoding byte followed by text.
// The content is normalized to UTF-8 on read regardless of the declared
// encoding; on write it is emitted as Latin-1 when pure ASCII, UTF-8
// otherwise.
type TextFrame struct {
	frameBase
	content string
}

func newTextFrame(id FrameID, version byte, raw []byte) *TextFrame {
	f := &TextFrame{frameBase: newFrameBase(id, version, raw)}
	f.read()
	return f
}

// NewTextFrame creates a text frame with the given content.
func NewTextFrame(id FrameID, values ...string) *TextFrame {
	f := &TextFrame{frameBase: frameBase{id: id, version: WriteVersion}}
	f.SetValues(values...)
	f.edited = true
	return f
}

func (f *TextFrame) read() {
	body := f.body()
	if len(body) == 0 {
		f.null = true
		f.content = ""
		return
	}
	// Terminated text is common in the wild; a trailing NUL is not a value.
	f.content = strings.TrimRight(encoding.Decode(body[0], body[1:]), "\x00")
	f.null = false
}

// Kind returns KindText.
func (f *TextFrame) Kind() FrameKind { return KindText }

// Empty reports whether the frame has no content.
func (f *TextFrame) Empty() bool { return f.content == "" }

// Text returns the content as read, normalized to UTF-8. Multiple values
// keep the separator of the source version; use Values for a split view.
func (f *TextFrame) Text() string { return f.content }

// Values splits the content into its individual values. ID3v2.4 text
// frames separate values with NUL bytes; in ID3v2.3 and earlier only the
// artist-family frames are multi-valued, separated by slashes.
func (f *TextFrame) Values() []string {
	if f.content == "" {
		return nil
	}
	return splitValues(f.id, f.effectiveVersion(), f.content)
}

func splitValues(id FrameID, version byte, content string) []string {
	if version >= 4 {
		return strings.Split(content, "\x00")
	}
	if slashSeparatedV23[id.Name()] {
		return strings.Split(content, "/")
	}
	return []string{content}
}

// SetText replaces the content. The frame is re-encoded under ID3v2.4
// rules on the next write.
func (f *TextFrame) SetText(content string) {
	f.content = content
	f.markEdited()
}

// SetValues replaces the content with the given values, NUL-separated.
func (f *TextFrame) SetValues(values ...string) {
	f.content = strings.Join(values, "\x00")
	f.markEdited()
}

// Revert restores the content from the captured bytes.
func (f *TextFrame) Revert() {
	if f.raw != nil {
		f.read()
	}
	f.edited = false
}

// Encode serializes the frame. ASCII-only content is written as Latin-1,
// anything else as UTF-8. Multiple values are written NUL-separated, so
// slash-separated values read from ID3v2.3 and earlier are rewritten with
// NUL separators. Content beyond MaxTagSize is truncated.
func (f *TextFrame) Encode() []byte {
	if f.null || f.Empty() {
		return nil
	}
	if f.unedited() {
		return slices.Clone(f.raw)
	}
	return renderFrame(f.id, f.headerFlags(), textBody(strings.Join(f.Values(), "\x00")))
}

// textBody builds an encoding byte plus content, trimmed to fit MaxTagSize.
func textBody(content string) []byte {
	if len(content) > MaxTagSize-headerSize-1 {
		content = content[:MaxTagSize-headerSize-1]
	}

	enc := encoding.UTF8
	if encoding.IsASCII(content) {
		enc = encoding.Latin1
	}
	body := make([]byte, 0, 1+len(content))
	body = append(body, enc)
	return append(body, content...)
}

// Equal reports whether other is a plain text frame with the same
// identifier and content.
func (f *TextFrame) Equal(other Frame) bool {
	o, ok := other.(*TextFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null || o.null {
		return f.null == o.null
	}
	return f.content == o.content
}

func (f *TextFrame) String() string {
	return fmt.Sprintf("%s (%s): %q", f.id, f.id.Description(), f.content)
}

// NumericalTextFrame is a text frame whose values must be ASCII integer
// strings. Non-numerical values are dropped silently, element by element.
type NumericalTextFrame struct {
	TextFrame
}

func newNumericalTextFrame(id FrameID, version byte, raw []byte) *NumericalTextFrame {
	f := &NumericalTextFrame{TextFrame: TextFrame{frameBase: newFrameBase(id, version, raw)}}
	f.read()
	f.filter()
	return f
}

// NewNumericalTextFrame creates a numerical text frame; values that are not
// integer strings are dropped.
func NewNumericalTextFrame(id FrameID, values ...string) *NumericalTextFrame {
	f := &NumericalTextFrame{TextFrame: TextFrame{frameBase: frameBase{id: id, version: WriteVersion}}}
	f.SetValues(values...)
	f.edited = true
	return f
}

// Kind returns KindNumericalText.
func (f *NumericalTextFrame) Kind() FrameKind { return KindNumericalText }

// filter drops every value that is not an integer string, keeping the rest.
func (f *NumericalTextFrame) filter() {
	values := splitValues(f.id, f.version, f.content)
	valid := values[:0]
	for _, v := range values {
		if isIntegerString(v) {
			valid = append(valid, v)
		}
	}

	sep := "\x00"
	if f.version < 4 {
		sep = "/"
	}
	f.content = strings.Join(valid, sep)
}

// SetText replaces the content if it is an integer string, otherwise the
// content becomes empty.
func (f *NumericalTextFrame) SetText(content string) {
	if !isIntegerString(content) {
		content = ""
	}
	f.TextFrame.SetText(content)
}

// SetValues replaces the content with the integer values among the given
// ones; the rest are filtered out.
func (f *NumericalTextFrame) SetValues(values ...string) {
	valid := make([]string, 0, len(values))
	for _, v := range values {
		if isIntegerString(v) {
			valid = append(valid, v)
		}
	}
	f.TextFrame.SetValues(valid...)
}

// SetInt replaces the content with the decimal form of n.
func (f *NumericalTextFrame) SetInt(n int64) {
	f.TextFrame.SetText(fmt.Sprintf("%d", n))
}

// Revert restores the content from the captured bytes.
func (f *NumericalTextFrame) Revert() {
	if f.raw != nil {
		f.read()
		f.filter()
	}
	f.edited = false
}

// Equal reports whether other is a numerical text frame with the same
// identifier and content.
func (f *NumericalTextFrame) Equal(other Frame) bool {
	o, ok := other.(*NumericalTextFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null || o.null {
		return f.null == o.null
	}
	return f.content == o.content
}

// isIntegerString reports whether s is a non-empty ASCII decimal integer,
// with an optional leading minus sign.
func isIntegerString(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
		if s == "" {
			return false
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// URLTextFrame is a frame whose body is a Latin-1 URL with no encoding byte.
type URLTextFrame struct {
	TextFrame
}

func newURLTextFrame(id FrameID, version byte, raw []byte) *URLTextFrame {
	f := &URLTextFrame{TextFrame: TextFrame{frameBase: newFrameBase(id, version, raw)}}
	f.read()
	return f
}

// NewURLTextFrame creates a URL frame with the given target.
func NewURLTextFrame(id FrameID, url string) *URLTextFrame {
	f := &URLTextFrame{TextFrame: TextFrame{frameBase: frameBase{id: id, version: WriteVersion}}}
	f.SetText(url)
	f.edited = true
	return f
}

func (f *URLTextFrame) read() {
	body := f.body()
	if len(body) == 0 {
		f.null = true
		f.content = ""
		return
	}
	f.content = encoding.DecodeLatin1(body)
	f.null = false
}

// Kind returns KindURL.
func (f *URLTextFrame) Kind() FrameKind { return KindURL }

// URL returns the frame content.
func (f *URLTextFrame) URL() string { return f.content }

// Revert restores the content from the captured bytes.
func (f *URLTextFrame) Revert() {
	if f.raw != nil {
		f.read()
	}
	f.edited = false
}

// Encode serializes the frame. The URL is always written as Latin-1 and no
// encoding byte is emitted.
func (f *URLTextFrame) Encode() []byte {
	if f.null || f.Empty() {
		return nil
	}
	if f.unedited() {
		return slices.Clone(f.raw)
	}

	content := f.content
	if len(content) > MaxTagSize-headerSize {
		content = content[:MaxTagSize-headerSize]
	}
	return renderFrame(f.id, f.headerFlags(), encoding.EncodeLatin1(content))
}

// Equal reports whether other is a URL frame with the same identifier and
// target.
func (f *URLTextFrame) Equal(other Frame) bool {
	o, ok := other.(*URLTextFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null || o.null {
		return f.null == o.null
	}
	return f.content == o.content
}
