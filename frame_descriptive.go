package id3

import (
	"fmt"
	"slices"
	"strings"

	"github.com/simonhull/id3/internal/encoding"
)

// descOptions are the per-ID layout flags for descriptive text frames.
type descOptions struct {
	hasLanguage   bool // body carries a 3-byte language code
	latin1Text    bool // content is always Latin-1 (user-defined URL frames)
	noDescription bool // body carries no description field
}

// descOptionsFor returns the layout flags for a descriptive frame ID.
func descOptionsFor(id FrameID) descOptions {
	switch id.Name() {
	case FrameLyrics, FrameComment:
		return descOptions{hasLanguage: true}
	case FrameUserURL:
		return descOptions{latin1Text: true}
	case FrameTermsOfUse:
		return descOptions{hasLanguage: true, noDescription: true}
	default:
		return descOptions{}
	}
}

// DescriptiveTextFrame is a text frame carrying an optional description and,
// for some identifiers, a 3-byte language code. The description ends at a
// NUL terminator sized and aligned to the declared encoding.
type DescriptiveTextFrame struct {
	TextFrame
	description string
	language    string
	opts        descOptions
}

func newDescriptiveTextFrame(id FrameID, version byte, raw []byte) *DescriptiveTextFrame {
	f := &DescriptiveTextFrame{
		TextFrame: TextFrame{frameBase: newFrameBase(id, version, raw)},
		opts:      descOptionsFor(id),
	}
	f.read()
	return f
}

// NewDescriptiveTextFrame creates a descriptive text frame. The language is
// only kept for identifiers that carry one; an invalid language is replaced
// with "xxx" on write.
func NewDescriptiveTextFrame(id FrameID, content, description, language string) *DescriptiveTextFrame {
	f := &DescriptiveTextFrame{
		TextFrame: TextFrame{frameBase: frameBase{id: id, version: WriteVersion}},
		opts:      descOptionsFor(id),
	}
	f.content = content
	if !f.opts.noDescription {
		f.description = description
	}
	if f.opts.hasLanguage && len(language) == LanguageSize {
		f.language = language
	}
	f.edited = true
	return f
}

func (f *DescriptiveTextFrame) read() {
	f.description = ""
	f.language = ""
	f.content = ""

	body := f.body()
	if len(body) < 1 {
		f.null = true
		return
	}

	enc := body[0]
	rest := body[1:]

	if f.opts.hasLanguage {
		if len(rest) < LanguageSize {
			f.null = true
			return
		}
		f.language = string(rest[:LanguageSize])
		rest = rest[LanguageSize:]
	}

	if !f.opts.noDescription {
		var desc []byte
		desc, rest = encoding.Cut(rest, enc)
		f.description = encoding.Decode(enc, desc)
	}

	if f.opts.latin1Text {
		f.content = encoding.DecodeLatin1(rest)
	} else {
		f.content = encoding.Decode(enc, rest)
	}
	f.content = strings.TrimRight(f.content, "\x00")
	f.null = false
}

// Kind returns KindDescriptiveText.
func (f *DescriptiveTextFrame) Kind() FrameKind { return KindDescriptiveText }

// Description returns the frame description, or "" when the identifier
// carries none.
func (f *DescriptiveTextFrame) Description() string { return f.description }

// Language returns the 3-byte language code, or "" when the identifier
// carries none or the body omitted it.
func (f *DescriptiveTextFrame) Language() string { return f.language }

// SetDescription replaces the description. Identifiers without a
// description field ignore the call.
func (f *DescriptiveTextFrame) SetDescription(description string) {
	if f.opts.noDescription {
		return
	}
	f.description = description
	f.markEdited()
}

// SetLanguage replaces the language code. Values that are not exactly three
// bytes clear it; a required but absent language is written as "xxx".
func (f *DescriptiveTextFrame) SetLanguage(language string) {
	if !f.opts.hasLanguage {
		return
	}
	if len(language) != LanguageSize {
		language = ""
	}
	f.language = language
	f.markEdited()
}

// Revert restores all fields from the captured bytes.
func (f *DescriptiveTextFrame) Revert() {
	if f.raw != nil {
		f.read()
	}
	f.edited = false
}

// Encode serializes the frame. The description is written in UTF-8 with a
// single-byte terminator; the content follows in UTF-8, or Latin-1 when the
// identifier forces it. Content is trimmed to fit MaxTagSize, and the
// description is trimmed after it if the frame still overflows.
func (f *DescriptiveTextFrame) Encode() []byte {
	if f.null || f.Empty() {
		return nil
	}
	if f.unedited() {
		return slices.Clone(f.raw)
	}

	langSize := 0
	if f.opts.hasLanguage {
		langSize = LanguageSize
	}

	content := f.content
	description := f.description
	limit := MaxTagSize - headerSize - langSize - 2
	if len(content) > limit {
		content = content[:limit]
	}
	if !f.opts.noDescription && len(description) > limit-len(content) {
		description = description[:limit-len(content)]
	}

	body := make([]byte, 0, 1+langSize+len(description)+1+len(content))
	body = append(body, encoding.UTF8)
	if f.opts.hasLanguage {
		lang := f.language
		if len(lang) != LanguageSize {
			lang = "xxx"
		}
		body = append(body, lang...)
	}
	if !f.opts.noDescription {
		body = append(body, description...)
		body = append(body, 0x00)
	}
	if f.opts.latin1Text {
		body = append(body, encoding.EncodeLatin1(content)...)
	} else {
		body = append(body, content...)
	}
	return renderFrame(f.id, f.headerFlags(), body)
}

// Equal reports whether other is a descriptive text frame with the same
// identifier, content, description and language.
func (f *DescriptiveTextFrame) Equal(other Frame) bool {
	o, ok := other.(*DescriptiveTextFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null || o.null {
		return f.null == o.null
	}
	return f.content == o.content && f.description == o.description && f.language == o.language
}

func (f *DescriptiveTextFrame) String() string {
	if f.opts.hasLanguage {
		return fmt.Sprintf("%s (%s) [%s] %q: %q", f.id, f.id.Description(), f.language, f.description, f.content)
	}
	return fmt.Sprintf("%s (%s) %q: %q", f.id, f.id.Description(), f.description, f.content)
}
