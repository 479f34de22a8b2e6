package id3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	binutil "github.com/simonhull/id3/internal/binary"
)

// Markers records which ID3 markers were present in the source.
type Markers struct {
	V1         bool // 128-byte "TAG" trailer
	V11        bool // v1 trailer re-interpreted as v1.1 (track number)
	V1Extended bool // 227-byte "TAG+" trailer
	V2         bool // "ID3" header
}

// V2Info describes the ID3v2 header of the source.
type V2Info struct {
	MajorVersion byte
	MinorVersion byte

	Unsynchronisation bool
	ExtendedHeader    bool
	Experimental      bool
	Footer            bool

	// Size is the exclusive byte size of the frame region.
	Size uint32

	// PaddingStart is the file offset where padding begins. It equals the
	// end of the frame region when the frames fill it completely.
	PaddingStart int64
}

// Tag is the complete ID3 metadata of one byte source: the frames of the
// ID3v2 header region plus anything derived from ID3v1 trailers.
//
// Frames are kept in file order; frames whose identifier allows multiple
// instances accumulate, for all others the latest write wins. A Tag holds
// no reference to the byte source after parsing: every frame owns a copy
// of its bytes.
//
// A Tag is not internally synchronized. Concurrent readers are safe; any
// writer requires exclusive ownership of the Tag and its frames.
type Tag struct {
	path string
	size int64

	frames []Frame
	index  map[string][]int

	markers Markers
	v2      V2Info
	v1x     V1ExtendedInfo

	minPadding int

	// Warnings collected while parsing. Non-fatal issues never surface
	// as errors; inspect this slice for diagnostics.
	Warnings []Warning
}

// Open reads the ID3 metadata of the file at path.
//
// Missing or malformed tags are not errors: the returned Tag is null when
// no marker was found, and every recoverable parse problem degrades to a
// null or empty frame plus a Warning. Open fails only on I/O errors, or on
// the first warning when WithStrictParsing is set.
//
// Example:
//
//	tag, err := id3.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", tag.Artist(), tag.Title())
func Open(path string, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return openReader(f, stat.Size(), path, options)
}

// OpenContext opens a file with context support for cancellation.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenReader reads ID3 metadata from an arbitrary byte source of the given
// size. The source is borrowed for the duration of the call and never
// closed; the returned Tag holds no reference to it.
func OpenReader(r io.ReaderAt, size int64, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return openReader(r, size, "", options)
}

// OpenBytes reads ID3 metadata from an in-memory byte slice.
func OpenBytes(b []byte, opts ...Option) (*Tag, error) {
	return OpenReader(bytes.NewReader(b), int64(len(b)), opts...)
}

// OpenMany opens multiple files concurrently, using up to
// runtime.NumCPU() goroutines. Results are returned in input order.
//
// If any file fails to open, an error is returned.
func OpenMany(ctx context.Context, paths ...string) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*Tag, error) {
	t := &Tag{
		path:       path,
		size:       size,
		index:      make(map[string][]int),
		minPadding: options.padding,
	}

	sr := binutil.NewSafeReader(r, size, path)
	t.readV2(sr, options)
	t.readV1(sr, options)

	if options.ignoreWarnings {
		t.Warnings = nil
	}
	if options.strictParsing && len(t.Warnings) > 0 {
		return nil, &StrictParsingError{Path: path, Warning: t.Warnings[0]}
	}
	return t, nil
}

// warn records a non-fatal parse problem. The typed error carries the
// detail; only its message survives into the Warning.
func (t *Tag) warn(stage string, err error, offset int64) {
	t.Warnings = append(t.Warnings, Warning{Stage: stage, Message: err.Error(), Offset: offset})
}

// readV2 locates and parses the ID3v2 header and its frame region.
func (t *Tag) readV2(sr *binutil.SafeReader, options *openOptions) {
	if t.size < headerSize {
		return
	}

	buf, err := sr.Read(0, headerSize, "ID3v2 header")
	if err != nil {
		return
	}
	if string(buf[0:3]) != "ID3" {
		return
	}

	major, minor, flags := buf[3], buf[4], buf[5]
	if major < MinSupportedVersion || major > MaxSupportedVersion || minor != SupportedMinorVersion {
		t.warn("header", &UnsupportedFormatError{
			Path:   t.path,
			Reason: fmt.Sprintf("ID3v2 version 2.%d.%d", major, minor),
		}, 0)
		return
	}

	t.v2.MajorVersion = major
	t.v2.MinorVersion = minor
	t.v2.Unsynchronisation = flags&flagUnsynchronisation != 0
	t.v2.ExtendedHeader = flags&flagExtendedHeader != 0
	t.v2.Experimental = flags&flagExperimental != 0
	t.v2.Footer = flags&flagFooter != 0

	// In ID3v2.4 unsynchronisation is handled per frame; whole-tag
	// unsynchronisation on earlier versions is not supported.
	if t.v2.Unsynchronisation && major <= 3 {
		t.warn("header", &UnsupportedFormatError{
			Path:   t.path,
			Reason: fmt.Sprintf("whole-tag unsynchronisation on ID3v2.%d", major),
		}, 0)
		return
	}

	// The v2.4 and v2.2 header sizes are synchsafe. v2.3 declares a plain
	// size; when that interpretation overflows the file, fall back to the
	// synchsafe reading that some writers produce.
	size := int64(binutil.ByteInt(buf[6:10], major != 3))
	if major == 3 && headerSize+size > t.size {
		size = int64(binutil.ByteInt(buf[6:10], true))
	}

	totalSize := headerSize + size
	if t.v2.Footer {
		totalSize += headerSize
	}
	if totalSize > t.size {
		t.warn("header", &CorruptedTagError{
			Path:   t.path,
			Reason: fmt.Sprintf("declared tag size %d exceeds file size %d", totalSize, t.size),
		}, 0)
		return
	}

	t.markers.V2 = true
	t.v2.Size = uint32(size)

	frameStart := int64(headerSize)
	regionEnd := headerSize + size
	t.v2.PaddingStart = regionEnd

	if t.v2.ExtendedHeader {
		extBuf, err := sr.Read(frameStart, 4, "extended header size")
		if err != nil {
			t.warn("header", &CorruptedTagError{
				Path:   t.path,
				Reason: "truncated extended header",
				Offset: frameStart,
			}, frameStart)
			return
		}
		extSize := int64(binutil.ByteInt(extBuf, major >= 4))
		frameStart += 4 + extSize
	}

	if options.skipFrames {
		return
	}

	off := frameStart
	for off < regionEnd {
		frame, next := createFrame(sr, off, major, regionEnd)
		if frame == nil {
			// Entered padding or ran out of region.
			t.v2.PaddingStart = off
			break
		}
		if next == 0 {
			t.warn("frames", &CorruptedTagError{
				Path:   t.path,
				Reason: fmt.Sprintf("malformed frame %s", frame.ID()),
				Offset: off,
			}, off)
			t.v2.PaddingStart = off
			break
		}
		if !frame.Null() {
			t.addFrame(frame)
		}
		off = next
	}
}

// readV1 locates and parses the ID3v1 and ID3v1 Extended trailers. Frames
// derived from them are added only for identifiers the v2 region did not
// provide: v2 takes precedence.
func (t *Tag) readV1(sr *binutil.SafeReader, options *openOptions) {
	if t.size < v1Size {
		return
	}

	block, err := sr.Read(t.size-v1Size, v1Size, "ID3v1 trailer")
	if err != nil {
		return
	}
	trailer, ok := parseV1(block)
	if !ok {
		return
	}
	t.markers.V1 = true
	t.markers.V11 = trailer.isV11

	var ext v1ExtendedTrailer
	extOK := false
	if t.size >= v1Size+v1ExtendedSize {
		if extBlock, err := sr.Read(t.size-v1Size-v1ExtendedSize, v1ExtendedSize, "ID3v1 extended trailer"); err == nil {
			ext, extOK = parseV1Extended(extBlock)
		}
	}
	if extOK {
		t.markers.V1Extended = true
		t.v1x = ext.info
	}

	if options.skipFrames {
		return
	}

	// The extended trailer's 60-byte fields and literal genre override the
	// plain v1 fields, so they are added first.
	if extOK {
		t.addV1Frame(FrameTitle, ext.title)
		t.addV1Frame(FrameArtist, ext.artist)
		t.addV1Frame(FrameAlbum, ext.album)
		t.addV1Frame(FrameGenre, ext.genre)
	}

	t.addV1Frame(FrameTitle, trailer.title)
	t.addV1Frame(FrameArtist, trailer.artist)
	t.addV1Frame(FrameAlbum, trailer.album)
	t.addV1Frame(FrameYear, trailer.year)
	if trailer.isV11 {
		t.addV1Frame(FrameTrack, strconv.Itoa(int(trailer.track)))
	}
	t.addV1Frame(FrameGenre, V1Genre(int(trailer.genre)))
	t.addV1Frame(FrameComment, trailer.comment)
}

// addV1Frame adds a frame synthesized from an ID3v1 field, unless the
// identifier is already present or the content is empty.
func (t *Tag) addV1Frame(name FrameName, content string) {
	if content == "" {
		return
	}
	id := frameIDFromName(name)
	if len(t.index[id.String()]) > 0 {
		return
	}
	t.addFrame(newFrameForID(id, content))
}

// addFrame stores a frame under its identifier. Identifiers that do not
// allow multiple instances keep only the latest frame.
func (t *Tag) addFrame(f Frame) {
	key := f.ID().String()
	if positions := t.index[key]; len(positions) > 0 && !f.ID().AllowsMultiple() {
		t.frames[positions[len(positions)-1]] = f
		return
	}
	t.index[key] = append(t.index[key], len(t.frames))
	t.frames = append(t.frames, f)
}

// Null reports whether no ID3 marker was found in the source.
func (t *Tag) Null() bool {
	return !t.markers.V1 && !t.markers.V11 && !t.markers.V1Extended && !t.markers.V2
}

// Markers returns which ID3 markers were present in the source.
func (t *Tag) Markers() Markers { return t.markers }

// V2 returns the parsed ID3v2 header information. The zero value is
// returned when the source carried no v2 tag.
func (t *Tag) V2() V2Info { return t.v2 }

// V1Extended returns the ID3v1 Extended fields that have no frame
// equivalent. The zero value is returned when no "TAG+" trailer was found.
func (t *Tag) V1Extended() V1ExtendedInfo { return t.v1x }

// Path returns the file path the tag was read from, if any.
func (t *Tag) Path() string { return t.path }

// Len returns the number of frames held by the tag.
func (t *Tag) Len() int { return len(t.frames) }

// All returns an iterator over the frames in file order.
//
//	for frame := range tag.All() {
//		fmt.Println(frame)
//	}
func (t *Tag) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for _, f := range t.frames {
			if !yield(f) {
				return
			}
		}
	}
}

// Frame returns the first frame with the given 4-character identifier, or
// nil if none is present.
func (t *Tag) Frame(id string) Frame {
	positions := t.index[id]
	if len(positions) == 0 {
		return nil
	}
	return t.frames[positions[0]]
}

// Frames returns every frame with the given 4-character identifier, in
// file order.
func (t *Tag) Frames(id string) []Frame {
	positions := t.index[id]
	if len(positions) == 0 {
		return nil
	}
	out := make([]Frame, len(positions))
	for i, pos := range positions {
		out[i] = t.frames[pos]
	}
	return out
}

// Exists reports whether a frame with the given identifier is present.
func (t *Tag) Exists(id string) bool {
	return len(t.index[id]) > 0
}

// AddFrame adds a frame to the tag. For identifiers that do not allow
// multiple instances the frame replaces any existing one.
func (t *Tag) AddFrame(f Frame) {
	if f == nil || f.Null() {
		return
	}
	t.addFrame(f)
}

// RemoveFrames removes every frame with the given identifier.
func (t *Tag) RemoveFrames(id string) {
	if len(t.index[id]) == 0 {
		return
	}

	kept := t.frames[:0]
	for _, f := range t.frames {
		if f.ID().String() != id {
			kept = append(kept, f)
		}
	}
	t.frames = kept

	t.index = make(map[string][]int, len(t.frames))
	for i, f := range t.frames {
		key := f.ID().String()
		t.index[key] = append(t.index[key], i)
	}
}

// Revert restores every frame to its captured bytes, discarding edits.
func (t *Tag) Revert() {
	for _, f := range t.frames {
		f.Revert()
	}
}

// String returns a human-readable summary of the tag.
func (t *Tag) String() string {
	if t.Null() {
		return "no ID3 tag"
	}

	markers := ""
	if t.markers.V2 {
		markers = fmt.Sprintf("ID3v2.%d.%d", t.v2.MajorVersion, t.v2.MinorVersion)
	}
	if t.markers.V1 {
		v1 := "ID3v1"
		if t.markers.V11 {
			v1 = "ID3v1.1"
		}
		if t.markers.V1Extended {
			v1 += "+Extended"
		}
		if markers != "" {
			markers += ", "
		}
		markers += v1
	}
	return fmt.Sprintf("%s: %d frames", markers, len(t.frames))
}
