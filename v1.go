package id3

import (
	"strings"

	"github.com/simonhull/id3/internal/encoding"
)

// ID3v1 trailer sizes in bytes.
const (
	v1Size         = 128
	v1ExtendedSize = 227
)

// v1Trailer holds the fields of an ID3v1 or ID3v1.1 trailer.
type v1Trailer struct {
	title   string
	artist  string
	album   string
	year    string
	comment string
	genre   byte
	track   byte
	isV11   bool
}

// parseV1 parses a 128-byte block as an ID3v1 trailer. It reports false
// when the block does not start with "TAG".
func parseV1(b []byte) (v1Trailer, bool) {
	if len(b) < v1Size || string(b[0:3]) != "TAG" {
		return v1Trailer{}, false
	}

	t := v1Trailer{
		title:  v1Field(b[3:33]),
		artist: v1Field(b[33:63]),
		album:  v1Field(b[63:93]),
		year:   v1Field(b[93:97]),
		genre:  b[127],
	}

	// A zero byte at position 125 re-interprets the trailer as ID3v1.1,
	// carving a track number out of the last comment byte.
	if b[125] == 0 {
		t.isV11 = true
		t.track = b[126]
		t.comment = v1Field(b[97:125])
	} else {
		t.comment = v1Field(b[97:127])
	}

	return t, true
}

// V1ExtendedInfo holds the fields of an ID3v1 Extended trailer that have no
// frame equivalent.
type V1ExtendedInfo struct {
	// Speed is the playback speed indicator (1 slow to 4 hardcore).
	Speed byte

	// StartTime and EndTime of the music as "mmm:ss".
	StartTime string
	EndTime   string
}

// v1ExtendedTrailer holds the fields of an ID3v1 Extended trailer.
type v1ExtendedTrailer struct {
	title  string
	artist string
	album  string
	genre  string
	info   V1ExtendedInfo
}

// parseV1Extended parses a 227-byte block as an ID3v1 Extended trailer. It
// reports false when the block does not start with "TAG+".
func parseV1Extended(b []byte) (v1ExtendedTrailer, bool) {
	if len(b) < v1ExtendedSize || string(b[0:4]) != "TAG+" {
		return v1ExtendedTrailer{}, false
	}

	return v1ExtendedTrailer{
		title:  v1Field(b[4:64]),
		artist: v1Field(b[64:124]),
		album:  v1Field(b[124:184]),
		genre:  v1Field(b[185:215]),
		info: V1ExtendedInfo{
			Speed:     b[184],
			StartTime: v1Field(b[215:221]),
			EndTime:   v1Field(b[221:227]),
		},
	}, true
}

// v1Field decodes a fixed-width ID3v1 field: Latin-1 text terminated by the
// first NUL, with trailing padding stripped.
func v1Field(b []byte) string {
	field, _ := encoding.Cut(b, encoding.Latin1)
	return strings.TrimRight(encoding.DecodeLatin1(field), " \x00")
}
