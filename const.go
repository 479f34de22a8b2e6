package id3

// ID3v2 protocol constants.
const (
	// MaxTagSize is the hard ceiling on a written tag or frame. The size
	// field is four synchsafe bytes, so the value is 2^28 - 1 (~256MiB).
	MaxTagSize = 1<<28 - 1

	// LanguageSize is the byte length of the language field carried by
	// comment, lyrics and terms-of-use frames.
	LanguageSize = 3

	// WriteVersion is the ID3v2 major version produced on serialization.
	WriteVersion = 4

	// MinSupportedVersion and MaxSupportedVersion bound the ID3v2 major
	// versions accepted on read.
	MinSupportedVersion = 2
	MaxSupportedVersion = 4

	// SupportedMinorVersion is the only accepted ID3v2 minor version.
	SupportedMinorVersion = 0
)

// headerSize is the byte length of the ID3v2 tag header and of the
// v2.3/v2.4 frame header. ID3v2.2 frame headers are shorter.
const (
	headerSize         = 10
	v22FrameHeaderSize = 6
)

// ID3v2 tag header flags.
const (
	flagUnsynchronisation = 0x80
	flagExtendedHeader    = 0x40
	flagExperimental      = 0x20
	flagFooter            = 0x10
)

// frameFlagDiscardUnknown is the "discard frame on tag alter if unknown"
// bit in the first frame flag byte.
const frameFlagDiscardUnknown = 0x40
