package id3

// FrameKind categorizes a frame by the shape of its body.
type FrameKind uint8

const (
	KindUnknown FrameKind = iota
	KindText
	KindNumericalText
	KindDescriptiveText
	KindURL
	KindPicture
	KindPlayCount
	KindPopularimeter
	KindEventTiming
)

// String returns a human-readable name for the frame kind.
func (k FrameKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumericalText:
		return "numerical text"
	case KindDescriptiveText:
		return "descriptive text"
	case KindURL:
		return "URL"
	case KindPicture:
		return "picture"
	case KindPlayCount:
		return "play count"
	case KindPopularimeter:
		return "popularimeter"
	case KindEventTiming:
		return "event timing"
	default:
		return "unknown"
	}
}

// FrameName enumerates the canonical ID3v2.3/2.4 frame identifiers.
// FrameUnknownFrame is the sentinel for identifiers absent from the registry.
type FrameName uint8

const (
	FrameAudioEncryption        FrameName = iota // AENC
	FrameAttachedPicture                         // APIC
	FrameAudioSeekPointIndex                     // ASPI
	FrameComment                                 // COMM
	FrameCommercial                              // COMR
	FrameEncryptionRegistration                  // ENCR
	FrameEqualization2                           // EQU2
	FrameEqualization                            // EQUA
	FrameEventTimingCodes                        // ETCO
	FrameEncapsulatedObject                      // GEOB
	FrameGroupRegistration                       // GRID
	FrameInvolvedPeople                          // IPLS
	FrameLinkedInformation                       // LINK
	FrameMusicCDIdentifier                       // MCDI
	FrameLocationLookupTable                     // MLLT
	FrameOwnership                               // OWNE
	FramePlayCount                               // PCNT
	FramePopularimeter                           // POPM
	FramePositionSync                            // POSS
	FramePrivate                                 // PRIV
	FrameRecommendedBufferSize                   // RBUF
	FrameRelativeVolume2                         // RVA2
	FrameRelativeVolume                          // RVAD
	FrameReverb                                  // RVRB
	FrameSeek                                    // SEEK
	FrameSignature                               // SIGN
	FrameSynchronizedLyrics                      // SYLT
	FrameSynchronizedTempo                       // SYTC
	FrameAlbum                                   // TALB
	FrameBPM                                     // TBPM
	FrameComposer                                // TCOM
	FrameGenre                                   // TCON
	FrameCopyright                               // TCOP
	FrameDate                                    // TDAT
	FrameEncodingTime                            // TDEN
	FramePlaylistDelay                           // TDLY
	FrameOriginalReleaseTime                     // TDOR
	FrameRecordingTime                           // TDRC
	FrameReleaseTime                             // TDRL
	FrameTaggingTime                             // TDTG
	FrameEncodedBy                               // TENC
	FrameLyricist                                // TEXT
	FrameFileType                                // TFLT
	FrameInvolvedPeopleList                      // TIPL
	FrameTime                                    // TIME
	FrameContentGroup                            // TIT1
	FrameTitle                                   // TIT2
	FrameSubtitle                                // TIT3
	FrameInitialKey                              // TKEY
	FrameLanguage                                // TLAN
	FrameLength                                  // TLEN
	FrameMusicianCredits                         // TMCL
	FrameMediaType                               // TMED
	FrameMood                                    // TMOO
	FrameOriginalAlbum                           // TOAL
	FrameOriginalFilename                        // TOFN
	FrameOriginalLyricist                        // TOLY
	FrameOriginalArtist                          // TOPE
	FrameOriginalReleaseYear                     // TORY
	FrameFileOwner                               // TOWN
	FrameArtist                                  // TPE1
	FrameAlbumArtist                             // TPE2
	FrameConductor                               // TPE3
	FrameRemixer                                 // TPE4
	FrameDisc                                    // TPOS
	FrameProducedNotice                          // TPRO
	FramePublisher                               // TPUB
	FrameTrack                                   // TRCK
	FrameRecordingDates                          // TRDA
	FrameRadioStation                            // TRSN
	FrameRadioStationOwner                       // TRSO
	FrameAlbumArtistSort                         // TSO2
	FrameAlbumSort                               // TSOA
	FrameComposerSort                            // TSOC
	FramePerformerSort                           // TSOP
	FrameTitleSort                               // TSOT
	FrameSize                                    // TSIZ
	FrameISRC                                    // TSRC
	FrameEncodingSettings                        // TSSE
	FrameSetSubtitle                             // TSST
	FrameUserText                                // TXXX
	FrameYear                                    // TYER
	FrameUniqueFileID                            // UFID
	FrameTermsOfUse                              // USER
	FrameLyrics                                  // USLT
	FrameCommercialURL                           // WCOM
	FrameCopyrightURL                            // WCOP
	FrameAudioFileURL                            // WOAF
	FrameArtistURL                               // WOAR
	FrameAudioSourceURL                          // WOAS
	FrameRadioStationURL                         // WORS
	FramePaymentURL                              // WPAY
	FramePublisherURL                            // WPUB
	FrameUserURL                                 // WXXX
	FrameUnknownFrame                            // XXXX
)

// frameInfo carries the registry attributes for one canonical frame ID.
type frameInfo struct {
	id       string
	kind     FrameKind
	multiple bool
	desc     string
}

// frameTable is indexed by FrameName. Order matters.
var frameTable = [...]frameInfo{
	FrameAudioEncryption:        {"AENC", KindUnknown, true, "Audio encryption"},
	FrameAttachedPicture:        {"APIC", KindPicture, true, "Attached picture"},
	FrameAudioSeekPointIndex:    {"ASPI", KindUnknown, false, "Audio seek point index"},
	FrameComment:                {"COMM", KindDescriptiveText, true, "Comment"},
	FrameCommercial:             {"COMR", KindUnknown, true, "Commercial frame"},
	FrameEncryptionRegistration: {"ENCR", KindUnknown, true, "Encryption method registration"},
	FrameEqualization2:          {"EQU2", KindUnknown, true, "Equalization (2)"},
	FrameEqualization:           {"EQUA", KindUnknown, false, "Equalization"},
	FrameEventTimingCodes:       {"ETCO", KindEventTiming, false, "Event timing codes"},
	FrameEncapsulatedObject:     {"GEOB", KindUnknown, true, "General encapsulated object"},
	FrameGroupRegistration:      {"GRID", KindUnknown, true, "Group identification registration"},
	FrameInvolvedPeople:         {"IPLS", KindText, false, "Involved people list"},
	FrameLinkedInformation:      {"LINK", KindUnknown, true, "Linked information"},
	FrameMusicCDIdentifier:      {"MCDI", KindUnknown, false, "Music CD identifier"},
	FrameLocationLookupTable:    {"MLLT", KindUnknown, false, "MPEG location lookup table"},
	FrameOwnership:              {"OWNE", KindUnknown, false, "Ownership frame"},
	FramePlayCount:              {"PCNT", KindPlayCount, false, "Play counter"},
	FramePopularimeter:          {"POPM", KindPopularimeter, true, "Popularimeter"},
	FramePositionSync:           {"POSS", KindUnknown, false, "Position synchronisation frame"},
	FramePrivate:                {"PRIV", KindUnknown, true, "Private frame"},
	FrameRecommendedBufferSize:  {"RBUF", KindUnknown, false, "Recommended buffer size"},
	FrameRelativeVolume2:        {"RVA2", KindUnknown, true, "Relative volume adjustment (2)"},
	FrameRelativeVolume:         {"RVAD", KindUnknown, false, "Relative volume adjustment"},
	FrameReverb:                 {"RVRB", KindUnknown, false, "Reverb"},
	FrameSeek:                   {"SEEK", KindUnknown, false, "Seek frame"},
	FrameSignature:              {"SIGN", KindUnknown, true, "Signature frame"},
	FrameSynchronizedLyrics:     {"SYLT", KindUnknown, true, "Synchronised lyrics"},
	FrameSynchronizedTempo:      {"SYTC", KindUnknown, false, "Synchronised tempo codes"},
	FrameAlbum:                  {"TALB", KindText, false, "Album"},
	FrameBPM:                    {"TBPM", KindNumericalText, false, "Beats per minute"},
	FrameComposer:               {"TCOM", KindText, false, "Composer"},
	FrameGenre:                  {"TCON", KindText, false, "Content type"},
	FrameCopyright:              {"TCOP", KindText, false, "Copyright message"},
	FrameDate:                   {"TDAT", KindNumericalText, false, "Date"},
	FrameEncodingTime:           {"TDEN", KindText, false, "Encoding time"},
	FramePlaylistDelay:          {"TDLY", KindNumericalText, false, "Playlist delay"},
	FrameOriginalReleaseTime:    {"TDOR", KindText, false, "Original release time"},
	FrameRecordingTime:          {"TDRC", KindText, false, "Recording time"},
	FrameReleaseTime:            {"TDRL", KindText, false, "Release time"},
	FrameTaggingTime:            {"TDTG", KindText, false, "Tagging time"},
	FrameEncodedBy:              {"TENC", KindText, false, "Encoded by"},
	FrameLyricist:               {"TEXT", KindText, false, "Lyricist"},
	FrameFileType:               {"TFLT", KindText, false, "File type"},
	FrameInvolvedPeopleList:     {"TIPL", KindText, false, "Involved people list"},
	FrameTime:                   {"TIME", KindNumericalText, false, "Time"},
	FrameContentGroup:           {"TIT1", KindText, false, "Content group description"},
	FrameTitle:                  {"TIT2", KindText, false, "Title"},
	FrameSubtitle:               {"TIT3", KindText, false, "Subtitle"},
	FrameInitialKey:             {"TKEY", KindText, false, "Initial key"},
	FrameLanguage:               {"TLAN", KindText, false, "Language"},
	FrameLength:                 {"TLEN", KindNumericalText, false, "Length"},
	FrameMusicianCredits:        {"TMCL", KindText, false, "Musician credits list"},
	FrameMediaType:              {"TMED", KindText, false, "Media type"},
	FrameMood:                   {"TMOO", KindText, false, "Mood"},
	FrameOriginalAlbum:          {"TOAL", KindText, false, "Original album"},
	FrameOriginalFilename:       {"TOFN", KindText, false, "Original filename"},
	FrameOriginalLyricist:       {"TOLY", KindText, false, "Original lyricist"},
	FrameOriginalArtist:         {"TOPE", KindText, false, "Original artist"},
	FrameOriginalReleaseYear:    {"TORY", KindNumericalText, false, "Original release year"},
	FrameFileOwner:              {"TOWN", KindText, false, "File owner"},
	FrameArtist:                 {"TPE1", KindText, false, "Lead performer"},
	FrameAlbumArtist:            {"TPE2", KindText, false, "Band/orchestra/accompaniment"},
	FrameConductor:              {"TPE3", KindText, false, "Conductor"},
	FrameRemixer:                {"TPE4", KindText, false, "Interpreted or remixed by"},
	FrameDisc:                   {"TPOS", KindText, false, "Part of a set"},
	FrameProducedNotice:         {"TPRO", KindText, false, "Produced notice"},
	FramePublisher:              {"TPUB", KindText, false, "Publisher"},
	FrameTrack:                  {"TRCK", KindText, false, "Track number"},
	FrameRecordingDates:         {"TRDA", KindText, false, "Recording dates"},
	FrameRadioStation:           {"TRSN", KindText, false, "Internet radio station name"},
	FrameRadioStationOwner:      {"TRSO", KindText, false, "Internet radio station owner"},
	FrameAlbumArtistSort:        {"TSO2", KindText, false, "Album artist sort order"},
	FrameAlbumSort:              {"TSOA", KindText, false, "Album sort order"},
	FrameComposerSort:           {"TSOC", KindText, false, "Composer sort order"},
	FramePerformerSort:          {"TSOP", KindText, false, "Performer sort order"},
	FrameTitleSort:              {"TSOT", KindText, false, "Title sort order"},
	FrameSize:                   {"TSIZ", KindText, false, "Size"},
	FrameISRC:                   {"TSRC", KindText, false, "ISRC"},
	FrameEncodingSettings:       {"TSSE", KindText, false, "Software/hardware encoding settings"},
	FrameSetSubtitle:            {"TSST", KindText, false, "Set subtitle"},
	FrameUserText:               {"TXXX", KindDescriptiveText, true, "User defined text"},
	FrameYear:                   {"TYER", KindNumericalText, false, "Year"},
	FrameUniqueFileID:           {"UFID", KindUnknown, true, "Unique file identifier"},
	FrameTermsOfUse:             {"USER", KindDescriptiveText, true, "Terms of use"},
	FrameLyrics:                 {"USLT", KindDescriptiveText, true, "Unsynchronised lyrics"},
	FrameCommercialURL:          {"WCOM", KindURL, true, "Commercial information"},
	FrameCopyrightURL:           {"WCOP", KindURL, false, "Copyright information"},
	FrameAudioFileURL:           {"WOAF", KindURL, false, "Official audio file webpage"},
	FrameArtistURL:              {"WOAR", KindURL, true, "Official artist webpage"},
	FrameAudioSourceURL:         {"WOAS", KindURL, false, "Official audio source webpage"},
	FrameRadioStationURL:        {"WORS", KindURL, false, "Official internet radio station homepage"},
	FramePaymentURL:             {"WPAY", KindURL, false, "Payment"},
	FramePublisherURL:           {"WPUB", KindURL, false, "Publisher's official webpage"},
	FrameUserURL:                {"WXXX", KindDescriptiveText, true, "User defined URL"},
	FrameUnknownFrame:           {"XXXX", KindUnknown, false, "Unknown frame"},
}

// frameNameByID maps a canonical 4-character frame ID to its enum value.
var frameNameByID = make(map[string]FrameName, len(frameTable))

// v22FrameIDs maps ID3v2.2 3-character frame IDs to their v2.4 equivalents.
var v22FrameIDs = map[string]string{
	"BUF": "RBUF",
	"COM": "COMM",
	"CNT": "PCNT",
	"CRA": "AENC",
	"ETC": "ETCO",
	"EQU": "EQUA",
	"GEO": "GEOB",
	"IPL": "TIPL",
	"LNK": "LINK",
	"MLL": "MLLT",
	"PIC": "APIC",
	"POP": "POPM",
	"RVA": "RVAD",
	"REV": "RVRB",
	"STC": "SYTC",
	"SLT": "SYLT",
	"TT1": "TIT1",
	"TT2": "TIT2",
	"TT3": "TIT3",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TP3": "TPE3",
	"TP4": "TPE4",
	"TCM": "TCOM",
	"TXT": "TOLY",
	"TLA": "TLAN",
	"TCO": "TCON",
	"TAL": "TALB",
	"TPA": "TPOS",
	"TRK": "TRCK",
	"TRC": "TSRC",
	"TYE": "TYER",
	"TDA": "TDAT",
	"TIM": "TIME",
	"TRD": "TRDA",
	"TMT": "TMED",
	"TBP": "TBPM",
	"TEN": "TENC",
	"TSS": "TSSE",
	"TOF": "TOFN",
	"TLE": "TLEN",
	"TDY": "TDLY",
	"TKE": "TKEY",
	"TOT": "TOAL",
	"TOA": "TOPE",
	"TOL": "TOLY",
	"TOR": "TDOR",
	"TXX": "TXXX",
	"ULT": "USLT",
	"WAF": "WOAF",
	"WAR": "WOAR",
	"WCM": "WCOM",
	"WCP": "WCOP",
	"WPB": "WPUB",
	"WXX": "WXXX",
}

func init() {
	for name, info := range frameTable {
		frameNameByID[info.id] = FrameName(name)
	}
}

// FrameID is a canonical frame identifier: an enum value from the closed set
// of known frames plus the literal 4-character form. Known IDs compare by
// enum; two unknown IDs are equal only when their literal forms match.
type FrameID struct {
	name FrameName
	str  string
}

// NewFrameID resolves a 4-character frame identifier. Identifiers absent
// from the registry yield an unknown FrameID preserving the literal form.
func NewFrameID(id string) FrameID {
	if name, ok := frameNameByID[id]; ok {
		return FrameID{name: name, str: id}
	}
	return FrameID{name: FrameUnknownFrame, str: id}
}

// frameIDForVersion resolves a raw on-disk frame identifier for the given
// ID3v2 major version, translating 3-character v2.2 IDs to their v2.4 forms.
func frameIDForVersion(id string, version byte) FrameID {
	if version > 2 {
		return NewFrameID(id)
	}
	v4, ok := v22FrameIDs[id]
	if !ok {
		return FrameID{name: FrameUnknownFrame, str: "XXXX"}
	}
	return NewFrameID(v4)
}

// frameIDFromName builds a FrameID from its enum value.
func frameIDFromName(name FrameName) FrameID {
	if int(name) >= len(frameTable) {
		name = FrameUnknownFrame
	}
	return FrameID{name: name, str: frameTable[name].id}
}

// info returns the registry attributes. The zero FrameID reads as unknown.
func (id FrameID) info() frameInfo {
	if id.str == "" {
		return frameTable[FrameUnknownFrame]
	}
	return frameTable[id.name]
}

// String returns the 4-character textual form.
func (id FrameID) String() string {
	if id.str == "" {
		return frameTable[FrameUnknownFrame].id
	}
	return id.str
}

// Name returns the enum value of the identifier.
func (id FrameID) Name() FrameName {
	if id.str == "" {
		return FrameUnknownFrame
	}
	return id.name
}

// Unknown reports whether the identifier is absent from the registry.
func (id FrameID) Unknown() bool {
	return id.Name() == FrameUnknownFrame
}

// Kind returns the registered frame category of the identifier.
func (id FrameID) Kind() FrameKind {
	return id.info().kind
}

// AllowsMultiple reports whether a tag may hold more than one frame with
// this identifier.
func (id FrameID) AllowsMultiple() bool {
	return id.info().multiple
}

// Description returns the human-readable description of the identifier.
func (id FrameID) Description() string {
	return id.info().desc
}
