// Package id3 reads and writes ID3 metadata embedded in audio files.
//
// id3 parses the typed, self-delimited frames of ID3v2.2, v2.3 and v2.4
// tags as well as the ID3v1, v1.1 and v1-Extended trailers, and serializes
// tags back to ID3v2.4.
//
// # Quick Start
//
// Reading metadata from a file:
//
//	tag, err := id3.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s\n", tag.Artist(), tag.Title())
//
// # Philosophy
//
// id3 embodies three core principles:
//
// 1. Graceful Degradation: corrupted tags return partial data plus
// warnings, not errors. A malformed frame becomes a null frame; an
// undecodable string becomes an empty one. No parse problem escapes the
// Tag boundary.
//
// 2. Normalized Text: every frame exposes its payload as UTF-8 regardless
// of the on-disk encoding (Latin-1, UTF-16 with or without BOM, UTF-8).
//
// 3. Faithful Round Trips: frames keep the bytes they were read from.
// Re-serializing an unedited ID3v2.4 tag reproduces it byte for byte,
// unknown frames included; unknown frames flagged discard-if-unknown are
// dropped.
//
// # Architecture
//
// The library is a pure in-memory codec over a bounded byte source:
//
//	[Tag]              - Entry point with Open(), accessors, serialization
//	  ├─ [Frame]       - Typed frame variants (text, picture, counters, ...)
//	  ├─ [FrameID]     - Canonical identifier registry, v2.2 translation
//	  └─ internal/     - Bounds-checked reading, synchsafe integers,
//	                     text encoding conversion
//
// Frames read from older tag versions are normalized at parse time:
// ID3v2.2 identifiers are translated to their v2.4 forms and their headers
// rebuilt, so downstream code sees one uniform representation.
//
// # Error Handling
//
// id3 distinguishes between fatal errors and warnings:
//
//   - Fatal errors prevent reading entirely (file not found, I/O failure)
//   - Warnings indicate non-fatal issues (unsupported versions, malformed
//     frames, oversized declared sizes)
//
// Check tag.Warnings for issues encountered during parsing, or use
// WithStrictParsing to turn the first warning into an error.
//
// # Concurrency
//
// Tags and frames are plain values with no internal synchronization.
// Concurrent readers are safe; writers need exclusive ownership. Use
// OpenMany to parse many files in parallel.
package id3
