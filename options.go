package id3

// Option configures behavior when opening tags.
//
// Options use the functional options pattern:
//
//	tag, err := id3.Open("song.mp3",
//	    id3.WithStrictParsing(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening tags.
type openOptions struct {
	strictParsing  bool // Fail on any warning
	skipFrames     bool // Read headers and markers only
	ignoreWarnings bool // Suppress all warnings
	padding        int  // Minimum padding appended on serialization
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default the parser degrades gracefully: malformed frames become null
// frames and undecodable text becomes empty. Header problems and malformed
// frames are recorded in Tag.Warnings; undecodable text is not. With strict
// parsing enabled, the first warning becomes a *StrictParsingError.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithoutFrames reads only the tag markers and headers, skipping the frame
// region. Accessors on the resulting Tag return neutral values.
//
// Use this to probe which tag versions a file carries without paying for
// frame parsing.
func WithoutFrames() Option {
	return func(o *openOptions) {
		o.skipFrames = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithPadding sets the minimum padding, in bytes, appended after the frame
// region when the tag is serialized. Padding read from the source file is
// preserved when it is larger.
func WithPadding(n int) Option {
	return func(o *openOptions) {
		if n > 0 {
			o.padding = n
		}
	}
}
