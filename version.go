package id3

// Version is the semantic version of the id3 library.
const Version = "0.1.0"
