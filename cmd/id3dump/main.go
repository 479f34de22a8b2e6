// Command id3dump prints every ID3 frame of the files given on the
// command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/simonhull/id3"
)

func main() {
	strict := flag.Bool("strict", false, "treat parse warnings as errors")
	headersOnly := flag.Bool("headers", false, "print tag headers only, skip frames")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: id3dump [-strict] [-headers] <file.mp3>...")
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	exitCode := 0
	for _, path := range flag.Args() {
		if err := dump(log, path, *strict, *headersOnly); err != nil {
			log.WithField("file", path).WithError(err).Error("failed to read tag")
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func dump(log *logrus.Logger, path string, strict, headersOnly bool) error {
	var opts []id3.Option
	if strict {
		opts = append(opts, id3.WithStrictParsing())
	}
	if headersOnly {
		opts = append(opts, id3.WithoutFrames())
	}

	tag, err := id3.Open(path, opts...)
	if err != nil {
		return err
	}

	for _, w := range tag.Warnings {
		log.WithField("file", path).Warn(w.String())
	}

	fmt.Printf("%s: %s\n", path, tag)
	if tag.Null() {
		return nil
	}

	if tag.Markers().V2 {
		info := tag.V2()
		fmt.Printf("  frame region: %d bytes, padding from offset %d\n", info.Size, info.PaddingStart)
	}
	for frame := range tag.All() {
		fmt.Printf("  %s\n", frame)
	}
	return nil
}
