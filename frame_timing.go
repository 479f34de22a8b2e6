package id3

import (
	"fmt"
	"slices"

	binutil "github.com/simonhull/id3/internal/binary"
)

// TimestampFormat selects the unit of event timing timestamps.
type TimestampFormat byte

const (
	// TimestampMPEGFrames counts timestamps in MPEG frames.
	TimestampMPEGFrames TimestampFormat = 0x01
	// TimestampMilliseconds counts timestamps in absolute milliseconds.
	TimestampMilliseconds TimestampFormat = 0x02
)

// String returns a human-readable name for the timestamp format.
func (t TimestampFormat) String() string {
	switch t {
	case TimestampMPEGFrames:
		return "MPEG frames"
	case TimestampMilliseconds:
		return "milliseconds"
	default:
		return fmt.Sprintf("TimestampFormat(%d)", byte(t))
	}
}

// TimedEvent is one (event code, timestamp) pair of an event timing frame.
type TimedEvent struct {
	Code      byte
	Timestamp uint32
}

// EventTimingFrame is an event timing codes frame (ETCO): a timestamp
// format byte followed by (event code, 4-byte timestamp) pairs.
type EventTimingFrame struct {
	frameBase
	format TimestampFormat
	events []TimedEvent
}

func newEventTimingFrame(id FrameID, version byte, raw []byte) *EventTimingFrame {
	f := &EventTimingFrame{frameBase: newFrameBase(id, version, raw)}
	f.read()
	return f
}

// NewEventTimingFrame creates an event timing frame with the given
// timestamp format.
func NewEventTimingFrame(format TimestampFormat, events ...TimedEvent) *EventTimingFrame {
	f := &EventTimingFrame{
		frameBase: frameBase{id: frameIDFromName(FrameEventTimingCodes), version: WriteVersion},
		format:    format,
		events:    slices.Clone(events),
	}
	f.edited = true
	return f
}

func (f *EventTimingFrame) read() {
	f.format = TimestampMilliseconds
	f.events = nil

	body := f.body()
	if len(body) == 0 {
		f.null = true
		return
	}

	f.format = TimestampFormat(body[0])
	rest := body[1:]
	for len(rest) >= 5 {
		f.events = append(f.events, TimedEvent{
			Code:      rest[0],
			Timestamp: uint32(binutil.ByteInt(rest[1:5], false)),
		})
		rest = rest[5:]
	}
	f.null = false
}

// Kind returns KindEventTiming.
func (f *EventTimingFrame) Kind() FrameKind { return KindEventTiming }

// Empty reports whether the frame holds no events.
func (f *EventTimingFrame) Empty() bool { return len(f.events) == 0 }

// Format returns the timestamp format.
func (f *EventTimingFrame) Format() TimestampFormat { return f.format }

// Events returns the timed events in file order.
func (f *EventTimingFrame) Events() []TimedEvent { return slices.Clone(f.events) }

// Timestamp returns the timestamp of the first event with the given code.
func (f *EventTimingFrame) Timestamp(code byte) (uint32, bool) {
	for _, e := range f.events {
		if e.Code == code {
			return e.Timestamp, true
		}
	}
	return 0, false
}

// SetTimestamp replaces the timestamp for the given event code, appending
// a new event when the code is not present.
func (f *EventTimingFrame) SetTimestamp(code byte, timestamp uint32) {
	for i, e := range f.events {
		if e.Code == code {
			f.events[i].Timestamp = timestamp
			f.markEdited()
			return
		}
	}
	f.events = append(f.events, TimedEvent{Code: code, Timestamp: timestamp})
	f.markEdited()
}

// Revert restores the events from the captured bytes.
func (f *EventTimingFrame) Revert() {
	if f.raw != nil {
		f.read()
	}
	f.edited = false
}

// Encode serializes the frame: format byte then the event pairs in order.
func (f *EventTimingFrame) Encode() []byte {
	if f.null || f.Empty() {
		return nil
	}
	if f.unedited() {
		return slices.Clone(f.raw)
	}

	body := make([]byte, 0, 1+len(f.events)*5)
	body = append(body, byte(f.format))
	for _, e := range f.events {
		body = append(body, e.Code)
		body = append(body, binutil.IntBytes(uint64(e.Timestamp), 4, false)...)
	}
	return renderFrame(f.id, f.headerFlags(), body)
}

// Equal reports whether other is an event timing frame with the same
// format and events.
func (f *EventTimingFrame) Equal(other Frame) bool {
	o, ok := other.(*EventTimingFrame)
	if !ok || f.id != o.id {
		return false
	}
	if f.null || o.null {
		return f.null == o.null
	}
	return f.format == o.format && slices.Equal(f.events, o.events)
}

func (f *EventTimingFrame) String() string {
	return fmt.Sprintf("%s (%s): %d events in %s", f.id, f.id.Description(), len(f.events), f.format)
}
