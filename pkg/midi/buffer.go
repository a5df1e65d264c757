// Package midi holds the per-block event buffer handed to engines. Messages
// use the gomidi wire representation.
package midi

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
)

// DefaultCapacity is the number of events a Buffer holds when none is given.
const DefaultCapacity = 512

// allNotesOffController is the channel mode message that silences a channel.
const allNotesOffController = 123

// allNotesOff holds one All Notes Off per channel, built once so that adding
// them never allocates.
var allNotesOff = func() (msgs [16]midi.Message) {
	for ch := range msgs {
		msgs[ch] = midi.ControlChange(uint8(ch), allNotesOffController, 0)
	}
	return msgs
}()

// maxMessageSize bounds the bytes stored per event. Longer messages (sysex)
// are dropped.
const maxMessageSize = 16

// Event is a MIDI message placed at a sample offset inside the current block.
type Event struct {
	Offset int32
	Msg    midi.Message
}

// Buffer is a fixed-capacity event list. All storage is allocated up front so
// Add and Clear never allocate on the audio thread.
type Buffer struct {
	events []Event
	data   []byte
	used   int
	sorted bool
}

// NewBuffer creates a buffer holding at most capacity events.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		events: make([]Event, 0, capacity),
		data:   make([]byte, capacity*maxMessageSize),
		sorted: true,
	}
}

// Add copies msg into the buffer at the given offset. It returns false when
// the buffer is full or the message is empty or too long.
func (b *Buffer) Add(offset int32, msg midi.Message) bool {
	if len(msg) == 0 || len(msg) > maxMessageSize {
		return false
	}
	if len(b.events) == cap(b.events) {
		return false
	}

	start := b.used
	n := copy(b.data[start:start+len(msg)], msg)
	b.used += n

	if len(b.events) > 0 && b.events[len(b.events)-1].Offset > offset {
		b.sorted = false
	}
	b.events = append(b.events, Event{Offset: offset, Msg: midi.Message(b.data[start : start+n : start+n])})
	return true
}

// Events returns the events ordered by offset. The slice is only valid until
// the next Add or Clear.
func (b *Buffer) Events() []Event {
	if !b.sorted {
		sort.SliceStable(b.events, func(i, j int) bool {
			return b.events[i].Offset < b.events[j].Offset
		})
		b.sorted = true
	}
	return b.events
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int {
	return len(b.events)
}

// Cap returns the maximum number of events.
func (b *Buffer) Cap() int {
	return cap(b.events)
}

// Clear drops every event.
func (b *Buffer) Clear() {
	b.events = b.events[:0]
	b.used = 0
	b.sorted = true
}

// NoteOns calls fn for every note-on with a non-zero velocity, in offset order.
func (b *Buffer) NoteOns(fn func(offset int32, channel, key, velocity uint8)) {
	var ch, key, vel uint8
	for _, e := range b.Events() {
		if e.Msg.GetNoteStart(&ch, &key, &vel) {
			fn(e.Offset, ch, key, vel)
		}
	}
}

// AllNotesOff adds an All Notes Off for each of the 16 channels at offset and
// returns how many fit.
func (b *Buffer) AllNotesOff(offset int32) int {
	n := 0
	for _, msg := range allNotesOff {
		if !b.Add(offset, msg) {
			break
		}
		n++
	}
	return n
}

// ControlChanges calls fn for every control change, in offset order.
func (b *Buffer) ControlChanges(fn func(offset int32, channel, controller, value uint8)) {
	var ch, cc, val uint8
	for _, e := range b.Events() {
		if e.Msg.GetControlChange(&ch, &cc, &val) {
			fn(e.Offset, ch, cc, val)
		}
	}
}
