package maze

import (
	"fmt"
	"strings"
)

// Event categories recorded by the simulation.
const (
	CatMove  = "move"
	CatTick  = "tick"
	CatGoal  = "goal"
	CatInput = "input"
)

// Event is one recorded simulation occurrence.
type Event struct {
	Tick     int
	Category string // move, tick, goal, input
	Key      string // specific event name within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] move     applied          (3,4) -> (4,4)
func (e Event) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog is a bounded ring buffer of simulation events. A capacity of zero
// keeps every entry, which is what the headless report wants.
type EventLog struct {
	entries  []Event
	head     int
	count    int
	capacity int
	verbose  bool
}

// NewEventLog creates a log holding at most capacity entries (0 = unbounded).
// When verbose is false, input-level events are not recorded.
func NewEventLog(capacity int, verbose bool) *EventLog {
	el := &EventLog{capacity: capacity, verbose: verbose}
	if capacity > 0 {
		el.entries = make([]Event, capacity)
	}
	return el
}

// Add records a new entry.
func (el *EventLog) Add(tick int, category, key, value string) {
	e := Event{Tick: tick, Category: category, Key: key, Value: value}
	if el.capacity == 0 {
		el.entries = append(el.entries, e)
		el.count++
		return
	}
	el.entries[el.head] = e
	el.head = (el.head + 1) % el.capacity
	if el.count < el.capacity {
		el.count++
	}
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(tick int, category, key, value string) {
	if !el.verbose {
		return
	}
	el.Add(tick, category, key, value)
}

// Entries returns entries in chronological order (oldest first).
func (el *EventLog) Entries() []Event {
	if el.capacity == 0 {
		out := make([]Event, len(el.entries))
		copy(out, el.entries)
		return out
	}
	out := make([]Event, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + el.capacity) % el.capacity
		out[i] = el.entries[idx]
	}
	return out
}

// Recent returns up to n of the newest entries, oldest first.
func (el *EventLog) Recent(n int) []Event {
	all := el.Entries()
	if n >= len(all) {
		return all
	}
	return all[len(all)-n:]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range el.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// Len returns the number of retained entries.
func (el *EventLog) Len() int {
	return el.count
}

// Format renders all retained entries, one per line.
func (el *EventLog) Format() string {
	var b strings.Builder
	for _, e := range el.Entries() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
