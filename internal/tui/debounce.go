package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SearchDebounce is the settle time for the client search input.
const SearchDebounce = 300 * time.Millisecond

// Debouncer is a cancellable timer with a single-pending-timer
// invariant: triggering again supersedes the previous timer. Bubble Tea
// ticks cannot be cancelled once issued, so supersession works by
// sequence: each trigger bumps the sequence, and only a fire carrying
// the current sequence is acted on.
type Debouncer struct {
	seq int
}

// Trigger schedules fn after d, superseding any pending trigger. fn
// receives the sequence the timer was issued with.
func (db *Debouncer) Trigger(d time.Duration, fn func(seq int) tea.Msg) tea.Cmd {
	db.seq++
	seq := db.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return fn(seq)
	})
}

// Current reports whether seq is the latest issued sequence.
func (db *Debouncer) Current(seq int) bool {
	return seq == db.seq
}

// Cancel invalidates any pending timer without scheduling a new one.
// Timers already issued fire anyway but no longer count as current.
func (db *Debouncer) Cancel() {
	db.seq++
}
