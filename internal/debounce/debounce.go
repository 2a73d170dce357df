// Package debounce coalesces bursts of triggers into one action after a
// quiet period.
//
// The Debouncer does not own a timer. Callers start one per Schedule and
// ask Fire whether the ticket it carries is still armed when it elapses.
// A Debouncer is meant to be driven from a single event loop and is not
// safe for concurrent use.
package debounce

import "time"

// Ticket identifies one scheduled action.
type Ticket uint64

type Debouncer struct {
	delay time.Duration
	seq   Ticket
	armed bool
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// SetDelay changes the quiet period for subsequent schedules.
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.delay = delay
}

// Schedule discards any armed ticket and arms a new one.
func (d *Debouncer) Schedule() Ticket {
	d.seq++
	d.armed = true
	return d.seq
}

// Cancel discards the armed ticket, if any.
func (d *Debouncer) Cancel() {
	d.seq++
	d.armed = false
}

// Pending reports whether a ticket is armed.
func (d *Debouncer) Pending() bool {
	return d.armed
}

// Fire reports whether t is the armed ticket and disarms it. Stale or
// already fired tickets return false.
func (d *Debouncer) Fire(t Ticket) bool {
	if !d.armed || t != d.seq {
		return false
	}
	d.armed = false
	return true
}
