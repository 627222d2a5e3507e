package proofpad

import "unicode/utf8"

// revealSteps is the target number of increments for a full reveal.
// The per-tick step is derived from it once per arm, so total reveal
// duration is bounded regardless of message length.
const revealSteps = 80

// Reveal simulates progressive arrival of a finalized message by
// exposing a growing prefix of its text. Each arm increments a
// generation counter; ticks carrying a stale generation are discarded,
// so re-arming is race-free without explicit timer cancellation.
type Reveal struct {
	generation int
	index      int
	full       string
	visible    int // byte length of the visible prefix
	step       int
	active     bool
}

// Arm starts a reveal of full for the message at index and returns the
// new generation. Any in-flight reveal is invalidated. An empty full
// text completes immediately: Active reports false and Visible equals
// the full text without a single tick.
func (r *Reveal) Arm(index int, full string) int {
	r.generation++
	r.index = index
	r.full = full
	r.visible = 0
	r.step = len(full) / revealSteps
	if r.step < 1 {
		r.step = 1
	}
	r.active = full != ""
	return r.generation
}

// Clear invalidates any in-flight reveal and discards its text.
func (r *Reveal) Clear() {
	r.generation++
	r.index = 0
	r.full = ""
	r.visible = 0
	r.active = false
}

// Advance applies one tick for the given generation. Stale generations
// and inactive reveals are no-ops. It reports whether this tick
// completed the reveal; completion happens exactly once, after which
// further calls are no-ops.
func (r *Reveal) Advance(generation int) (done bool) {
	if !r.active || generation != r.generation {
		return false
	}
	next := r.visible + r.step
	if next >= len(r.full) {
		r.visible = len(r.full)
		r.active = false
		return true
	}
	// Never expose a torn UTF-8 sequence.
	for next < len(r.full) && !utf8.RuneStart(r.full[next]) {
		next++
	}
	r.visible = next
	return false
}

// Active reports whether a reveal is in progress.
func (r *Reveal) Active() bool { return r.active }

// Generation returns the current generation counter.
func (r *Reveal) Generation() int { return r.generation }

// Index returns the message index of the current or most recent reveal.
func (r *Reveal) Index() int { return r.index }

// Visible returns the currently visible prefix, always a prefix of the
// full text with non-decreasing length.
func (r *Reveal) Visible() string { return r.full[:r.visible] }

// Full returns the full text of the current or most recent reveal.
func (r *Reveal) Full() string { return r.full }
