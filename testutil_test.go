package arena

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// nimRules is a minimal in-package rules double: a countdown pile where
// each turn removes one or two, taker of the last unit wins.
// Shared across root-package test files.
type nimRules struct {
	pile int
	last int

	applyErr error // forced Apply failure when set
	drawGame bool  // end declares no winner when set
}

func newNimRules(pile int) *nimRules {
	return &nimRules{pile: pile, last: -1}
}

func (r *nimRules) Opening(seat, players int) string {
	return fmt.Sprintf("nim %d %d %d", r.pile, players, seat)
}

func (r *nimRules) Sanitize(raw string) (Move, Reason) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, Reason("not a number")
	}
	if n < 1 || n > 2 {
		return nil, Reason("take one or two")
	}
	return n, ""
}

func (r *nimRules) Apply(seat int, mv Move) error {
	if r.applyErr != nil {
		return r.applyErr
	}
	r.pile -= mv.(int)
	r.last = seat
	return nil
}

func (r *nimRules) Encode(mv Move) string { return strconv.Itoa(mv.(int)) }

func (r *nimRules) Render(c *Console, seat int) {
	c.Print(fmt.Sprintf("pile %d", r.pile))
}

func (r *nimRules) Finished() (bool, int) {
	if r.pile <= 0 {
		if r.drawGame {
			return true, -1
		}
		return true, r.last
	}
	return false, -1
}

// step is one scripted AskMove outcome for a fakePlayer.
type step struct {
	mv     Move
	reason Reason
}

func play(n int) step    { return step{mv: n} }
func fail(r Reason) step { return step{reason: r} }

// fakePlayer is a scripted test double for Player. Running out of
// scripted steps counts as a timeout.
type fakePlayer struct {
	seatState
	steps    []step
	asked    int
	told     []string
	started  bool
	stopped  bool
	startErr error
}

func newFakePlayer(no int, steps ...step) *fakePlayer {
	return &fakePlayer{
		seatState: seatState{no: no, rendered: fmt.Sprintf("fake %d", no)},
		steps:     steps,
	}
}

func (f *fakePlayer) Start(context.Context, Rules, int) error {
	f.started = true
	if f.startErr != nil {
		return f.startErr
	}
	f.alive = true
	return nil
}

func (f *fakePlayer) AskMove(context.Context, Rules) (Move, Reason) {
	if f.asked >= len(f.steps) {
		f.asked++
		return nil, ReasonTimeout
	}
	s := f.steps[f.asked]
	f.asked++
	return s.mv, s.reason
}

func (f *fakePlayer) TellMove(text string) { f.told = append(f.told, text) }

func (f *fakePlayer) Stop(context.Context) error {
	f.stopped = true
	return nil
}

// toldCount returns how many times f was told text.
func (f *fakePlayer) toldCount(text string) int {
	n := 0
	for _, t := range f.told {
		if t == text {
			n++
		}
	}
	return n
}

var errStartBoom = errors.New("start boom")
