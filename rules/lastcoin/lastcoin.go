// Package lastcoin implements a take-away game on top of the arena
// harness: a shared pile of coins, each turn removes one to three, and
// whoever takes the last coin wins.
//
// It doubles as the reference Rules implementation — every method of
// the contract is exercised, with no hidden state outside the Game.
package lastcoin

import (
	"fmt"
	"strconv"
	"strings"

	"botarena"
)

// DefaultPile is the starting pile size when none is given.
const DefaultPile = 21

// Game holds the pile and the last mover. It is owned by the scheduler
// goroutine; no locking.
type Game struct {
	pile int
	last int // seat of the last mover, -1 before the first move
}

var _ arena.Rules = (*Game)(nil)

// New creates a game with the given pile size (DefaultPile if <= 0).
func New(pile int) *Game {
	if pile <= 0 {
		pile = DefaultPile
	}
	return &Game{pile: pile, last: -1}
}

// Pile returns the coins remaining.
func (g *Game) Pile() int { return g.pile }

// Opening tells an agent the game, the pile size, the player count, and
// its own seat, in one line.
func (g *Game) Opening(seat, players int) string {
	return fmt.Sprintf("lastcoin %d %d %d", g.pile, players, seat)
}

// Sanitize accepts an integer between one and three, capped by the pile.
func (g *Game) Sanitize(raw string) (arena.Move, arena.Reason) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, arena.Reason(fmt.Sprintf("not a number: %q", raw))
	}
	if n < 1 || n > 3 {
		return nil, "take one, two or three coins"
	}
	if n > g.pile {
		return nil, "not enough coins left"
	}
	return n, ""
}

func (g *Game) Apply(seat int, mv arena.Move) error {
	n, ok := mv.(int)
	if !ok {
		return fmt.Errorf("lastcoin: unexpected move %T", mv)
	}
	g.pile -= n
	g.last = seat
	return nil
}

func (g *Game) Encode(mv arena.Move) string {
	return strconv.Itoa(mv.(int))
}

func (g *Game) Render(c *arena.Console, seat int) {
	c.Print(fmt.Sprintf("Pile: %d coin(s)", g.pile))
}

// Finished declares the taker of the last coin the winner.
func (g *Game) Finished() (bool, int) {
	if g.pile <= 0 {
		return true, g.last
	}
	return false, -1
}
