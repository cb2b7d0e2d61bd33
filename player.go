package arena

import (
	"context"
	"strconv"
)

// Player is one seat in a session. Exactly two implementations exist —
// [Human] for interactive seats and [Bot] for agent-driven ones — and
// the scheduler depends only on this contract, never on the variant.
type Player interface {
	// Seat returns the stable ordinal assigned at construction.
	// Seats are 0..N-1 in construction order and never reused.
	Seat() int

	// Name returns the rendered display name, stable and unique per seat.
	Name() string

	// Alive reports whether the seat is still in the game.
	Alive() bool

	// Start readies the seat for play. For bots it spawns the external
	// process and writes the handshake line. Safe to run concurrently
	// with other players' Start.
	Start(ctx context.Context, rules Rules, players int) error

	// AskMove obtains the seat's next move. Ordinary failures —
	// timeout, withdrawal, crash, malformed output — come back as a
	// Reason; exactly one of (move, reason) is set.
	AskMove(ctx context.Context, rules Rules) (Move, Reason)

	// TellMove notifies the seat of another seat's move in normalized
	// textual form. One-way; a no-op for humans, who observe moves
	// through the shared console instead.
	TellMove(text string)

	// Stop releases the seat's resources. Stopping a bot whose process
	// already exited is not an error.
	Stop(ctx context.Context) error

	// retire flips the alive flag false. Only the scheduler calls it,
	// exactly once per eliminated seat, which keeps the one legal
	// true→false transition observable at a single call site.
	retire()
}

// Broadcast sends text to every alive player except from, in seat order.
// The fan-out is sequential: agents may derive per-opponent state from
// the order lines arrive on their input streams.
func Broadcast(players []Player, from Player, text string) {
	for _, p := range players {
		if p != from && p.Alive() {
			p.TellMove(text)
		}
	}
}

// seatState is the per-seat identity shared by both player variants.
// alive is written only by the scheduler goroutine, so no locking.
type seatState struct {
	no       int
	rendered string
	alive    bool
}

func (s *seatState) Seat() int    { return s.no }
func (s *seatState) Name() string { return s.rendered }
func (s *seatState) Alive() bool  { return s.alive }
func (s *seatState) retire()      { s.alive = false }

// seatIcons are the ordinal icons woven into rendered names.
var seatIcons = [...]string{
	"0️⃣", "1️⃣", "2️⃣", "3️⃣",
	"4️⃣", "5️⃣", "6️⃣", "7️⃣",
	"8️⃣", "9️⃣",
}

func seatIcon(no int) string {
	if no >= 0 && no < len(seatIcons) {
		return seatIcons[no]
	}
	return strconv.Itoa(no)
}
