package arena

// Move is a sanitized, game-legal action value. The harness treats it as
// an opaque non-nil payload; only the Rules implementation that produced
// it ever looks inside.
type Move any

// Rules supplies the game-specific half of a session: parsing, state
// mutation, rendering, and the end-of-game check. The scheduler is the
// only caller and drives every method from a single goroutine, except
// Opening, which the start fan-out may call concurrently for each seat.
//
// Implementations own their state exclusively; Sanitize must not mutate
// it, so a rejected move leaves the game exactly where it was.
type Rules interface {
	// Opening returns the start-of-game line written to an agent exactly
	// once, immediately after spawn and before any move request.
	Opening(seat, players int) string

	// Sanitize parses raw text into a move, or rejects it with a
	// non-empty Reason. Malformed input must come back as a Reason,
	// never a panic.
	Sanitize(raw string) (Move, Reason)

	// Apply mutates the game state with a move previously accepted by
	// Sanitize for the given seat.
	Apply(seat int, mv Move) error

	// Encode renders mv in the normalized one-line textual form agents
	// receive on their input streams.
	Encode(mv Move) string

	// Render writes the current game state as seen by the acting seat.
	Render(c *Console, seat int)

	// Finished reports whether the rules declare the game over, and the
	// winning seat (negative for a draw). The scheduler checks it after
	// every applied move, before the turn counter advances.
	Finished() (over bool, winner int)
}

// Withdraw is the reserved token a player sends to abandon the game.
// Sanitize treats it as an unconditional withdrawal regardless of the
// game's own parsing.
const Withdraw = "stop"

// NoMove is the reserved line broadcast in place of a move when a seat
// is dead or errored. Agents count turns from the lines arriving on
// their input, so skipped seats must still produce one line.
const NoMove = "-"

// Sanitize applies the one parsing rule the harness mandates — the
// withdraw token — and delegates everything else to the game.
func Sanitize(rules Rules, raw string) (Move, Reason) {
	if raw == Withdraw {
		return nil, ReasonInterrupt
	}
	return rules.Sanitize(raw)
}
