package arena

// Elimination records one seat's exit and why it happened. The order of
// eliminations in a Result is the order they occurred.
type Elimination struct {
	Player Player
	Reason Reason
}

// Result is the immutable terminal snapshot of a session.
type Result struct {
	// Players is the full seat list with final alive flags.
	Players []Player

	// Winner is the sole surviving or rules-declared winner, nil for a
	// draw or mutual elimination.
	Winner Player

	// Eliminations maps eliminated seats to their reasons, in
	// elimination order.
	Eliminations []Elimination
}

// ReasonFor returns the elimination reason for seat, if it was eliminated.
func (r *Result) ReasonFor(seat int) (Reason, bool) {
	for _, e := range r.Eliminations {
		if e.Player.Seat() == seat {
			return e.Reason, true
		}
	}
	return "", false
}
