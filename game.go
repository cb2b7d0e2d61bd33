package arena

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Run drives a session to its terminal result.
//
// All players start concurrently; the loop then asks each alive seat in
// round-robin order for a move, eliminates seats that fail, broadcasts
// every outcome (including the NoMove placeholder for dead or errored
// seats, which keeps agents' turn counters in step), and checks the
// rules' end condition after every applied move. Play ends when fewer
// than two seats remain alive or the rules declare a result, after
// which every agent process is stopped concurrently.
//
// Seat failures never abort the session. Run returns an error only for
// setup failures — a player whose Start fails — in which case any
// already-spawned processes are stopped before returning.
func Run(ctx context.Context, players []Player, rules Rules, opts ...RunOption) (*Result, error) {
	o := resolveRunOptions(opts...)

	start, startCtx := errgroup.WithContext(ctx)
	for _, p := range players {
		p := p
		start.Go(func() error {
			return p.Start(startCtx, rules, len(players))
		})
	}
	if err := start.Wait(); err != nil {
		stopAll(ctx, players)
		return nil, fmt.Errorf("arena: start game: %w", err)
	}

	alive := len(players)
	turn := 0
	winner := -1
	var elims []Elimination

	for alive >= 2 {
		p := players[turn%len(players)]
		turn++

		if !p.Alive() {
			Broadcast(players, p, NoMove)
			continue
		}

		rules.Render(o.console, p.Seat())

		mv, reason := askWithRetry(ctx, p, rules, o.retries)
		if mv != nil {
			if err := rules.Apply(p.Seat(), mv); err != nil {
				// A rules engine refusing an accepted move is treated
				// like a crashed seat, not a session failure.
				o.console.Print(fmt.Sprintf("%s played an unusable move: %v", p.Name(), err))
				mv, reason = nil, ReasonCrash
			}
		}

		if mv == nil {
			o.console.Print(fmt.Sprintf("%s is eliminated", p.Name()))
			elims = append(elims, Elimination{Player: p, Reason: reason})
			p.retire()
			alive--
			Broadcast(players, p, NoMove)
			continue
		}

		Broadcast(players, p, rules.Encode(mv))
		if over, w := rules.Finished(); over {
			winner = w
			break
		}
	}

	stopAll(ctx, players)

	result := &Result{Players: players, Eliminations: elims}
	switch {
	case winner >= 0 && winner < len(players):
		result.Winner = players[winner]
	case alive == 1:
		for _, p := range players {
			if p.Alive() {
				result.Winner = p
				break
			}
		}
	}
	return result, nil
}

// askWithRetry calls AskMove until a move arrives or the seat is out of
// chances. Bot seats get exactly one ask; interactive seats retry on
// non-terminal rejections up to the retry cap.
func askWithRetry(ctx context.Context, p Player, rules Rules, retries int) (Move, Reason) {
	var mv Move
	var reason Reason
	for attempt := 0; attempt < retries; attempt++ {
		mv, reason = p.AskMove(ctx, rules)
		if mv != nil {
			return mv, ""
		}
		if _, isBot := p.(*Bot); isBot || reason.Terminal() {
			return nil, reason
		}
	}
	return nil, reason
}

// stopAll is the end-of-session fan-out barrier: every seat's Stop runs
// concurrently and all must finish before Run returns.
func stopAll(ctx context.Context, players []Player) {
	var stop errgroup.Group
	for _, p := range players {
		p := p
		stop.Go(func() error {
			return p.Stop(ctx)
		})
	}
	_ = stop.Wait()
}
