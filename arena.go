// Package arena runs turn-based games between interactive players and
// autonomous agent programs.
//
// arena is domain-agnostic: it owns the player lifecycle, the round-robin
// turn scheduling, and the reliability contract for talking to agent
// subprocesses over a line-oriented text protocol. The rules of any
// particular game — state, move legality, win conditions — are supplied
// by a [Rules] implementation.
//
// # Core Types
//
//   - [Player] — one seat in a session; exactly two variants exist
//   - [Human] — an interactive seat (local terminal or injected hook)
//   - [Bot] — a seat backed by an external, independently running program
//   - [Rules] — the game-specific collaborator contract
//   - [Console] — dual-sink text output (local echo + optional remote hook)
//   - [Result] — the immutable terminal snapshot of a session
//
// # Vocabulary
//
// Seat failures during play are [Reason] values, not errors: a timeout,
// a withdrawal, a crashed agent, or a rejected move eliminates one seat
// and the session continues. Errors proper are reserved for setup — a
// missing agent program or an invalid configuration aborts before the
// first turn.
//
// # Quick Start
//
//	console := arena.NewConsole(os.Stdout, os.Stdin, nil)
//	bot, err := arena.NewBot(0, "bots/greedy.py", console)
//	if err != nil { log.Fatal(err) }
//	players := []arena.Player{bot, arena.NewHuman(1, "", console)}
//	result, err := arena.Run(ctx, players, lastcoin.New(21))
package arena
