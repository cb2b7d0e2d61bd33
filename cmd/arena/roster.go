package main

import (
	"regexp"

	"go.uber.org/zap"

	"botarena"
	"botarena/config"
)

// userToken is the reserved argument meaning a local interactive seat.
const userToken = "user"

// mentionPattern matches a platform mention token naming a remote
// interactive player.
var mentionPattern = regexp.MustCompile(`^<@[0-9]{18}>$`)

// buildRoster turns positional arguments into seats: program paths
// become bots, the user token a local human, a mention token a remote
// one. Seats missing up to total are padded with local humans. aiOnly
// reports whether every seat is a bot.
func buildRoster(args []string, total int, console *arena.Console, cfg config.Config, debug bool, logger *zap.Logger) ([]arena.Player, bool, error) {
	botOpts := []arena.PlayerOption{
		arena.WithDebug(debug),
		arena.WithLogger(logger),
	}
	if d := cfg.MoveTimeout(); d > 0 {
		botOpts = append(botOpts, arena.WithMoveTimeout(d))
	}
	for ext, argv := range cfg.Interpreters {
		botOpts = append(botOpts, arena.WithInterpreter(ext, argv...))
	}

	var humanOpts []arena.PlayerOption
	if d := cfg.InputTimeout(); d > 0 {
		humanOpts = append(humanOpts, arena.WithInputTimeout(d))
	}

	players := make([]arena.Player, 0, max(len(args), total))
	aiOnly := true
	for i, name := range args {
		switch {
		case name == userToken:
			players = append(players, arena.NewHuman(i, "", console, humanOpts...))
			aiOnly = false
		case mentionPattern.MatchString(name):
			players = append(players, arena.NewHuman(i, name, console, humanOpts...))
			aiOnly = false
		default:
			bot, err := arena.NewBot(i, name, console, botOpts...)
			if err != nil {
				return nil, false, err
			}
			players = append(players, bot)
		}
	}
	for len(players) < total {
		players = append(players, arena.NewHuman(len(players), "", console, humanOpts...))
		aiOnly = false
	}
	return players, aiOnly, nil
}
