// Command arena runs a turn-based game among agent programs and live
// players. Positional arguments are agent program paths; the reserved
// word "user" seats a local interactive player, and a platform mention
// token (<@...>) seats a remote one.
//
//	arena bots/greedy.py user
//	arena -p 3 bots/a.py bots/b.lua
//	arena -s bots/a.py bots/b.py        # silent: autonomous seats only
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"botarena"
	"botarena/config"
	"botarena/rules/lastcoin"
	"botarena/rules/luarules"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	drawStyle   = lipgloss.NewStyle().Faint(true)
	elimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func main() {
	var (
		playerCount int
		silent      bool
		nodebug     bool
		gameName    string
		configPath  string
		pile        int
	)

	root := &cobra.Command{
		Use:   "arena [program]...",
		Short: "Run a turn-based game between agent programs and live players",
		Long: `arena seats the given agent programs (plus interactive players, up to
--players) at a turn-based game and plays it to completion. Agents are
external processes speaking a line protocol on stdin/stdout.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if gameName == "" && cfg.Game != "" {
				gameName = cfg.Game
			}

			logger := zap.NewNop()
			if !nodebug {
				logger, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
			}

			rules, cleanup, err := pickRules(gameName, pile)
			if err != nil {
				return err
			}
			defer cleanup()

			console := arena.NewConsole(cmd.OutOrStdout(), cmd.InOrStdin(), nil)
			if silent {
				console = arena.Silent()
			}
			players, aiOnly, err := buildRoster(args, playerCount, console, cfg, !nodebug, logger)
			if err != nil {
				return err
			}
			if silent && !aiOnly {
				return arena.ErrSilentWithHumans
			}
			if !silent {
				console.Print(bannerStyle.Render(fmt.Sprintf("arena — %d players", len(players))))
			}

			result, err := arena.Run(ctx, players, rules, arena.WithConsole(console))
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	root.Flags().IntVarP(&playerCount, "players", "p", 2, "number of players; seats without a program become interactive")
	root.Flags().BoolVarP(&silent, "silent", "s", false, "only show the result of the game")
	root.Flags().BoolVarP(&nodebug, "nodebug", "n", false, "do not echo agent debug output or crash detail")
	root.Flags().StringVar(&gameName, "game", "", "game to play: \"lastcoin\" or a path to a .lua rules script")
	root.Flags().StringVar(&configPath, "config", "", "path to arena.yaml")
	root.Flags().IntVar(&pile, "pile", lastcoin.DefaultPile, "starting pile size for lastcoin")

	if err := root.Execute(); err != nil {
		if errors.Is(err, arena.ErrSilentWithHumans) || errors.Is(err, arena.ErrProgramNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// pickRules resolves the --game flag: the built-in game by name, or a
// Lua rules script by path.
func pickRules(name string, pile int) (arena.Rules, func(), error) {
	switch {
	case name == "" || name == "lastcoin":
		return lastcoin.New(pile), func() {}, nil
	default:
		r, err := luarules.Load(name)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	}
}

func printResult(w io.Writer, result *arena.Result) {
	for _, e := range result.Eliminations {
		fmt.Fprintln(w, elimStyle.Render(fmt.Sprintf("%s lost: %s", e.Player.Name(), e.Reason)))
	}
	if result.Winner != nil {
		fmt.Fprintln(w, winnerStyle.Render(fmt.Sprintf("%s wins!", result.Winner.Name())))
		return
	}
	fmt.Fprintln(w, drawStyle.Render("No winner."))
}
