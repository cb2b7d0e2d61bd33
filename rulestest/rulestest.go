// Package rulestest provides a compliance test suite for [arena.Rules]
// implementations.
//
// Test authors call [RunRulesTests] with a factory returning a fresh game
// and a [Config] naming one accepted and one rejected input line. The
// suite checks the behavioral contract the scheduler relies on: openings
// for every seat, sanitize purity, one-line encodings, and a fresh game
// that is not already over.
//
// Example usage in a game test file:
//
//	package mygame_test
//
//	import (
//	    "testing"
//	    "botarena"
//	    "botarena/rulestest"
//	)
//
//	func TestCompliance(t *testing.T) {
//	    rulestest.RunRulesTests(t, func() arena.Rules {
//	        return mygame.New()
//	    }, rulestest.Config{Players: 2, Valid: "1", Invalid: "bogus"})
//	}
package rulestest

import (
	"strings"
	"testing"

	"botarena"
)

// Config describes the game under test. Valid must be a line a fresh
// game accepts; Invalid must be one it rejects.
type Config struct {
	Players int
	Valid   string
	Invalid string
}

// RunRulesTests runs the full [arena.Rules] behavioral contract against
// the factory. The factory is called once per subtest so every check
// starts from a fresh game.
func RunRulesTests(t *testing.T, factory func() arena.Rules, cfg Config) {
	t.Helper()

	if cfg.Players < 2 {
		cfg.Players = 2
	}

	t.Run("Opening", func(t *testing.T) {
		r := factory()
		for seat := 0; seat < cfg.Players; seat++ {
			line := r.Opening(seat, cfg.Players)
			if line == "" {
				t.Errorf("Opening(%d, %d) must be non-empty", seat, cfg.Players)
			}
			if strings.ContainsAny(line, "\n\x00") {
				t.Errorf("Opening(%d, %d) = %q: must be a single clean line", seat, cfg.Players, line)
			}
		}
	})

	t.Run("SanitizeValid", func(t *testing.T) {
		r := factory()
		mv, reason := r.Sanitize(cfg.Valid)
		if mv == nil {
			t.Fatalf("Sanitize(%q) rejected a valid line: %q", cfg.Valid, reason)
		}
		if reason != "" {
			t.Errorf("Sanitize(%q) accepted but reason = %q, want empty", cfg.Valid, reason)
		}
	})

	t.Run("SanitizeInvalid", func(t *testing.T) {
		r := factory()
		mv, reason := r.Sanitize(cfg.Invalid)
		if mv != nil {
			t.Fatalf("Sanitize(%q) = %v, want rejection", cfg.Invalid, mv)
		}
		if reason == "" {
			t.Error("rejection must carry a non-empty reason")
		}
	})

	t.Run("SanitizePure", func(t *testing.T) {
		// Sanitize must not mutate game state: a rejected line followed
		// by the valid one must behave exactly like the valid one alone.
		r := factory()
		r.Sanitize(cfg.Invalid)
		r.Sanitize(cfg.Valid)
		if mv, reason := r.Sanitize(cfg.Valid); mv == nil {
			t.Errorf("valid line rejected after prior Sanitize calls: %q", reason)
		}
	})

	t.Run("EncodeRoundTrip", func(t *testing.T) {
		r := factory()
		mv, _ := r.Sanitize(cfg.Valid)
		if mv == nil {
			t.Fatalf("Sanitize(%q) rejected a valid line", cfg.Valid)
		}
		enc := r.Encode(mv)
		if enc == "" {
			t.Fatal("Encode must be non-empty")
		}
		if strings.ContainsAny(enc, "\n\x00") {
			t.Errorf("Encode(%v) = %q: must be a single clean line", mv, enc)
		}
		if re, reason := r.Sanitize(enc); re == nil {
			t.Errorf("Sanitize(Encode(mv)) = %q rejected: %q", enc, reason)
		}
	})

	t.Run("ApplyValid", func(t *testing.T) {
		r := factory()
		mv, _ := r.Sanitize(cfg.Valid)
		if mv == nil {
			t.Fatalf("Sanitize(%q) rejected a valid line", cfg.Valid)
		}
		if err := r.Apply(0, mv); err != nil {
			t.Errorf("Apply of a sanitized move failed: %v", err)
		}
	})

	t.Run("FreshNotFinished", func(t *testing.T) {
		r := factory()
		if over, _ := r.Finished(); over {
			t.Error("fresh game reports Finished")
		}
	})

	t.Run("RenderSilent", func(t *testing.T) {
		r := factory()
		for seat := 0; seat < cfg.Players; seat++ {
			r.Render(arena.Silent(), seat)
		}
	})
}
