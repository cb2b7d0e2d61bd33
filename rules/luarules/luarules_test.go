package luarules_test

import (
	"strings"
	"testing"

	"botarena"
	"botarena/rules/luarules"
	"botarena/rulestest"
)

func TestCompliance(t *testing.T) {
	rulestest.RunRulesTests(t, func() arena.Rules {
		return loadCountGame(t)
	}, rulestest.Config{Players: 2, Valid: "1", Invalid: "three"})
}

// countGame is a complete rules script: a countdown pile where each
// turn removes one or two units.
const countGame = `
pile = 5
last = -1

function opening(seat, players)
  return "count " .. pile .. " " .. players .. " " .. seat
end

function sanitize(raw)
  local n = tonumber(raw)
  if n == nil then return nil, "not a number" end
  if n < 1 or n > 2 then return nil, "take one or two" end
  if n > pile then return nil, "not enough left" end
  return n, nil
end

function apply(seat, mv)
  pile = pile - mv
  last = seat
end

function encode(mv)
  return tostring(mv)
end

function render(seat)
  return "pile " .. pile
end

function finished()
  if pile <= 0 then return true, last end
  return false, -1
end
`

func loadCountGame(t *testing.T) *luarules.Rules {
	t.Helper()
	r, err := luarules.LoadString(countGame)
	if err != nil {
		t.Fatalf("LoadString error: %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestLoadString_MissingFunction(t *testing.T) {
	_, err := luarules.LoadString(`function sanitize(raw) return raw, nil end`)
	if err == nil {
		t.Fatal("LoadString error = nil, want missing-function failure")
	}
	if !strings.Contains(err.Error(), "opening") {
		t.Errorf("err = %v, want mention of the missing function", err)
	}
}

func TestLoadString_SyntaxError(t *testing.T) {
	if _, err := luarules.LoadString(`function broken(`); err == nil {
		t.Fatal("LoadString error = nil, want syntax failure")
	}
}

func TestOpening(t *testing.T) {
	r := loadCountGame(t)
	if got := r.Opening(1, 2); got != "count 5 2 1" {
		t.Errorf("Opening = %q", got)
	}
}

func TestSanitize(t *testing.T) {
	r := loadCountGame(t)

	mv, reason := r.Sanitize("2")
	if reason != "" {
		t.Fatalf("Sanitize(2) rejected: %s", reason)
	}
	if got := r.Encode(mv); got != "2" {
		t.Errorf("Encode = %q, want %q", got, "2")
	}

	if _, reason := r.Sanitize("nope"); reason != "not a number" {
		t.Errorf("reason = %q, want %q", reason, "not a number")
	}
	if _, reason := r.Sanitize("3"); reason != "take one or two" {
		t.Errorf("reason = %q, want %q", reason, "take one or two")
	}
}

func TestApplyAndFinished(t *testing.T) {
	r := loadCountGame(t)

	take := func(seat int, raw string) {
		t.Helper()
		mv, reason := r.Sanitize(raw)
		if reason != "" {
			t.Fatalf("Sanitize(%q) rejected: %s", raw, reason)
		}
		if err := r.Apply(seat, mv); err != nil {
			t.Fatalf("Apply error: %v", err)
		}
	}

	take(0, "2") // 3 left
	take(1, "2") // 1 left
	if over, _ := r.Finished(); over {
		t.Fatal("finished early")
	}
	take(0, "1") // 0 left

	over, winner := r.Finished()
	if !over {
		t.Fatal("not finished with empty pile")
	}
	if winner != 0 {
		t.Errorf("winner = %d, want 0", winner)
	}
}

func TestRender(t *testing.T) {
	r := loadCountGame(t)
	var out strings.Builder
	c := arena.NewConsole(&out, strings.NewReader(""), nil)

	r.Render(c, 0)
	if !strings.Contains(out.String(), "pile 5") {
		t.Errorf("Render output %q", out.String())
	}
}

func TestHarnessWithdrawStillApplies(t *testing.T) {
	// The withdraw token is handled by the harness wrapper regardless
	// of what the script's sanitizer would say.
	r := loadCountGame(t)
	mv, reason := arena.Sanitize(r, "stop")
	if mv != nil || reason != arena.ReasonInterrupt {
		t.Errorf("got (%v, %q), want (nil, %q)", mv, reason, arena.ReasonInterrupt)
	}
}
