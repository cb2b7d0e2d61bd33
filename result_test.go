package arena

import "testing"

func TestResult_ReasonFor(t *testing.T) {
	p0 := newFakePlayer(0)
	p1 := newFakePlayer(1)
	r := &Result{
		Players: []Player{p0, p1},
		Winner:  p1,
		Eliminations: []Elimination{
			{Player: p0, Reason: ReasonTimeout},
		},
	}

	reason, ok := r.ReasonFor(0)
	if !ok || reason != ReasonTimeout {
		t.Errorf("ReasonFor(0) = %q, %v", reason, ok)
	}
	if _, ok := r.ReasonFor(1); ok {
		t.Error("ReasonFor(1) = ok, want miss for the winner")
	}
}
