package arena

import "testing"

func TestSanitize_WithdrawToken(t *testing.T) {
	mv, reason := Sanitize(newNimRules(5), "stop")
	if mv != nil {
		t.Fatalf("mv = %v, want nil", mv)
	}
	if reason != ReasonInterrupt {
		t.Errorf("reason = %q, want %q", reason, ReasonInterrupt)
	}
}

func TestSanitize_Delegates(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantMv Move
		wantRe Reason
	}{
		{name: "accepted", raw: "2", wantMv: 2},
		{name: "trimmed", raw: " 1 ", wantMv: 1},
		{name: "not a number", raw: "banana", wantRe: "not a number"},
		{name: "out of range", raw: "7", wantRe: "take one or two"},
		{name: "stop is case-sensitive", raw: "STOP", wantRe: "not a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mv, reason := Sanitize(newNimRules(5), tt.raw)
			if mv != tt.wantMv {
				t.Errorf("mv = %v, want %v", mv, tt.wantMv)
			}
			if reason != tt.wantRe {
				t.Errorf("reason = %q, want %q", reason, tt.wantRe)
			}
		})
	}
}

func TestReason_Terminal(t *testing.T) {
	tests := []struct {
		reason Reason
		want   bool
	}{
		{ReasonInterrupt, true},
		{ReasonTimeout, true},
		{ReasonCommFailure, false},
		{ReasonCrash, false},
		{Reason("take one or two"), false},
	}
	for _, tt := range tests {
		if got := tt.reason.Terminal(); got != tt.want {
			t.Errorf("Terminal(%q) = %v, want %v", tt.reason, got, tt.want)
		}
	}
}
