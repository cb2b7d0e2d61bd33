package arena

import (
	"context"
	"fmt"
	"time"
)

// Human is an interactive seat. Without an input hook it reads lines
// from the console's local terminal; with one it asks the remote
// platform and echoes the answer locally.
type Human struct {
	seatState
	console *Console
	owner   string
	input   InputFunc
	timeout time.Duration
}

var _ Player = (*Human)(nil)

// NewHuman creates an interactive seat. name may be empty for a local
// anonymous player.
func NewHuman(no int, name string, console *Console, opts ...PlayerOption) *Human {
	o := resolvePlayerOptions(opts...)
	rendered := fmt.Sprintf("Player %s", seatIcon(no))
	if name != "" {
		rendered = fmt.Sprintf("%s %s", name, seatIcon(no))
	}
	return &Human{
		seatState: seatState{no: no, rendered: rendered},
		console:   console,
		owner:     name,
		input:     o.input,
		timeout:   o.inputTimeout,
	}
}

// Start marks the seat alive. Humans have no transport to set up.
func (h *Human) Start(_ context.Context, _ Rules, _ int) error {
	h.alive = true
	return nil
}

// AskMove prompts for input, waits up to the human-scale timeout, and
// sanitizes whatever arrives.
func (h *Human) AskMove(ctx context.Context, rules Rules) (Move, Reason) {
	h.console.Printf("Awaiting %s's move : ", h.Name())
	line, reason := h.read(ctx)
	if reason != "" {
		return nil, reason
	}
	return Sanitize(rules, line)
}

func (h *Human) read(ctx context.Context) (string, Reason) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if h.input == nil {
		select {
		case line, ok := <-h.console.NextLine():
			if !ok {
				return "", ReasonCommFailure
			}
			return line, ""
		case <-ctx.Done():
			return "", h.expired(ctx)
		}
	}

	// Remote hook: race the hook against the timeout. The hook is not
	// cancellable, so a late answer is simply dropped — the next turn
	// issues a fresh request.
	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := h.input(h.owner)
		ch <- answer{line, err}
	}()
	select {
	case a := <-ch:
		if a.err != nil {
			return "", ReasonCommFailure
		}
		// Echo locally only; the remote side already saw its own input.
		h.console.Local(a.line)
		return a.line, ""
	case <-ctx.Done():
		return "", h.expired(ctx)
	}
}

// expired classifies a finished context: driver cancellation is an
// interrupt, a spent deadline is a timeout.
func (h *Human) expired(ctx context.Context) Reason {
	if context.Cause(ctx) == context.Canceled {
		return ReasonInterrupt
	}
	h.console.Print(fmt.Sprintf("%s did not respond in time (over %s)", h.Name(), h.timeout))
	return ReasonTimeout
}

// TellMove is a no-op: interactive players watch the shared console.
func (h *Human) TellMove(string) {}

// Stop is a no-op: humans own no external resources.
func (h *Human) Stop(context.Context) error { return nil }
