package arena

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// DebugPrefix marks agent output lines that are debug chatter, not
// moves. The harness echoes them when debug is on and never forwards
// them to the sanitizer.
const DebugPrefix = ">"

// crashMarkers are line prefixes recognized as the start of a stack
// trace. A matching line ends the turn's exchange with ReasonCrash.
var crashMarkers = []string{
	"Traceback",           // python
	"panic:",              // go
	"Exception in thread", // java
}

// crashDrainWindow bounds how long a crash report keeps collecting the
// dying process's remaining output.
const crashDrainWindow = 50 * time.Millisecond

// maxLineBytes caps a single protocol line.
const maxLineBytes = 1 << 20

// Bot is a seat driven by an external program speaking the line
// protocol over its standard streams. The process handle lives from
// Start to Stop and is owned exclusively by the Bot: no other component
// touches its pipes.
type Bot struct {
	seatState
	console *Console
	prog    string
	argv    []string

	debug       bool
	logger      *zap.Logger
	moveTimeout time.Duration
	gracePeriod time.Duration

	cmd   *exec.Cmd
	lines chan string   // stdout lines; closed when stdout closes
	done  chan struct{} // buffered(1), signaled once by readLoop after Wait

	mu          sync.Mutex // guards stdin writes and the broken flag
	stdin       io.WriteCloser
	stdinBroken bool

	stopOnce sync.Once
}

var _ Player = (*Bot)(nil)

// NewBot creates an agent seat for the program at progPath. The launch
// command is resolved here, once, from the path's extension; a path
// that does not name a readable file fails construction.
func NewBot(no int, progPath string, console *Console, opts ...PlayerOption) (*Bot, error) {
	o := resolvePlayerOptions(opts...)
	argv, err := resolveCommand(progPath, o.interpreters)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(progPath), filepath.Ext(progPath))
	rendered := fmt.Sprintf("AI %s (%s)", seatIcon(no), stem)
	if o.remote {
		rendered = fmt.Sprintf("%s's AI %s", stem, seatIcon(no))
	}

	return &Bot{
		seatState:   seatState{no: no, rendered: rendered},
		console:     console,
		prog:        progPath,
		argv:        argv,
		debug:       o.debug,
		logger:      o.logger,
		moveTimeout: o.moveTimeout,
		gracePeriod: o.gracePeriod,
	}, nil
}

// Start spawns the agent process and writes the opening line — exactly
// once, before any move request.
func (b *Bot) Start(_ context.Context, rules Rules, players int) error {
	cmd := exec.Command(b.argv[0], b.argv[1:]...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("arena: %s: stdin pipe: %w", b.prog, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("arena: %s: stdout pipe: %w", b.prog, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("arena: %s: stderr pipe: %w", b.prog, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("arena: start %s: %w", b.prog, err)
	}

	b.cmd = cmd
	b.stdin = stdin
	b.lines = make(chan string, 64)
	b.done = make(chan struct{}, 1)
	b.alive = true
	b.logger.Debug("agent started",
		zap.Int("seat", b.no),
		zap.String("prog", b.prog),
		zap.Int("pid", cmd.Process.Pid))

	go b.readLoop(stdout)
	go b.logStderr(stderr)

	b.write(rules.Opening(b.no, players))
	return nil
}

// readLoop pumps stdout lines into the line channel. Its defer reaps
// the process, so Stop only ever waits on done.
func (b *Bot) readLoop(stdout io.Reader) {
	defer func() {
		_ = b.cmd.Wait()
		close(b.lines)
		b.done <- struct{}{}
	}()

	sc := bufio.NewScanner(stdout)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		b.lines <- sc.Text()
	}
}

// logStderr drains the process's error stream into the protocol logger
// so crashes stay diagnosable without corrupting the line protocol.
func (b *Bot) logStderr(stderr io.Reader) {
	sc := bufio.NewScanner(stderr)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		b.logger.Debug("agent stderr", zap.Int("seat", b.no), zap.String("line", sc.Text()))
	}
}

// AskMove reads lines from the agent within one fixed deadline,
// classifying each: crash markers end the turn with ReasonCrash, debug
// lines are echoed and skipped without resetting the deadline, and the
// first remaining non-empty line is the candidate move.
func (b *Bot) AskMove(ctx context.Context, rules Rules) (Move, Reason) {
	if b.lines == nil {
		return nil, ReasonCommFailure
	}

	deadline := time.NewTimer(b.moveTimeout)
	defer deadline.Stop()

	for {
		select {
		case line, ok := <-b.lines:
			if !ok {
				b.logger.Debug("agent stream closed", zap.Int("seat", b.no))
				return nil, ReasonCommFailure
			}
			line = strings.TrimSpace(line)
			switch {
			case line == "":
				continue

			case isCrashLine(line):
				b.logger.Warn("agent crashed", zap.Int("seat", b.no), zap.String("line", line))
				b.reportCrash(line)
				return nil, ReasonCrash

			case strings.HasPrefix(line, DebugPrefix):
				b.logger.Debug("agent debug", zap.Int("seat", b.no), zap.String("line", line))
				if b.debug {
					b.console.Print(fmt.Sprintf("%s %s", b.Name(), line))
				}
				continue

			default:
				b.console.Print(fmt.Sprintf("%s's move : %s", b.Name(), line))
				return Sanitize(rules, line)
			}

		case <-deadline.C:
			b.console.Print(fmt.Sprintf("%s did not respond in time (over %s)", b.Name(), b.moveTimeout))
			return nil, ReasonTimeout

		case <-ctx.Done():
			return nil, ReasonInterrupt
		}
	}
}

func isCrashLine(line string) bool {
	for _, marker := range crashMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// reportCrash collects whatever output the dying process still produces
// and prints it when debug is on.
func (b *Bot) reportCrash(first string) {
	if !b.debug {
		return
	}
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(first)
	window := time.After(crashDrainWindow)

drain:
	for {
		select {
		case line, ok := <-b.lines:
			if !ok {
				break drain
			}
			sb.WriteString("\n")
			sb.WriteString(line)
		case <-window:
			break drain
		}
	}
	b.console.Print(sb.String())
}

// TellMove forwards a normalized move line to the agent's input stream.
// Writes after the pipe has broken are skipped silently: a dead agent
// is eliminated through the read path, not the write path.
func (b *Bot) TellMove(text string) { b.write(text) }

// write sends one terminated line to stdin. OS pipes flush per write,
// so a successful Write is fully drained.
func (b *Bot) write(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stdin == nil || b.stdinBroken {
		return
	}
	if _, err := b.stdin.Write([]byte(text + "\n")); err != nil {
		b.stdinBroken = true
		b.logger.Debug("agent stdin closed", zap.Int("seat", b.no), zap.Error(err))
	}
}

// Stop terminates the agent: terminate signal, then a grace period,
// then a kill. Safe to call multiple times; a process that already
// exited is not an error.
func (b *Bot) Stop(ctx context.Context) error {
	b.stopOnce.Do(func() {
		if b.cmd == nil || b.cmd.Process == nil {
			return
		}

		b.mu.Lock()
		if b.stdin != nil {
			_ = b.stdin.Close() // Best-effort: pipe may already be closed.
			b.stdinBroken = true
		}
		b.mu.Unlock()

		_ = signalProcess(b.cmd.Process, syscall.SIGTERM)

		// Discard whatever the agent still writes on the way out. Nobody
		// asks for moves anymore, and readLoop must not stay blocked on a
		// full line channel or done would never be signaled.
		go func() {
			for range b.lines {
			}
		}()

		select {
		case <-b.done:
		case <-time.After(b.gracePeriod):
			_ = signalProcess(b.cmd.Process, os.Kill)
			<-b.done
		case <-ctx.Done():
			_ = signalProcess(b.cmd.Process, os.Kill)
			<-b.done
		}
		b.logger.Debug("agent stopped", zap.Int("seat", b.no))
	})
	return nil
}

// signalProcess sends sig to a process, returning nil if the process
// has already exited.
func signalProcess(proc *os.Process, sig os.Signal) error {
	err := proc.Signal(sig)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
