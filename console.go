package arena

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

// OutputFunc forwards harness output to a remote sink — a chat bridge,
// a transcript recorder. May be nil.
type OutputFunc func(text string)

// InputFunc asks a remote interactive player for one line of input.
// It blocks until the player answers; the harness bounds the wait.
type InputFunc func(name string) (string, error)

// Console is the dual-sink text output shared by a session: everything
// is echoed locally, and forwarded to the remote hook when one is set.
// It also owns the local terminal's line reader, so a Human whose input
// timed out leaves its pending line intact for the next turn.
//
// A Console is an explicit dependency passed to every component that
// emits output — never package state.
type Console struct {
	w      io.Writer
	r      io.Reader
	remote OutputFunc

	once  sync.Once
	lines chan string
}

// NewConsole builds a console writing to w (defaults to os.Stdout) and
// reading local input from r (defaults to os.Stdin). remote may be nil.
func NewConsole(w io.Writer, r io.Reader, remote OutputFunc) *Console {
	if w == nil {
		w = os.Stdout
	}
	if r == nil {
		r = os.Stdin
	}
	return &Console{w: w, r: r, remote: remote}
}

// Silent returns a console that discards all output and carries no
// remote hook. Used for fully autonomous sessions.
func Silent() *Console {
	return &Console{w: io.Discard, r: eofReader{}}
}

// Print writes one line to both sinks.
func (c *Console) Print(text string) {
	fmt.Fprintln(c.w, text)
	if c.remote != nil {
		c.remote(text + "\n")
	}
}

// Printf formats and writes to both sinks without a trailing newline.
func (c *Console) Printf(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	fmt.Fprint(c.w, text)
	if c.remote != nil {
		c.remote(text)
	}
}

// Local writes one line to the local sink only, skipping the remote
// hook. Used to echo input the remote side already saw.
func (c *Console) Local(text string) {
	fmt.Fprintln(c.w, text)
}

// NextLine returns the channel delivering local input lines. The reader
// goroutine starts on first use and the channel closes on EOF. Lines
// not consumed before a timeout stay queued for the next call.
func (c *Console) NextLine() <-chan string {
	c.once.Do(func() {
		c.lines = make(chan string)
		go func() {
			defer close(c.lines)
			sc := bufio.NewScanner(c.r)
			for sc.Scan() {
				c.lines <- sc.Text()
			}
		}()
	})
	return c.lines
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
