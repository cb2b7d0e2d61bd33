package arena

import (
	"strings"
	"testing"
	"time"
)

func TestConsole_PrintReachesBothSinks(t *testing.T) {
	var local strings.Builder
	var remote []string
	c := NewConsole(&local, strings.NewReader(""), func(text string) {
		remote = append(remote, text)
	})

	c.Print("hello")
	if got := local.String(); got != "hello\n" {
		t.Errorf("local = %q, want %q", got, "hello\n")
	}
	if len(remote) != 1 || remote[0] != "hello\n" {
		t.Errorf("remote = %v, want one %q", remote, "hello\n")
	}
}

func TestConsole_PrintfKeepsLineOpen(t *testing.T) {
	var local strings.Builder
	c := NewConsole(&local, strings.NewReader(""), nil)

	c.Printf("Awaiting %s : ", "x")
	if got := local.String(); got != "Awaiting x : " {
		t.Errorf("local = %q", got)
	}
}

func TestConsole_LocalSkipsRemote(t *testing.T) {
	var local strings.Builder
	var remote []string
	c := NewConsole(&local, strings.NewReader(""), func(text string) {
		remote = append(remote, text)
	})

	c.Local("echoed input")
	if got := local.String(); got != "echoed input\n" {
		t.Errorf("local = %q", got)
	}
	if len(remote) != 0 {
		t.Errorf("remote = %v, want empty", remote)
	}
}

func TestConsole_NextLineDeliversInOrder(t *testing.T) {
	c := NewConsole(&strings.Builder{}, strings.NewReader("first\nsecond\n"), nil)

	for _, want := range []string{"first", "second"} {
		select {
		case got := <-c.NextLine():
			if got != want {
				t.Errorf("line = %q, want %q", got, want)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for line")
		}
	}

	select {
	case _, ok := <-c.NextLine():
		if ok {
			t.Error("expected closed channel after EOF")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for close")
	}
}
