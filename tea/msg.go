package tea

import (
	"fmt"
	"time"

	"github.com/loomtui/loom/keys"
)

// Msg represents any message that flows through the event loop. Any
// type can be a Msg; built-in kinds are KeyMsg, WindowSizeMsg,
// QuitMsg, BatchMsg and SequenceMsg, everything else is a user message
// produced by a Cmd and dispatched to Update untouched.
type Msg interface{}

// Cmd performs a side effect and returns a Msg describing its result.
// It runs on its own goroutine; Update never blocks waiting for one.
type Cmd func() Msg

// KeyMsg is a decoded keyboard event, produced by the keys package's
// escape-sequence parser and delivered to Update as-is.
type KeyMsg = keys.Msg

// WindowSizeMsg reports the terminal's current size, sent once at
// startup and again on every resize.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// IsValid reports whether both dimensions are positive.
func (w WindowSizeMsg) IsValid() bool { return w.Width > 0 && w.Height > 0 }

// QuitMsg asks the program to stop. The event loop stops as soon as it
// receives one; it is not passed to Update.
type QuitMsg struct{}

// BatchMsg carries the results of commands run concurrently via Batch.
// Message order is undefined: the commands completed in whatever order
// their goroutines finished.
type BatchMsg struct{ Messages []Msg }

// SequenceMsg carries the results of commands run one after another
// via Sequence, in the same order the commands were given.
type SequenceMsg struct{ Messages []Msg }

// PrintlnMsg is produced by the Println command. The event loop does
// not print it; it reaches Update like any user message.
type PrintlnMsg struct{ Message string }

// TickMsg is produced by the Tick command once its duration elapses.
type TickMsg struct{ Time time.Time }

func (q QuitMsg) String() string { return "quit" }

func (b BatchMsg) String() string { return fmt.Sprintf("batch (%d messages)", len(b.Messages)) }

func (s SequenceMsg) String() string {
	return fmt.Sprintf("sequence (%d messages)", len(s.Messages))
}

// Quit returns a Cmd that sends QuitMsg.
func Quit() Cmd {
	return func() Msg { return QuitMsg{} }
}

// Println returns a Cmd that emits msg as a PrintlnMsg.
func Println(msg string) Cmd {
	return func() Msg { return PrintlnMsg{Message: msg} }
}

// Tick returns a Cmd that sends a TickMsg after d elapses.
func Tick(d time.Duration) Cmd {
	return func() Msg {
		time.Sleep(d)
		return TickMsg{Time: time.Now()}
	}
}

// Batch runs cmds concurrently and collects their results into a
// BatchMsg. Nil commands are dropped; zero survivors yields nil, one
// survivor is returned directly with no BatchMsg wrapping.
func Batch(cmds ...Cmd) Cmd {
	filtered := make([]Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}

	return func() Msg {
		results := make(chan Msg, len(filtered))
		for _, c := range filtered {
			go func(c Cmd) { results <- c() }(c)
		}
		msgs := make([]Msg, 0, len(filtered))
		for i := 0; i < len(filtered); i++ {
			msgs = append(msgs, <-results)
		}
		return BatchMsg{Messages: msgs}
	}
}

// Sequence runs cmds one after another, in order, collecting their
// results into a SequenceMsg. Nil commands are dropped; zero survivors
// yields nil, one survivor is returned directly.
func Sequence(cmds ...Cmd) Cmd {
	filtered := make([]Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}

	return func() Msg {
		msgs := make([]Msg, 0, len(filtered))
		for _, c := range filtered {
			msgs = append(msgs, c())
		}
		return SequenceMsg{Messages: msgs}
	}
}
