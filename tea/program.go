// Package tea implements the event loop that drives a Model through
// Init, Update and View: it owns the terminal, reads keys, dispatches
// commands, and renders frames. Grounded on
// tea/internal/application/program/program.go from the teacher, with
// the resize-signal gap and true ESC timing the teacher lacked filled
// in by terminal.ListenForResize and the keys package respectively.
package tea

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/loomtui/loom/internal/logging"
	"github.com/loomtui/loom/keys"
	"github.com/loomtui/loom/render"
	"github.com/loomtui/loom/terminal"
)

// Program orchestrates the event loop for a concrete model type T.
type Program[T modelConstraint[T]] struct {
	model T

	input      io.Reader
	output     io.Writer
	altScreen  bool
	escTimeout time.Duration
	logger     *log.Logger

	term     *terminal.Terminal
	renderer *render.Renderer

	mu      sync.Mutex
	running bool

	msgCh    chan Msg
	quitCh   chan struct{}
	quitOnce sync.Once
}

// New constructs a Program for model m. The model must implement
// Init() Cmd, Update(Msg) (T, Cmd) and View() string.
func New[T modelConstraint[T]](m T, opts ...Option[T]) *Program[T] {
	p := &Program[T]{
		model:      m,
		input:      os.Stdin,
		output:     os.Stdout,
		escTimeout: keys.DefaultEscTimeout,
		logger:     logging.Discard,
		msgCh:      make(chan Msg, 100),
		quitCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Send delivers msg to the running event loop. Safe to call from any
// goroutine, including from outside a Cmd.
func (p *Program[T]) Send(msg Msg) {
	select {
	case p.msgCh <- msg:
	case <-p.quitCh:
	}
}

// IsRunning reports whether Run is currently driving the loop.
func (p *Program[T]) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Stop asks a running program to quit and blocks briefly for it to do
// so. Safe to call multiple times and from any goroutine.
func (p *Program[T]) Stop() {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	if !running {
		return
	}

	p.shutdown()

	deadline := time.After(time.Second)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			p.mu.Lock()
			running := p.running
			p.mu.Unlock()
			if !running {
				return
			}
		}
	}
}

// shutdown closes quitCh exactly once, broadcasting cancellation to
// every goroutine selecting on it (key reader forwarder, resize
// forwarder, in-flight executeCommand sends) — a close broadcasts to
// every listener where the teacher's single value-send on quitCh only
// ever reaches one, which left other goroutines blocked until the
// process exited. None of them are waited on; shutdown is cooperative,
// not synchronous, per the concurrency model.
func (p *Program[T]) shutdown() {
	p.quitOnce.Do(func() { close(p.quitCh) })
}

// Run starts the event loop and blocks until the model quits, Stop is
// called, or an unrecoverable error occurs.
func (p *Program[T]) Run() (err error) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return fmt.Errorf("tea: program already running")
	}
	p.running = true
	p.mu.Unlock()

	if f, ok := p.output.(*os.File); ok {
		p.term = terminal.New(f)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrModelPanic, r)
		}
		p.teardown()
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	p.setup()

	initCmd := p.model.Init()
	if initCmd != nil {
		p.executeCommand(initCmd)
	}

	width, height := p.size()
	if p.renderer == nil {
		p.renderer = render.New(p.output)
	}
	p.renderer.Resize(width, height)
	p.render()

	var resizeStop func()
	if p.term != nil {
		sizes, stop := p.term.ListenForResize()
		resizeStop = stop
		go p.forwardResizes(sizes)
	}
	if resizeStop != nil {
		defer resizeStop()
	}

	keyReader := keys.NewReader(p.input, p.escTimeout)
	defer keyReader.Stop()
	go p.forwardKeys(keyReader)

	return p.loop()
}

func (p *Program[T]) setup() {
	if p.term != nil {
		if err := p.term.EnterRaw(); err != nil {
			p.logger.Debug("enter raw mode failed", "err", err)
		}
	}
	if p.altScreen && p.term != nil {
		p.term.EnterAltScreen()
		p.term.HideCursor()
		p.term.ClearScreen()
	}
}

func (p *Program[T]) teardown() {
	if p.term == nil {
		return
	}
	if p.altScreen {
		p.term.ShowCursor()
		p.term.ExitAltScreen()
	}
	_ = p.term.ExitRaw()
}

func (p *Program[T]) size() (width, height int) {
	if p.term == nil {
		return 80, 24
	}
	return p.term.Size()
}

func (p *Program[T]) render() {
	view := p.model.View()
	if err := p.renderer.Render(view); err != nil {
		p.logger.Debug("render failed", "err", err)
	}
}

// executeCommand runs cmd on its own goroutine, matching the teacher's
// one-goroutine-per-command dispatch: each Cmd gets an independent
// worker that funnels its single result back through msgCh.
func (p *Program[T]) executeCommand(cmd Cmd) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.Send(ErrMsg{Err: fmt.Errorf("%w: %v", ErrCommandFailure, r)})
			}
		}()
		msg := cmd()
		p.Send(msg)
	}()
}

func (p *Program[T]) forwardKeys(r *keys.Reader) {
	for {
		msg, err := r.ReadKey()
		if err != nil {
			return
		}
		select {
		case p.msgCh <- msg:
		case <-p.quitCh:
			return
		}
	}
}

func (p *Program[T]) forwardResizes(sizes <-chan [2]int) {
	for {
		select {
		case size, ok := <-sizes:
			if !ok {
				return
			}
			select {
			case p.msgCh <- WindowSizeMsg{Width: size[0], Height: size[1]}:
			case <-p.quitCh:
				return
			}
		case <-p.quitCh:
			return
		}
	}
}

// loop is the event loop proper: wait for a message, handle the
// built-in kinds, otherwise fold it into the model and render.
// Grounded on the teacher's Run() select loop.
func (p *Program[T]) loop() error {
	for {
		select {
		case msg := <-p.msgCh:
			if p.dispatch(msg) {
				return nil
			}
		case <-p.quitCh:
			return nil
		}
	}
}

// dispatch handles one message and reports whether the loop should
// stop.
func (p *Program[T]) dispatch(msg Msg) (quit bool) {
	switch m := msg.(type) {
	case QuitMsg:
		p.shutdown()
		return true
	case BatchMsg:
		for _, inner := range m.Messages {
			p.msgCh <- inner
		}
		return false
	case SequenceMsg:
		for _, inner := range m.Messages {
			p.msgCh <- inner
		}
		return false
	case WindowSizeMsg:
		p.renderer.Resize(m.Width, m.Height)
	}

	newModel, cmd := p.model.Update(msg)
	p.model = newModel

	if cmd != nil {
		p.executeCommand(cmd)
	}

	p.render()
	return false
}
