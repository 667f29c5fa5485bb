package greeting

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"hello/internal/logger"
)

// Options configures Resolve. Zero values mean stdout and a real terminal
// check.
type Options struct {
	Out        io.Writer
	IsTerminal func() bool
}

// Resolve returns the Emitter for ch.
func Resolve(ch Channel, opts Options) (Emitter, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	switch ch {
	case ChannelConsole:
		return Console{Out: out}, nil
	case ChannelDialog:
		return NewDialog(out), nil
	case ChannelAuto:
		isTerminal := opts.IsTerminal
		if isTerminal == nil {
			isTerminal = stdoutIsTerminal
		}
		if isTerminal() {
			return Console{Out: out}, nil
		}
		return NewDialog(out), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, string(ch))
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Deliver validates g and presents it through e. Presentation failures are
// logged and dropped; the caller always sees success.
func Deliver(e Emitter, g Greeting) {
	log := logger.L()
	if err := g.Validate(); err != nil {
		log.Warn("greeting.invalid", "title", g.Title, "err", err)
		return
	}
	if err := e.Emit(g); err != nil {
		log.Warn("greeting.emit_failed", "title", g.Title, "err", err)
		return
	}
	log.Debug("greeting.emitted", "title", g.Title, "emitter", fmt.Sprintf("%T", e))
}

// Print emits the hello-world greeting through the compile-time channel.
func Print() {
	// BuildChannel is always a known channel.
	_ = PrintWith(BuildChannel, Options{})
}

// PrintWith emits the hello-world greeting through ch. The only error is an
// unknown channel.
func PrintWith(ch Channel, opts Options) error {
	e, err := Resolve(ch, opts)
	if err != nil {
		return err
	}
	Deliver(e, HelloWorld)
	return nil
}
