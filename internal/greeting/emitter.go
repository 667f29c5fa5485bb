package greeting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"hello/internal/logger"
)

// Emitter presents a greeting through one output channel.
type Emitter interface {
	Emit(g Greeting) error
}

// Console writes the greeting message as a single line.
type Console struct {
	Out io.Writer // defaults to os.Stdout
}

func (c Console) Emit(g Greeting) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := io.WriteString(out, g.Message+"\n"); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

// ErrNoNativeDialog is reported on platforms without a native message box.
var ErrNoNativeDialog = errors.New("native dialog not available on this platform")

// Dialog shows the greeting in a modal, OK-only message box and blocks
// until it is dismissed. Where no native dialog exists the line is written
// to Fallback instead.
type Dialog struct {
	Fallback io.Writer

	show func(title, message string) error
}

func NewDialog(fallback io.Writer) *Dialog {
	return &Dialog{Fallback: fallback, show: showMessageBox}
}

func (d *Dialog) Emit(g Greeting) error {
	show := d.show
	if show == nil {
		show = showMessageBox
	}

	err := show(g.Title, g.Message)
	if errors.Is(err, ErrNoNativeDialog) {
		logger.L().Warn("dialog.unavailable", "goos", runtime.GOOS, "fallback", ChannelConsole)
		return Console{Out: d.Fallback}.Emit(g)
	}
	if err != nil {
		return fmt.Errorf("dialog: %w", err)
	}
	return nil
}
