package greeting

import (
	"errors"
	"fmt"
	"strings"
)

// Channel names the mechanism a greeting is presented through.
type Channel string

const (
	ChannelConsole Channel = "console"
	ChannelDialog  Channel = "dialog"
	// ChannelAuto uses the console when stdout is a terminal and a dialog
	// otherwise.
	ChannelAuto Channel = "auto"
)

var ErrUnknownChannel = errors.New("unknown output channel")

// ParseChannel maps a flag value to a Channel. The empty string selects
// BuildChannel.
func ParseChannel(s string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return BuildChannel, nil
	case ChannelConsole:
		return ChannelConsole, nil
	case ChannelDialog:
		return ChannelDialog, nil
	case ChannelAuto:
		return ChannelAuto, nil
	}
	return "", fmt.Errorf("%w: %q (want console, dialog or auto)", ErrUnknownChannel, s)
}

func (c Channel) String() string { return string(c) }
