//go:build messagebox
// +build messagebox

package greeting

// BuildChannel is the output channel selected at compile time.
const BuildChannel = ChannelDialog
