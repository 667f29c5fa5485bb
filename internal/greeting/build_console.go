//go:build !messagebox
// +build !messagebox

package greeting

// BuildChannel is the output channel selected at compile time. Build with
// -tags messagebox to select the dialog.
const BuildChannel = ChannelConsole
