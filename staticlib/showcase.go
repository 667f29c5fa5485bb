// Package staticlib is the example library: a single Showcase function any
// program can import and call.
package staticlib

import "hello/internal/greeting"

// Showcase presents the library greeting: in a message box on Windows, on
// stdout elsewhere.
func Showcase() {
	// platformChannel is always a known channel.
	_ = ShowcaseWith(platformChannel, greeting.Options{})
}

// ShowcaseWith presents the library greeting through ch.
func ShowcaseWith(ch greeting.Channel, opts greeting.Options) error {
	e, err := greeting.Resolve(ch, opts)
	if err != nil {
		return err
	}
	greeting.Deliver(e, greeting.StaticLibrary)
	return nil
}

// Channel reports the channel Showcase uses on this build.
func Channel() greeting.Channel { return platformChannel }
