//go:build windows
// +build windows

package staticlib

import "hello/internal/greeting"

const platformChannel = greeting.ChannelDialog
