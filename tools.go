//go:build tools
// +build tools

// Tracks tool dependencies (staticcheck) so `go mod tidy` keeps them in go.mod.
// Not built into either example binary.
package main

import _ "honnef.co/go/tools/cmd/staticcheck"
