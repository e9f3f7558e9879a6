// Package cli provides shared formatting helpers for enodebdctl.
package cli

import "strings"

// ANSI color helpers

func Green(s string) string  { return "\033[32m" + s + "\033[0m" }
func Yellow(s string) string { return "\033[33m" + s + "\033[0m" }
func Red(s string) string    { return "\033[31m" + s + "\033[0m" }
func Bold(s string) string   { return "\033[1m" + s + "\033[0m" }
func Dim(s string) string    { return "\033[2m" + s + "\033[0m" }

// DotPad pads name with dots to the given width.
// Example: DotPad("serial-120200002618AGP00124", 30) → "serial-120200002618AGP00124 .."
func DotPad(name string, width int) string {
	if width <= 0 || len(name) >= width-1 {
		return name
	}
	dots := width - len(name) - 1
	return name + " " + strings.Repeat(".", dots)
}

// BoolIndicator colors a yes/no flag green or red, for status table
// cells like "connected" or "RF tx on" that are meaningful at a glance.
func BoolIndicator(b bool) string {
	if b {
		return Green("yes")
	}
	return Red("no")
}

// StateColor colors an FSM state label: the error state red, the idle
// label (waiting for the device's next periodic Inform) green,
// everything mid-session (still provisioning or running a manual
// branch) yellow.
func StateColor(state string) string {
	switch state {
	case "unexpected_fault":
		return Red(state)
	case "wait_inform":
		return Green(state)
	default:
		return Yellow(state)
	}
}
