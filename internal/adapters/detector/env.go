// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for pipeline progress.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeInteractive renders live progress vertices.
	ModeInteractive
	// ModeLinear logs step lifecycle linearly, suitable for CI output streams.
	ModeLinear
)

// DetectEnvironment returns the recommended output mode based on the
// environment. CI and non-TTY streams get linear output.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeInteractive
}

// ResolveMode applies a user override flag to auto-detection.
// userFlag should be one of: "auto", "interactive", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "interactive":
		return ModeInteractive
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}

// Verbose reports whether the verbosity toggle is set in the environment.
// Any non-empty value enables it.
func Verbose() bool {
	return os.Getenv("GAUNTLET_VERBOSE") != ""
}
