package domain

// Command is a single external invocation prepared by an adapter.
//
// Exactly one of Argv or Script is set. Argv commands run directly via
// os/exec. Script commands run under a login shell with errexit and
// pipefail, so a failure anywhere in a piped command fails the whole step.
type Command struct {
	// Name identifies the invocation in logs and spans.
	Name string
	// Argv is the program and its arguments.
	Argv []string
	// Script is a shell script body, mutually exclusive with Argv.
	Script string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra KEY=VALUE pairs layered over the inherited environment.
	Env []string
}

// IsScript reports whether the command must run under the shell contract.
func (c *Command) IsScript() bool {
	return c.Script != ""
}
