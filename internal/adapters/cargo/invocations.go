// Package cargo builds cargo invocations and manages the dependency
// snapshot for the project under test.
package cargo

import (
	"go.gauntlet.dev/gauntlet/internal/core/domain"
)

// baseTestArgs is the fixed flag set of every test invocation. Callers can
// append but never remove: ignored tests are always part of the selection.
var baseTestArgs = []string{"--include-ignored"}

// verboseTestArgs trades parallel, minimally-captured execution for serial,
// fully-captured output.
var verboseTestArgs = []string{"--test-threads=1", "--nocapture"}

// VerifyCommand is the pipeline's verification step: the full suite in
// locked mode, across all feature combinations and all target kinds,
// including tests normally skipped by default. Locked mode makes cargo fail
// instead of silently re-resolving when the snapshot disagrees with the
// manifest.
func VerifyCommand(dir string, env []string) *domain.Command {
	argv := []string{"cargo", "test", "--locked", "--all-features", "--all-targets", "--"}
	argv = append(argv, baseTestArgs...)
	return &domain.Command{
		Name: "cargo test (locked)",
		Argv: argv,
		Dir:  dir,
		Env:  env,
	}
}

// TestCommand is the wrapper's test operation. Caller arguments go last so
// a caller-supplied selection filter wins over the default full-suite
// selection.
func TestCommand(dir string, opts domain.TestOptions) *domain.Command {
	argv := []string{"cargo", "test", "--"}
	argv = append(argv, baseTestArgs...)
	if opts.Verbose {
		argv = append(argv, verboseTestArgs...)
	}
	argv = append(argv, opts.Args...)
	return &domain.Command{
		Name: "cargo test",
		Argv: argv,
		Dir:  dir,
	}
}

// RunCommand invokes the project's default executable entry point with no
// arguments.
func RunCommand(dir string) *domain.Command {
	return &domain.Command{
		Name: "cargo run",
		Argv: []string{"cargo", "run"},
		Dir:  dir,
	}
}

// LintCommand runs static analysis across every buildable unit, including
// test binaries and examples. The exit status is clippy's own severity
// verdict; no threshold is imposed here.
func LintCommand(dir string) *domain.Command {
	return &domain.Command{
		Name: "cargo clippy",
		Argv: []string{"cargo", "clippy", "--all-targets"},
		Dir:  dir,
	}
}

func generateLockfileCommand(dir string) *domain.Command {
	return &domain.Command{
		Name: "cargo generate-lockfile",
		Argv: []string{"cargo", "generate-lockfile"},
		Dir:  dir,
	}
}
