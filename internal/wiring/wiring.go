// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.gauntlet.dev/gauntlet/internal/adapters/cargo"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/conda"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/config"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/fs"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/git"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/logger"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/rustup"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/shell"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/state"
	_ "go.gauntlet.dev/gauntlet/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.gauntlet.dev/gauntlet/internal/app"
)
