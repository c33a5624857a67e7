// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
)

// Executor runs prepared commands.
//
// Script commands execute under a login shell with errexit and pipefail;
// argv commands execute directly. Output is streamed verbatim to the given
// writers in addition to the logger, and the underlying exit status is
// attached to the returned error as metadata. No retry, no translation.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
