package ports

import (
	"context"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
)

// SourceFetcher acquires the full source tree, including nested
// sub-repositories, into the given directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type SourceFetcher interface {
	// Fetch clones src.Remote at src.Ref into dir, recursing into submodules
	// when src.Submodules is set. Failure is fatal to the run.
	Fetch(ctx context.Context, src domain.SourceConfig, dir string) error

	// IsCheckout reports whether dir already holds a usable checkout.
	IsCheckout(dir string) bool
}
