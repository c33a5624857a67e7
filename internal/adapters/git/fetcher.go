// Package git implements source acquisition using go-git.
package git

import (
	"context"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher implements ports.SourceFetcher using go-git.
type Fetcher struct {
	logger ports.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(logger ports.Logger) *Fetcher {
	return &Fetcher{logger: logger}
}

// Fetch clones the remote at the configured ref into dir. Submodule
// recursion is unbounded when enabled, so nested sub-repositories are
// materialized along with the top-level tree.
func (f *Fetcher) Fetch(ctx context.Context, src domain.SourceConfig, dir string) error {
	opts := &gogit.CloneOptions{
		URL: src.Remote,
	}
	if src.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Ref)
		opts.SingleBranch = true
	}
	if src.Submodules {
		opts.RecurseSubmodules = gogit.DefaultSubmoduleRecursionDepth
	}

	f.logger.Info("fetching source from " + src.Remote)
	if _, err := gogit.PlainCloneContext(ctx, dir, false, opts); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to fetch source"), "remote", src.Remote)
	}
	return nil
}

// IsCheckout reports whether dir already holds a git checkout.
func (f *Fetcher) IsCheckout(dir string) bool {
	_, err := gogit.PlainOpen(dir)
	return err == nil
}

var _ ports.SourceFetcher = (*Fetcher)(nil)
