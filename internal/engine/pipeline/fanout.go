package pipeline

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.trai.ch/zerr"
)

// RunMatrix executes fn once per matrix entry, entries in parallel.
//
// Entries are isolated: they share no state and one entry's failure neither
// cancels nor reorders its siblings, so the group deliberately carries no
// shared cancelable context. The verdict is the joined error set — nil only
// when every entry passed.
func RunMatrix(ctx context.Context, m domain.Matrix, fn func(ctx context.Context, tc domain.Toolchain) error) error {
	if err := m.Validate(); err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs error
	)

	g := new(errgroup.Group)
	for _, tc := range m.Normalized() {
		g.Go(func() error {
			if err := fn(ctx, tc); err != nil {
				wrapped := zerr.With(zerr.Wrap(err, "matrix entry failed"), "toolchain", tc.String())
				mu.Lock()
				errs = errors.Join(errs, wrapped)
				mu.Unlock()
				return wrapped
			}
			return nil
		})
	}

	_ = g.Wait()
	return errs
}
