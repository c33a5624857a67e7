package ports

import "context"

// Provisioner materializes the ambient (non-toolchain) dependencies declared
// in a manifest and returns the activation environment for later steps.
//
// Provision is idempotent: re-running against an already-satisfied manifest
// must not error.
//
//go:generate go run go.uber.org/mock/mockgen -source=provisioner.go -destination=mocks/mock_provisioner.go -package=mocks
type Provisioner interface {
	// Provision applies the manifest and returns KEY=VALUE activation
	// variables that subsequent steps inherit.
	Provision(ctx context.Context, manifestPath string) ([]string, error)
}
