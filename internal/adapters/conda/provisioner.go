// Package conda provisions the ambient dependency environment from a
// declarative manifest using the conda CLI.
package conda

import (
	"bytes"
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Provisioner implements ports.Provisioner by driving `conda env update`
// and capturing the resulting activation environment.
type Provisioner struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewProvisioner creates a new conda Provisioner.
func NewProvisioner(executor ports.Executor, logger ports.Logger) *Provisioner {
	return &Provisioner{
		executor: executor,
		logger:   logger,
	}
}

// manifest is the subset of environment.yml this adapter reads. Everything
// else in the manifest is owned by conda.
type manifest struct {
	Name string `yaml:"name"`
}

// Provision materializes the environment declared by the manifest and
// returns its activation variables.
//
// `conda env update --prune` converges an existing environment instead of
// failing on one, which gives the step its idempotence: re-provisioning an
// already-satisfied manifest is a no-op.
func (p *Provisioner) Provision(ctx context.Context, manifestPath string) ([]string, error) {
	name, err := readEnvName(manifestPath)
	if err != nil {
		return nil, err
	}

	update := &domain.Command{
		Name:   "conda env update",
		Script: "conda env update --quiet --file " + shellQuote(manifestPath) + " --prune",
	}
	if err := p.executor.Execute(ctx, update, io.Discard, io.Discard); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to provision environment"), "manifest", manifestPath)
	}

	env, err := p.captureActivationEnv(ctx, name)
	if err != nil {
		return nil, err
	}

	p.logger.Info("provisioned conda environment " + name)
	return env, nil
}

// captureActivationEnv runs `env` inside the named environment and parses
// the activation variables subsequent steps must inherit.
func (p *Provisioner) captureActivationEnv(ctx context.Context, name string) ([]string, error) {
	var out bytes.Buffer
	capture := &domain.Command{
		Name:   "conda activation capture",
		Script: "conda run --no-capture-output -n " + shellQuote(name) + " env",
	}
	if err := p.executor.Execute(ctx, capture, &out, io.Discard); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to capture activation environment"), "environment", name)
	}

	var env []string
	for _, line := range strings.Split(out.String(), "\n") {
		line = strings.TrimRight(line, "\r")
		if k, _, ok := strings.Cut(line, "="); ok && k != "" {
			env = append(env, line)
		}
	}
	slices.Sort(env)
	return env, nil
}

func readEnvName(manifestPath string) (string, error) {
	data, err := os.ReadFile(manifestPath) //nolint:gosec // path comes from the pipeline configuration
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read environment manifest"), "manifest", manifestPath)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to parse environment manifest"), "manifest", manifestPath)
	}
	if m.Name == "" {
		return "", zerr.With(zerr.New("environment manifest has no name"), "manifest", manifestPath)
	}
	return m.Name, nil
}

// shellQuote single-quotes a value for safe interpolation into a script body.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

var _ ports.Provisioner = (*Provisioner)(nil)
