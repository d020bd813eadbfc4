package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/pulsekit/prebuild/internal/buildenv"
	"github.com/pulsekit/prebuild/internal/logfields"
)

// DefaultArtifact selects the object file of the main translation unit.
const DefaultArtifact = "$BUILD_DIR/src/main.cpp.o"

// ErrUnknownArtifact is returned by Build for an artifact with no target.
var ErrUnknownArtifact = errors.New("unknown artifact")

// Action is a unit of work run by the pipeline.
type Action func(ctx context.Context, env buildenv.Environment) error

// Registrar accepts pre-actions bound to an artifact selector.
type Registrar interface {
	AddPreAction(artifact string, action Action)
}

// Register binds action as a pre-action of the artifact named by selector.
// An empty selector means DefaultArtifact.
func Register(r Registrar, selector string, action Action) {
	if selector == "" {
		selector = DefaultArtifact
	}
	r.AddPreAction(selector, action)
}

// Graph is an in-process pipeline of named artifacts.
type Graph struct {
	env    buildenv.Environment
	logger *slog.Logger

	order   []string
	targets map[string]Action
	pre     map[string][]Action
}

// NewGraph returns an empty Graph evaluated against env.
func NewGraph(env buildenv.Environment, logger *slog.Logger) *Graph {
	if logger == nil {
		logger = slog.Default()
	}
	return &Graph{
		env:     env,
		logger:  logger,
		targets: make(map[string]Action),
		pre:     make(map[string][]Action),
	}
}

// Key normalizes an artifact selector: $VAR references are expanded against
// the graph environment and the result is cleaned.
func (g *Graph) Key(selector string) string {
	return filepath.Clean(buildenv.Subst(g.env, selector))
}

// AddTarget declares an artifact and the action that builds it. Targets are
// built in declaration order.
func (g *Graph) AddTarget(artifact string, build Action) {
	key := g.Key(artifact)
	if _, ok := g.targets[key]; !ok {
		g.order = append(g.order, key)
	}
	g.targets[key] = build
}

// AddPreAction implements Registrar.
func (g *Graph) AddPreAction(artifact string, action Action) {
	key := g.Key(artifact)
	g.pre[key] = append(g.pre[key], action)
}

// Targets returns the declared artifacts in build order.
func (g *Graph) Targets() []string {
	return append([]string(nil), g.order...)
}

// Build evaluates the graph for the given artifacts, or for every declared
// target when none are given. Each artifact is built at most once per call;
// its pre-actions run immediately before its build action. A failing
// pre-action is logged and does not stop the build; a failing build action does.
func (g *Graph) Build(ctx context.Context, artifacts ...string) error {
	keys := g.order
	if len(artifacts) > 0 {
		keys = make([]string, 0, len(artifacts))
		for _, a := range artifacts {
			keys = append(keys, g.Key(a))
		}
	}

	built := make(map[string]bool, len(keys))
	for _, key := range keys {
		if built[key] {
			continue
		}
		build, ok := g.targets[key]
		if !ok {
			return fmt.Errorf("%s: %w", key, ErrUnknownArtifact)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, action := range g.pre[key] {
			if err := action(ctx, g.env); err != nil {
				g.logger.Warn("pre-action failed", logfields.Artifact(key), logfields.Error(err))
			}
		}

		g.logger.Debug("building artifact", logfields.Artifact(key))
		if err := build(ctx, g.env); err != nil {
			return fmt.Errorf("building %s: %w", key, err)
		}
		built[key] = true
	}
	return nil
}
