// Package hook wires the header patch into a build pipeline: at build time
// it resolves the header for the target platform, checks the installed
// library version when the recipe constrains it, and applies the recipe.
package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pulsekit/prebuild/internal/buildenv"
	"github.com/pulsekit/prebuild/internal/libdeps"
	"github.com/pulsekit/prebuild/internal/logfields"
	"github.com/pulsekit/prebuild/internal/patch"
	"github.com/pulsekit/prebuild/internal/pipeline"
	"github.com/pulsekit/prebuild/internal/recipe"
)

// ReasonVersionMismatch is the skip reason when the installed library does
// not satisfy the recipe's version constraint.
const ReasonVersionMismatch = "library version mismatch"

// ErrVersionMismatch is wrapped in the outcome error for ReasonVersionMismatch.
var ErrVersionMismatch = errors.New("installed library version outside constraint")

// Options configure the pre-build hook.
type Options struct {
	// Platform is the target environment name. Empty means the PIOENV value
	// of the build environment.
	Platform string

	// Artifact selects the build output the hook runs before. Empty means
	// pipeline.DefaultArtifact.
	Artifact string

	Recipe *recipe.Recipe
	Out    io.Writer
	Logger *slog.Logger

	// OnOutcome, when set, receives the outcome of every run.
	OnOutcome func(patch.Outcome)
}

func (o *Options) defaults() {
	if o.Recipe == nil {
		o.Recipe = recipe.Default()
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Install registers the patch as a pre-action on r.
func Install(r pipeline.Registrar, opts Options) {
	opts.defaults()
	pipeline.Register(r, opts.Artifact, func(ctx context.Context, env buildenv.Environment) error {
		o := Run(env, opts)
		if opts.OnOutcome != nil {
			opts.OnOutcome(o)
		}
		return nil
	})
}

// Run resolves the header and applies the recipe once. Every failure is
// reported through the outcome.
func Run(env buildenv.Environment, opts Options) patch.Outcome {
	opts.defaults()
	platform := opts.Platform
	if platform == "" {
		platform = env.Get(buildenv.KeyPlatform)
	}
	log := opts.Logger.With(logfields.Platform(platform), logfields.Recipe(opts.Recipe.Name))

	path, err := buildenv.ResolveHeader(env, platform, opts.Recipe.Location())
	if err != nil {
		fmt.Fprintf(opts.Out, "Could not resolve %s: %v\n", opts.Recipe.Header, err)
		log.Debug("resolve failed", logfields.Error(err))
		return patch.Outcome{Status: patch.StatusSkipped, Reason: "resolve failed", Err: err}
	}

	if opts.Recipe.LibraryVersion != "" {
		if o, skip := checkVersion(env, platform, path, opts, log); skip {
			return o
		}
	}

	return patch.NewApplier(opts.Out, opts.Logger).Apply(path, opts.Recipe)
}

// checkVersion skips the patch when the installed library declares a version
// outside the recipe constraint. Missing metadata lets the patch proceed.
func checkVersion(env buildenv.Environment, platform, path string, opts Options, log *slog.Logger) (patch.Outcome, bool) {
	libDir, err := buildenv.LibraryDir(env, platform, opts.Recipe.Library)
	if err != nil {
		return patch.Outcome{}, false
	}
	version, err := libdeps.InstalledVersion(libDir)
	if err != nil {
		log.Debug("no installed version, skipping constraint check", logfields.Error(err))
		return patch.Outcome{}, false
	}

	ok, err := libdeps.Satisfies(version, opts.Recipe.LibraryVersion)
	if err != nil {
		log.Debug("version check failed", logfields.Version(version), logfields.Error(err))
		return patch.Outcome{}, false
	}
	if ok {
		return patch.Outcome{}, false
	}

	fmt.Fprintf(opts.Out, "Skipping %s: %s %s does not satisfy %s\n",
		path, opts.Recipe.Library, version, opts.Recipe.LibraryVersion)
	return patch.Outcome{
		Status: patch.StatusSkipped,
		Path:   path,
		Reason: ReasonVersionMismatch,
		Err:    fmt.Errorf("%s %s: %w", opts.Recipe.Library, version, ErrVersionMismatch),
	}, true
}
