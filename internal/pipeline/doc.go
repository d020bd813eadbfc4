// Package pipeline is the hook surface between prebuild and a build
// pipeline. Hooks are registered as pre-actions of a build artifact and run
// synchronously, once per evaluation, strictly before the artifact is built.
//
// Graph is a small in-process pipeline used by the build command and tests.
package pipeline
