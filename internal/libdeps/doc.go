// Package libdeps reads metadata of libraries materialized by the dependency
// manager and checks installed versions against semver constraints.
package libdeps
