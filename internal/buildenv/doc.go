// Package buildenv models the read-only build environment the pre-build hook
// runs in and resolves the on-disk location of installed library headers.
//
// The environment is a key/value view in the PlatformIO naming scheme
// (PROJECT_LIBDEPS_DIR, BUILD_DIR, PIOENV). Installed libraries follow the
// layout <libdeps>/<platform>/<library>/<header>.
package buildenv
