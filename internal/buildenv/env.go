package buildenv

import (
	"os"
	"sort"
)

// Well-known environment keys.
const (
	KeyProjectDir = "PROJECT_DIR"
	KeyLibDepsDir = "PROJECT_LIBDEPS_DIR"
	KeyBuildDir   = "BUILD_DIR"
	KeyPlatform   = "PIOENV"
)

// Environment is the read-only view of build metadata a hook may query.
type Environment interface {
	Get(key string) string
}

// Env is a map-backed Environment.
type Env map[string]string

// Get returns the value stored under key, or "" when unset.
func (e Env) Get(key string) string {
	return e[key]
}

// Keys returns the set keys in sorted order.
func (e Env) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Subst expands $KEY and ${KEY} references in s against env.
// Unknown keys expand to the empty string.
func Subst(env Environment, s string) string {
	return os.Expand(s, env.Get)
}
