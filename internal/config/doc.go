// Package config manages project-level settings stored in prebuild.yaml next
// to platformio.ini, with PREBUILD_* environment variables taking precedence.
// It provides functions to load, read and write keys such as the target
// platform and the dependency install root.
package config
