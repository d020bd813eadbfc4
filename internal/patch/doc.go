// Package patch applies a recipe to an installed header: it detects a prior
// application through the recipe marker, keeps a one-time backup of the
// original file and inserts a new preprocessor branch in front of the #else
// that closes the anchored block.
//
// Every failure degrades to a Skipped outcome with at most one diagnostic
// line. Nothing here aborts a build.
package patch
