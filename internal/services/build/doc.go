// Package build compiles ordered puzzle sources into an archive and index.
//
// The running byte position is threaded through the build as an explicit
// accumulator: each source is parsed, optionally checked, encoded and
// appended, and its start offset recorded. The first failure aborts the
// whole build and no result is returned.
package build
