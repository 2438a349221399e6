// Package commands defines the killerpack CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - build        Compile a puzzle directory into an archive and index
//   - check        Parse and encode every puzzle without writing output
//   - lookup       Print the byte range of one puzzle in the archive
//   - fingerprint  Print digests of the published archive and index
//   - init         Write a default killerpack.yaml
//
// # Implementation
//
// The root command merges the YAML config with any explicitly set flags,
// builds a logger and the app dependency graph before a subcommand runs, so
// handlers share one validated configuration.
package commands
