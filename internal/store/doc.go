// Package store is killerpack's file-system shell.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Puzzle definition sources read from a directory (DirSourceStore)
//   - Archive and index outputs published as a pair (FileOutputStore)
//
// Source order is fixed by SortNames, a plain byte-order sort of file
// names. Puzzle ids are positions in that order, so the rule is part of the
// output format and must not change.
//
// Outputs are staged to temporary files beside their destinations and are
// renamed into place only once both have been written and synced.
package store
