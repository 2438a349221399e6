// Package app wires application dependencies for the CLI.
//
// It loads and validates Config (YAML), builds the concrete stores and the
// build service from it, and exposes them via App for commands to use.
package app
