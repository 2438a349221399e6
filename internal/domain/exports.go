package domain

import (
	interfaces "killerpack/internal/domain/interfaces"
	types "killerpack/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Cell   = types.Cell
	Cage   = types.Cage
	Puzzle = types.Puzzle
	Source = types.Source
	Result = types.Result
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SourceStore      = interfaces.SourceStore
	OutputStore      = interfaces.OutputStore
	BuildService     = interfaces.BuildService
	PartitionChecker = interfaces.PartitionChecker
)

const (
	GridSize  = types.GridSize
	CellCount = types.CellCount
	MaxCell   = types.MaxCell
)

// NewCell encodes (row, col) as a Cell.
func NewCell(row, col int) (Cell, error) { return types.NewCell(row, col) }
