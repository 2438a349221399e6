package types

import "fmt"

const (
	// GridSize is the side length of the board.
	GridSize = 9
	// CellCount is the number of cells on the board.
	CellCount = GridSize * GridSize
	// MaxCell is the largest valid encoded cell value.
	MaxCell = CellCount - 1
)

// Cell is a board coordinate encoded as row*9+col.
type Cell uint8

// NewCell encodes (row, col). Both must lie in [0,8].
func NewCell(row, col int) (Cell, error) {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d grid", row, col, GridSize, GridSize)
	}
	return Cell(row*GridSize + col), nil
}

// Row returns the 0-based row.
func (c Cell) Row() int { return int(c) / GridSize }

// Col returns the 0-based column.
func (c Cell) Col() int { return int(c) % GridSize }

// Valid reports whether c addresses a cell on the board.
func (c Cell) Valid() bool { return c <= MaxCell }

// String renders the cell the way puzzle files spell it ("rowcol").
func (c Cell) String() string { return fmt.Sprintf("%d%d", c.Row(), c.Col()) }

// Cage is a group of cells whose values must add up to Sum.
//
// Sum stays an int so that out-of-range values reach the encoder intact
// instead of being truncated on parse.
type Cage struct {
	Sum   int
	Cells []Cell
}

// Puzzle is one definition file's cages in line order.
type Puzzle struct {
	Name  string // source file name, not part of the encoding
	Cages []Cage
}
