// Package validate holds optional consistency checks run before encoding.
package validate

import "killerpack/internal/domain"

// Partition checks that a puzzle's cages cover every board cell exactly once.
type Partition struct{}

// NewPartition returns a partition checker.
func NewPartition() Partition { return Partition{} }

// Check returns a *domain.PartitionError for the lowest-numbered cell that is
// missing or listed more than once. Cells off the board are left to the
// encoder.
func (Partition) Check(p domain.Puzzle) error {
	var seen [domain.CellCount]int
	for _, cage := range p.Cages {
		for _, c := range cage.Cells {
			if c.Valid() {
				seen[c]++
			}
		}
	}
	for i, n := range seen {
		if n != 1 {
			return &domain.PartitionError{Cell: domain.Cell(i), Count: n}
		}
	}
	return nil
}

var _ domain.PartitionChecker = Partition{}
