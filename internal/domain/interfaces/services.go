package interfaces

import domaintypes "killerpack/internal/domain/types"

// BuildService compiles ordered sources into an archive and index.
type BuildService interface {
	Build(sources []domaintypes.Source) (domaintypes.Result, error)
}

// PartitionChecker verifies that a puzzle's cages cover the board.
type PartitionChecker interface {
	Check(p domaintypes.Puzzle) error
}
