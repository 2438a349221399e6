package interfaces

import domaintypes "killerpack/internal/domain/types"

// SourceStore yields puzzle definitions in puzzle-id order.
type SourceStore interface {
	LoadSources() ([]domaintypes.Source, error)
}

// OutputStore publishes a finished archive and its index together.
type OutputStore interface {
	Publish(archive, index []byte) error
}
