package codec

import (
	"math"

	"killerpack/internal/domain"
)

const maxField = math.MaxUint8

// RecordSize returns the encoded length of a puzzle with the given cages.
func RecordSize(cages []domain.Cage) int {
	n := 1
	for _, c := range cages {
		n += 2 + len(c.Cells)
	}
	return n
}

// EncodePuzzle returns the binary record for cages.
func EncodePuzzle(cages []domain.Cage) ([]byte, error) {
	return AppendPuzzle(make([]byte, 0, RecordSize(cages)), cages)
}

// AppendPuzzle appends the record for cages to dst. On error dst is returned
// unchanged.
func AppendPuzzle(dst []byte, cages []domain.Cage) ([]byte, error) {
	if err := checkPuzzle(cages); err != nil {
		return dst, err
	}
	dst = append(dst, byte(len(cages)))
	for _, c := range cages {
		dst = append(dst, byte(c.Sum), byte(len(c.Cells)))
		for _, cell := range c.Cells {
			dst = append(dst, byte(cell))
		}
	}
	return dst, nil
}

func checkPuzzle(cages []domain.Cage) error {
	if len(cages) > maxField {
		return rangeErr("cage_count", int64(len(cages)), maxField)
	}
	for _, c := range cages {
		if c.Sum < 0 || c.Sum > maxField {
			return rangeErr("sum", int64(c.Sum), maxField)
		}
		if len(c.Cells) > maxField {
			return rangeErr("cell_count", int64(len(c.Cells)), maxField)
		}
		for _, cell := range c.Cells {
			if !cell.Valid() {
				return rangeErr("cell", int64(cell), domain.MaxCell)
			}
		}
	}
	return nil
}

func rangeErr(field string, v, limit int64) *domain.EncodingError {
	return &domain.EncodingError{Field: field, Value: v, Limit: limit}
}
