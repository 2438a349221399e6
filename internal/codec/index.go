package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"killerpack/internal/domain"
)

// IndexEntrySize is the width of one index entry in bytes.
const IndexEntrySize = 4

// EncodeIndex serialises offsets as consecutive little-endian uint32s.
func EncodeIndex(offsets []uint32) []byte {
	buf := make([]byte, IndexEntrySize*len(offsets))
	for i, off := range offsets {
		binary.LittleEndian.PutUint32(buf[i*IndexEntrySize:], off)
	}
	return buf
}

// IndexLen returns the number of entries in an encoded index.
func IndexLen(index []byte) (int, error) {
	if len(index)%IndexEntrySize != 0 {
		return 0, fmt.Errorf("index length %d is not a multiple of %d", len(index), IndexEntrySize)
	}
	return len(index) / IndexEntrySize, nil
}

// OffsetAt reads entry i of an encoded index.
func OffsetAt(index []byte, i int) (uint32, error) {
	n, err := IndexLen(index)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("puzzle %d out of range [0,%d)", i, n)
	}
	return binary.LittleEndian.Uint32(index[i*IndexEntrySize:]), nil
}

// Span returns the byte range [start,end) of puzzle i's record in an archive
// of archiveSize bytes. The last puzzle ends at archiveSize.
func Span(index []byte, i int, archiveSize int64) (start, end int64, err error) {
	off, err := OffsetAt(index, i)
	if err != nil {
		return 0, 0, err
	}
	start = int64(off)
	end = archiveSize
	if n, _ := IndexLen(index); i+1 < n {
		next, _ := OffsetAt(index, i+1)
		end = int64(next)
	}
	if start > end || end > archiveSize {
		return 0, 0, fmt.Errorf("puzzle %d span [%d,%d) inconsistent with archive size %d", i, start, end, archiveSize)
	}
	return start, end, nil
}

// IndexOffset narrows an archive position to an index entry. Only positions
// that start a record need to fit; the end of the last record is never
// stored.
func IndexOffset(pos uint64) (uint32, error) {
	if pos > math.MaxUint32 {
		return 0, &domain.EncodingError{Field: "offset", Value: int64(pos), Limit: math.MaxUint32}
	}
	return uint32(pos), nil
}
