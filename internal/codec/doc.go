// Package codec implements the binary puzzle record and index layouts.
//
// Puzzle record (all fields unsigned bytes, no padding):
//
//	cage_count
//	for each cage: sum, cell_count, cells[cell_count]
//
// Index: one little-endian uint32 per puzzle holding the byte offset of its
// record in the archive. Entry i lives at byte 4*i.
//
// Values that do not fit a field are rejected with *domain.EncodingError,
// never truncated.
package codec
