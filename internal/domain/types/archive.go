package types

// Source is one puzzle definition ready to be compiled.
type Source struct {
	Name string // file name; determines the puzzle id through sort order
	Path string // full path used in diagnostics
	Data []byte
}

// Result is the output of a complete build pass.
//
// Index[i] is the byte offset of puzzle i within Archive. Index[0] is 0
// whenever at least one puzzle was built, and len(Archive) marks the end of
// the last record.
type Result struct {
	Archive []byte
	Index   []uint32
	Puzzles []Puzzle
}

// Count returns the number of puzzles in the result.
func (r Result) Count() int { return len(r.Index) }
