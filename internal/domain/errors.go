package domain

import (
	"fmt"
	"strconv"
)

// FormatError reports malformed puzzle definition text.
//
// Line is 1-based. Path is empty when the text did not come from a file;
// the build service fills it in before surfacing the error.
type FormatError struct {
	Path   string
	Line   int
	Token  string
	Reason string
}

func (e *FormatError) Error() string {
	where := "line " + strconv.Itoa(e.Line)
	if e.Path != "" {
		where = e.Path + ":" + strconv.Itoa(e.Line)
	}
	if e.Token != "" {
		return fmt.Sprintf("%s: %s (token %q)", where, e.Reason, e.Token)
	}
	return fmt.Sprintf("%s: %s", where, e.Reason)
}

// EncodingError reports a value that does not fit its fixed-width field.
type EncodingError struct {
	Path  string
	Field string // cage_count, sum, cell_count, cell or offset
	Value int64
	Limit int64
}

func (e *EncodingError) Error() string {
	msg := fmt.Sprintf("%s %d out of range [0,%d]", e.Field, e.Value, e.Limit)
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// IOError wraps a failed read or write on an input or output path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// PartitionError reports a cell that is not covered by exactly one cage.
// Count is how many times the cages list Cell (0 means a gap).
type PartitionError struct {
	Path  string
	Cell  Cell
	Count int
}

func (e *PartitionError) Error() string {
	var msg string
	if e.Count == 0 {
		msg = fmt.Sprintf("cell %s is not in any cage", e.Cell)
	} else {
		msg = fmt.Sprintf("cell %s is claimed %d times", e.Cell, e.Count)
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}
