package parser

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"killerpack/internal/domain"
)

// Parse parses one puzzle definition. Cages are returned in line order and
// cells in token order.
func Parse(text []byte) ([]domain.Cage, error) {
	return ParseReader(bytes.NewReader(text))
}

// ParseReader is Parse over a stream. Lines may be of any length. Read
// failures are returned unwrapped.
func ParseReader(r io.Reader) ([]domain.Cage, error) {
	br := bufio.NewReader(r)
	var cages []domain.Cage
	line := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if raw == "" && err != nil {
			break
		}
		line++
		if text := strings.TrimSpace(raw); text != "" {
			cage, perr := parseLine(line, text)
			if perr != nil {
				return nil, perr
			}
			cages = append(cages, cage)
		}
		if err != nil {
			break
		}
	}
	return cages, nil
}

func parseLine(line int, text string) (domain.Cage, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return domain.Cage{}, &domain.FormatError{
			Line:   line,
			Token:  text,
			Reason: "cage needs a sum and at least one cell",
		}
	}

	sum, err := strconv.Atoi(fields[0])
	if errors.Is(err, strconv.ErrRange) {
		// Atoi clamps to the nearest int bound.
		return domain.Cage{}, &domain.EncodingError{Field: "sum", Value: int64(sum), Limit: math.MaxUint8}
	}
	if err != nil {
		return domain.Cage{}, &domain.FormatError{
			Line:   line,
			Token:  fields[0],
			Reason: "sum is not an integer",
		}
	}

	cells := make([]domain.Cell, 0, len(fields)-1)
	for _, tok := range fields[1:] {
		c, err := parseCell(tok)
		if err != nil {
			return domain.Cage{}, &domain.FormatError{Line: line, Token: tok, Reason: err.Error()}
		}
		cells = append(cells, c)
	}
	return domain.Cage{Sum: sum, Cells: cells}, nil
}

var (
	errCellLength = errors.New("cell must be exactly two digits")
	errCellDigit  = errors.New("cell row and column must be digits 0-8")
)

// parseCell decodes a "rowcol" token.
func parseCell(tok string) (domain.Cell, error) {
	if len(tok) != 2 {
		return 0, errCellLength
	}
	row, ok := gridDigit(tok[0])
	if !ok {
		return 0, errCellDigit
	}
	col, ok := gridDigit(tok[1])
	if !ok {
		return 0, errCellDigit
	}
	return domain.NewCell(row, col)
}

func gridDigit(b byte) (int, bool) {
	if b < '0' || b >= '0'+domain.GridSize {
		return 0, false
	}
	return int(b - '0'), true
}
