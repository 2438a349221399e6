// Package parser turns puzzle definition text into cages.
//
// A definition holds one cage per line:
//
//	<sum> <cell> <cell> ...
//
// where each cell is a two-digit "rowcol" token with row and column in
// [0,8]. Blank lines are ignored. Any other deviation is reported as a
// *domain.FormatError carrying the line number and offending token.
package parser
