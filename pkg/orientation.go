package pkg

import (
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

const (
	boardSize           = 8
	numOfSquaresInBoard = boardSize * boardSize
)

// Orientation is the side of the board drawn at the bottom of the screen.
type Orientation int

const (
	FromWhiteSide Orientation = iota
	FromBlackSide
)

func (o Orientation) String() string {
	if o == FromBlackSide {
		return "black"
	}
	return "white"
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "white", "w":
		return FromWhiteSide, nil
	case "black", "b":
		return FromBlackSide, nil
	}
	return FromWhiteSide, errors.Errorf("unknown orientation %q", s)
}

// Bottom is the color whose pieces start at the bottom of the screen.
func (o Orientation) Bottom() PlayerColor {
	if o == FromBlackSide {
		return Black
	}
	return White
}

// Index maps a visual cell (row 0 at the top, col 0 at the left) to the
// rules engine's linear index, where a1 is 0 and h8 is 63. Viewing from
// black flips both rows and columns.
func (o Orientation) Index(row, col int) int {
	if o == FromBlackSide {
		return row*boardSize + (boardSize - 1 - col)
	}
	return (boardSize-1-row)*boardSize + col
}

// Cell is the inverse of Index.
func (o Orientation) Cell(idx int) (row, col int) {
	rank, file := idx/boardSize, idx%boardSize
	if o == FromBlackSide {
		return rank, boardSize - 1 - file
	}
	return boardSize - 1 - rank, file
}

func (o Orientation) Square(row, col int) chess.Square {
	return chess.Square(o.Index(row, col))
}

// RankLabel is the rank hint printed beside visual row row.
func (o Orientation) RankLabel(row int) string {
	return o.Square(row, 0).Rank().String()
}

// FileLabel is the file hint printed beneath visual column col.
func (o Orientation) FileLabel(col int) string {
	return o.Square(0, col).File().String()
}

// FileLine is the full hint line beneath the board, e.g. "a b c d e f g h".
func (o Orientation) FileLine() string {
	files := make([]string, boardSize)
	for c := range files {
		files[c] = o.FileLabel(c)
	}
	return strings.Join(files, " ")
}
