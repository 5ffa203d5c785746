package pkg

import (
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// The rules engine is notnil/chess. Positions are treated as immutable values:
// the only way forward is ApplyMove.

func InitialPosition() *chess.Position {
	return chess.NewGame().Position()
}

// PieceAt looks up the piece on a linear index (a1 = 0).
func PieceAt(pos *chess.Position, idx int) (chess.PieceType, chess.Color) {
	if idx < 0 || idx >= numOfSquaresInBoard {
		return chess.NoPieceType, chess.NoColor
	}
	p := pos.Board().Piece(chess.Square(idx))
	return p.Type(), p.Color()
}

func SideToMove(pos *chess.Position) PlayerColor {
	return ColorOf(pos.Turn())
}

// castling and promotion need punctuation the move line does not accept
var castlingAliases = map[string]string{
	"OO":  "O-O",
	"OOO": "O-O-O",
	"00":  "O-O",
	"000": "O-O-O",
}

// normalizeSAN spells letters-and-digits shorthand the way the notation
// expects it: "OO" for "O-O" and "e8Q" for "e8=Q".
func normalizeSAN(text string) string {
	if s, ok := castlingAliases[text]; ok {
		return s
	}
	n := len(text)
	if n >= 3 && strings.ContainsRune("QRBN", rune(text[n-1])) && (text[n-2] == '1' || text[n-2] == '8') {
		return text[:n-1] + "=" + text[n-1:]
	}
	return text
}

// ParseMove reads SAN text such as "e4" or "Nf3" against pos.
func ParseMove(pos *chess.Position, text string) (*chess.Move, error) {
	m, err := chess.AlgebraicNotation{}.Decode(pos, normalizeSAN(text))
	if err != nil {
		return nil, errors.Wrapf(ErrMoveParse, "%q: %v", text, err)
	}
	return m, nil
}

// ApplyMove returns the position after m. It fails when m is not one of the
// legal moves of pos; pos itself is never modified.
func ApplyMove(pos *chess.Position, m *chess.Move) (*chess.Position, error) {
	if m == nil {
		return nil, errors.Wrap(ErrMoveApplication, "no move")
	}
	for _, valid := range pos.ValidMoves() {
		if valid.S1() == m.S1() && valid.S2() == m.S2() && valid.Promo() == m.Promo() {
			return pos.Update(valid), nil
		}
	}
	return nil, errors.Wrapf(ErrMoveApplication, "%s is illegal", m)
}

// EncodeMove renders m in SAN, relative to the position it was played from.
func EncodeMove(pos *chess.Position, m *chess.Move) string {
	return chess.AlgebraicNotation{}.Encode(pos, m)
}
