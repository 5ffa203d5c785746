package pkg

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPosition(t *testing.T) {
	pos := InitialPosition()
	assert.Equal(t, White, SideToMove(pos))

	kind, color := PieceAt(pos, int(chess.E1))
	assert.Equal(t, chess.King, kind)
	assert.Equal(t, chess.White, color)

	kind, color = PieceAt(pos, int(chess.D8))
	assert.Equal(t, chess.Queen, kind)
	assert.Equal(t, chess.Black, color)

	kind, color = PieceAt(pos, int(chess.E4))
	assert.Equal(t, chess.NoPieceType, kind)
	assert.Equal(t, chess.NoColor, color)

	kind, _ = PieceAt(pos, 64)
	assert.Equal(t, chess.NoPieceType, kind)
}

func TestParseAndApply(t *testing.T) {
	pos := InitialPosition()
	m, err := ParseMove(pos, "Nf3")
	require.NoError(t, err)
	assert.Equal(t, chess.G1, m.S1())
	assert.Equal(t, chess.F3, m.S2())

	next, err := ApplyMove(pos, m)
	require.NoError(t, err)
	assert.Equal(t, Black, SideToMove(next))
	assert.Equal(t, chess.WhiteKnight, next.Board().Piece(chess.F3))
	// the original position is untouched
	assert.Equal(t, chess.WhiteKnight, pos.Board().Piece(chess.G1))
}

func TestParseMoveFailure(t *testing.T) {
	pos := InitialPosition()
	for _, text := range []string{"zz9", "", "e5", "Ke2", "Nf6"} {
		_, err := ParseMove(pos, text)
		require.Error(t, err, text)
		assert.True(t, IsMoveParse(err), text)
		assert.False(t, IsMoveApplication(err), text)
	}
}

func TestApplyMoveRejectsMoveFromAnotherPosition(t *testing.T) {
	pos := InitialPosition()
	e4, err := ParseMove(pos, "e4")
	require.NoError(t, err)
	after, err := ApplyMove(pos, e4)
	require.NoError(t, err)

	_, err = ApplyMove(after, e4)
	require.Error(t, err)
	assert.True(t, IsMoveApplication(err))

	_, err = ApplyMove(after, nil)
	assert.True(t, IsMoveApplication(err))
}

func TestParseShorthand(t *testing.T) {
	pos := InitialPosition()
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5"} {
		m, err := ParseMove(pos, san)
		require.NoError(t, err, san)
		pos, err = ApplyMove(pos, m)
		require.NoError(t, err, san)
	}
	m, err := ParseMove(pos, "OO")
	require.NoError(t, err)
	assert.True(t, m.HasTag(chess.KingSideCastle))

	assert.Equal(t, "e8=Q", normalizeSAN("e8Q"))
	assert.Equal(t, "dxc1=N", normalizeSAN("dxc1N"))
	assert.Equal(t, "O-O-O", normalizeSAN("000"))
	assert.Equal(t, "Nf3", normalizeSAN("Nf3"))
}

func TestEncodeMove(t *testing.T) {
	pos := InitialPosition()
	m, err := ParseMove(pos, "Nf3")
	require.NoError(t, err)
	assert.Equal(t, "Nf3", EncodeMove(pos, m))
}
