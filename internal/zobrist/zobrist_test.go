package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chessforge/engine/internal/types"
)

func TestPieceKeysAreUniquePerSquare(t *testing.T) {
	seen := make(map[Key]bool)
	pc := MakePiece(White, Pawn)
	for sq := SqA1; sq < SqNone; sq++ {
		k := Pieces[pc][sq]
		assert.False(t, seen[k], "duplicate zobrist key for square %s", sq)
		seen[k] = true
	}
}

func TestCastlingKeysDifferByRight(t *testing.T) {
	assert.NotEqual(t, Castling[CastlingNone], Castling[CastlingAny])
}

func TestNextPlayerKeyIsNonZero(t *testing.T) {
	assert.NotEqual(t, Key(0), NextPlayer)
}

func TestEnPassantFileKeysAreDistinct(t *testing.T) {
	assert.NotEqual(t, EnPassantFile[FileA], EnPassantFile[FileH])
}
