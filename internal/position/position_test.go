package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/chessforge/engine/internal/types"
)

func TestNewPositionMatchesStartFen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.ToFEN())
	assert.Equal(t, White, p.NextPlayer())
}

func TestPositionFromFENRejectsGarbage(t *testing.T) {
	_, err := PositionFromFEN("not a fen")
	require.Error(t, err)
}

func TestFENRoundTripsForKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := PositionFromFEN(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.ToFEN())
}

func TestDoMoveSetsEnPassantSquareOnDoublePawnPush(t *testing.T) {
	p := NewPosition()
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	p.DoMove(m)
	assert.Equal(t, SqE3, p.EnPassantSquare())
	assert.Equal(t, Black, p.NextPlayer())
}

func TestUndoMoveRestoresPriorState(t *testing.T) {
	p := NewPosition()
	before := p.ToFEN()
	beforeKey := p.ZobristKey()

	p.DoMove(CreateMove(SqG1, SqF3, Normal, PtNone))
	assert.NotEqual(t, before, p.ToFEN())

	p.UndoMove()
	assert.Equal(t, before, p.ToFEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestCaptureRemovesDefendingPiece(t *testing.T) {
	p, err := PositionFromFEN("4k3/8/8/8/4p3/8/3P4/4K3 w - - 0 1")
	require.NoError(t, err)

	m := CreateMove(SqD2, SqE4, Normal, PtNone)
	p.DoMove(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqD2))
	whitePawn := MakePiece(White, Pawn)
	assert.Equal(t, whitePawn, p.PieceAt(SqE4))

	p.UndoMove()
	assert.Equal(t, whitePawn, p.PieceAt(SqD2))
	blackPawn := MakePiece(Black, Pawn)
	assert.Equal(t, blackPawn, p.PieceAt(SqE4))
}

func TestEnPassantCaptureRemovesPawnBehindTarget(t *testing.T) {
	p, err := PositionFromFEN("4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1")
	require.NoError(t, err)

	m := CreateMove(SqD5, SqE6, EnPassant, PtNone)
	p.DoMove(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqE5))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceAt(SqE6))

	p.UndoMove()
	assert.Equal(t, MakePiece(Black, Pawn), p.PieceAt(SqE5))
}

func TestCastlingMovesBothKingAndRook(t *testing.T) {
	p, err := PositionFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	m := CreateMove(SqE1, SqG1, Castling, PtNone)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, King), p.PieceAt(SqG1))
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))

	p.UndoMove()
	assert.Equal(t, MakePiece(White, King), p.PieceAt(SqE1))
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(SqH1))
}

func TestPromotionReplacesThePawn(t *testing.T) {
	p, err := PositionFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := CreateMove(SqA7, SqA8, Promotion, Queen)
	p.DoMove(m)
	assert.Equal(t, MakePiece(White, Queen), p.PieceAt(SqA8))

	p.UndoMove()
	assert.Equal(t, MakePiece(White, Pawn), p.PieceAt(SqA7))
	assert.Equal(t, PieceNone, p.PieceAt(SqA8))
}

func TestIsLegalMoveRejectsMovesThatExposeOwnKing(t *testing.T) {
	p, err := PositionFromFEN("4k3/8/8/8/8/4r3/8/4K3 w - - 0 1")
	require.NoError(t, err)

	pinned := CreateMove(SqE1, SqD1, Normal, PtNone)
	assert.True(t, p.IsLegalMove(pinned))

	intoCheck := CreateMove(SqE1, SqE2, Normal, PtNone)
	assert.False(t, p.IsLegalMove(intoCheck))
}

func TestHasInsufficientMaterialForBareKings(t *testing.T) {
	p, err := PositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialFalseWithRook(t *testing.T) {
	p, err := PositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial())
}

// TestZobristKeyStaysConsistentWithFreshComputation walks a sequence of
// moves covering a normal push, a capture, castling, an en passant
// capture and a promotion, and checks after every DoMove and UndoMove
// that the incrementally maintained key matches one computed from
// scratch. Any deviation means a zobrist update was missed or doubled
// somewhere in DoMove/UndoMove.
func TestZobristKeyStaysConsistentWithFreshComputation(t *testing.T) {
	p, err := PositionFromFEN("r3k2r/1pP1p3/8/2Pp4/8/8/4P3/R3K2R w KQkq d6 0 1")
	require.NoError(t, err)

	moves := []Move{
		CreateMove(SqC5, SqD6, EnPassant, PtNone),
		CreateMove(SqE7, SqE5, Normal, PtNone),
		CreateMove(SqC7, SqC8, Promotion, Queen),
		CreateMove(SqE8, SqD7, Normal, PtNone),
		CreateMove(SqE1, SqG1, Castling, PtNone),
		CreateMove(SqA8, SqA1, Normal, PtNone),
	}

	check := func() {
		assert.Equal(t, p.recomputeZobrist(), p.ZobristKey())
	}

	check()
	for _, m := range moves {
		p.DoMove(m)
		check()
	}
	for range moves {
		p.UndoMove()
		check()
	}
	check()
}
