package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessforge/engine/internal/position"
	. "github.com/chessforge/engine/internal/types"
)

func TestGenerateLegalMovesStartPositionHas20Moves(t *testing.T) {
	p := position.NewPosition()
	moves := GenerateLegalMoves(p)
	assert.Len(t, moves, 20)
}

func TestHasLegalMoveFalseOnCheckmate(t *testing.T) {
	p, err := position.PositionFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.False(t, HasLegalMove(p))
}

func TestHasLegalMoveTrueOnStartPosition(t *testing.T) {
	p := position.NewPosition()
	assert.True(t, HasLegalMove(p))
}

func TestGenerateLegalMovesExcludesMovesThatLeaveKingInCheck(t *testing.T) {
	p, err := position.PositionFromFEN("4k3/8/8/8/8/4r3/8/4K3 w - - 0 1")
	require.NoError(t, err)
	for _, m := range GenerateLegalMoves(p) {
		assert.NotEqual(t, SqE2, m.To(), "king must not be allowed to step onto the attacked square")
	}
}

func TestGenerateLegalMovesIncludesCastling(t *testing.T) {
	p, err := position.PositionFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	found := false
	for _, m := range GenerateLegalMoves(p) {
		if m.MoveType() == Castling {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPerftStartPositionKnownNodeCounts(t *testing.T) {
	// Reference counts from the chessprogramming.org Perft Results page.
	// Any deviation here is a move-generator bug, not a test-tuning knob.
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8_902},
		{4, 197_281},
		{5, 4_865_609},
	}
	for _, c := range cases {
		perft := NewPerft()
		nodes, err := perft.Run(position.StartFen, c.depth)
		require.NoError(t, err)
		assert.Equal(t, c.nodes, nodes, "depth %d", c.depth)
	}
}

// TestPerftReferencePositionsKnownNodeCounts runs the remaining CPW Perft
// Results positions (Kiwipete, the Position 3 endgame, and Positions 4/5)
// that together with the start position form the standard move-generator
// validation set. Any deviation is a move-generator bug.
func TestPerftReferencePositionsKnownNodeCounts(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97_862},
		{"position3_endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43_238},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3, 9_467},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62_379},
	}
	for _, c := range cases {
		perft := NewPerft()
		nodes, err := perft.Run(c.fen, c.depth)
		require.NoError(t, err)
		assert.Equal(t, c.nodes, nodes, "%s depth %d", c.name, c.depth)
	}
}

func TestDivideSumsToSingleDepthPerft(t *testing.T) {
	result, err := Divide(position.StartFen, 2)
	require.NoError(t, err)
	var total uint64
	for _, n := range result {
		total += n
	}
	assert.Equal(t, uint64(400), total)
	assert.Len(t, result, 20)
}
