package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessforge/engine/internal/config"
	"github.com/chessforge/engine/internal/position"
)

func TestEvaluateStartPositionIsSmall(t *testing.T) {
	p, err := position.PositionFromFEN(position.StartFen)
	require.NoError(t, err)

	e := NewEvaluator()
	score := e.Evaluate(p)

	// Symmetric start position: only the tempo bonus should show up.
	assert.InDelta(t, 10, int(score), 1)
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is up a rook.
	p, err := position.PositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)

	e := NewEvaluator()
	score := e.Evaluate(p)

	assert.Greater(t, int(score), 400)
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	// Isolate the side-to-move-relative material/mobility score from the
	// tempo bonus, which deliberately always favors the mover and is not
	// part of this symmetry invariant.
	savedTempo := config.Settings.Eval.TempoBonus
	config.Settings.Eval.TempoBonus = 0
	defer func() { config.Settings.Eval.TempoBonus = savedTempo }()

	white, err := position.PositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)
	black, err := position.PositionFromFEN("4k3/8/8/8/8/8/8/R3K3 b Q - 0 1")
	require.NoError(t, err)

	e := NewEvaluator()
	whiteScore := e.Evaluate(white)
	blackScore := e.Evaluate(black)

	assert.Equal(t, -whiteScore, blackScore)
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	p, err := position.PositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	e := NewEvaluator()
	assert.Equal(t, 0, int(e.Evaluate(p)))
}

func TestCheckMateAndStaleMateDetection(t *testing.T) {
	// Fool's mate: black has just delivered checkmate.
	p, err := position.PositionFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.True(t, IsCheckMate(p))
	assert.False(t, IsStaleMate(p))
}
