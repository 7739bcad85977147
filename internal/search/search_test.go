package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessforge/engine/internal/position"
	"github.com/chessforge/engine/internal/tt"
	. "github.com/chessforge/engine/internal/types"
)

func TestRunReturnsLegalMoveAtFixedDepth(t *testing.T) {
	p, err := position.PositionFromFEN(position.StartFen)
	require.NoError(t, err)

	s := NewSearch(tt.NewTable(4))
	result := s.Run(p, Limits{Depth: 3})

	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Equal(t, 3, result.Depth)
	assert.Equal(t, position.StartFen, p.ToFEN())
}

func TestRunIsDeterministicWithClearedTT(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	p1, err := position.PositionFromFEN(fen)
	require.NoError(t, err)
	s1 := NewSearch(tt.NewTable(4))
	r1 := s1.Run(p1, Limits{Depth: 3})

	p2, err := position.PositionFromFEN(fen)
	require.NoError(t, err)
	s2 := NewSearch(tt.NewTable(4))
	r2 := s2.Run(p2, Limits{Depth: 3})

	assert.Equal(t, r1.BestMove, r2.BestMove)
	assert.Equal(t, r1.Value, r2.Value)
}

func TestRunFindsMateInOne(t *testing.T) {
	// White to move, Qh5-f7 would be mate pattern; use a simpler forced
	// mate-in-one: back-rank mate available immediately.
	p, err := position.PositionFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := NewSearch(tt.NewTable(4))
	result := s.Run(p, Limits{Depth: 3})

	assert.True(t, result.Value.IsCheckMateValue())
}

func TestRunOnCheckmatedPositionReturnsNoMove(t *testing.T) {
	p, err := position.PositionFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	s := NewSearch(tt.NewTable(4))
	result := s.Run(p, Limits{Depth: 3})

	assert.Equal(t, MoveNone, result.BestMove)
	assert.True(t, result.Value.IsCheckMateValue())
	assert.Less(t, int(result.Value), 0)
}

func TestRunRespectsMoveTime(t *testing.T) {
	p, err := position.PositionFromFEN(position.StartFen)
	require.NoError(t, err)

	s := NewSearch(tt.NewTable(4))
	start := time.Now()
	result := s.Run(p, Limits{MoveTime: 50 * time.Millisecond})
	elapsed := time.Since(start)

	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestStopFromAnotherGoroutineHaltsSearch(t *testing.T) {
	p, err := position.PositionFromFEN(position.StartFen)
	require.NoError(t, err)

	s := NewSearch(tt.NewTable(4))
	done := make(chan *Result, 1)
	go func() {
		done <- s.Run(p, Limits{Depth: MaxDepth})
	}()

	time.Sleep(20 * time.Millisecond)
	s.Stop()

	select {
	case result := <-done:
		assert.NotEqual(t, MoveNone, result.BestMove)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not stop in time")
	}
}
