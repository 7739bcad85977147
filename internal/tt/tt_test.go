package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chessforge/engine/internal/types"
	"github.com/chessforge/engine/internal/zobrist"
)

func TestPutAndProbe(t *testing.T) {
	table := NewTable(1)
	key := zobrist.Key(12345)

	table.Put(key, CreateMove(SqE2, SqE4, Normal, PtNone), 4, Value(123), VtExact, Value(100))

	e := table.Probe(key)
	assert.NotNil(t, e)
	assert.EqualValues(t, 123, e.Value())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, VtExact, e.Type())
}

func TestProbeMissReturnsNil(t *testing.T) {
	table := NewTable(1)
	assert.Nil(t, table.Probe(zobrist.Key(999)))
}

func TestResizeToZeroStoresNothing(t *testing.T) {
	table := NewTable(0)
	table.Put(zobrist.Key(1), MoveNone, 1, ValueZero, VtExact, ValueZero)
	assert.Nil(t, table.Probe(zobrist.Key(1)))
}

func TestClearEmptiesTable(t *testing.T) {
	table := NewTable(1)
	key := zobrist.Key(42)
	table.Put(key, MoveNone, 1, Value(50), VtExact, Value(50))
	assert.NotNil(t, table.Probe(key))

	table.Clear()
	assert.Nil(t, table.Probe(key))
	assert.EqualValues(t, 0, table.Len())
}

func TestValueToFromTTRoundTrip(t *testing.T) {
	mate := ValueCheckMate - 3 // mate found 3 plies deep in this search
	stored := ValueToTT(mate, 5)
	back := ValueFromTT(stored, 5)
	assert.Equal(t, mate, back)
}

func TestValueToTTLeavesNonMateScoresAlone(t *testing.T) {
	assert.Equal(t, Value(37), ValueToTT(Value(37), 5))
}
