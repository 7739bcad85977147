package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chessforge/engine/internal/types"
)

func TestStoreKillerShiftsSlots(t *testing.T) {
	tab := NewTables()
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqG1, SqF3, Normal, PtNone)

	tab.StoreKiller(3, m1)
	tab.StoreKiller(3, m2)

	killers := tab.Killers(3)
	assert.Equal(t, m2, killers[0])
	assert.Equal(t, m1, killers[1])
	assert.True(t, tab.IsKiller(3, m1))
	assert.True(t, tab.IsKiller(3, m2))
}

func TestStoreKillerIgnoresDuplicate(t *testing.T) {
	tab := NewTables()
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)

	tab.StoreKiller(1, m1)
	tab.StoreKiller(1, m1)

	killers := tab.Killers(1)
	assert.Equal(t, m1, killers[0])
	assert.Equal(t, MoveNone, killers[1])
}

func TestHistoryScoreAccumulatesByDepthSquared(t *testing.T) {
	tab := NewTables()
	m := CreateMove(SqD2, SqD4, Normal, PtNone)

	tab.AddHistory(White, m, 3)
	tab.AddHistory(White, m, 2)

	assert.EqualValues(t, 9+4, tab.HistoryScore(White, m))
}

func TestClearResetsTables(t *testing.T) {
	tab := NewTables()
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	tab.StoreKiller(0, m)
	tab.AddHistory(White, m, 5)

	tab.Clear()

	assert.Equal(t, MoveNone, tab.Killers(0)[0])
	assert.EqualValues(t, 0, tab.HistoryScore(White, m))
}
