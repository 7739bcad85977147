package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushAndPopSquare(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestPopCount(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqA1)
	b.PushSquare(SqH8)
	b.PushSquare(SqD4)
	assert.Equal(t, 3, b.PopCount())
}

func TestLsbMsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqB2)
	b.PushSquare(SqG7)
	assert.Equal(t, SqB2, b.Lsb())
	assert.Equal(t, SqG7, b.Msb())
}

func TestPopLsbDrainsAllSquares(t *testing.T) {
	var b Bitboard
	squares := []Square{SqA1, SqC3, SqF6, SqH8}
	for _, sq := range squares {
		b.PushSquare(sq)
	}
	var popped []Square
	for b != 0 {
		popped = append(popped, b.PopLsb())
	}
	assert.ElementsMatch(t, squares, popped)
}

func TestGetAttacksBbRookOnEmptyBoardCoversRankAndFile(t *testing.T) {
	attacks := GetAttacksBb(Rook, SqA1, 0)
	assert.True(t, attacks.Has(SqA8))
	assert.True(t, attacks.Has(SqH1))
	assert.False(t, attacks.Has(SqB2))
}

func TestGetAttacksBbBishopBlockedByOccupant(t *testing.T) {
	var occupied Bitboard
	occupied.PushSquare(SqC3)
	attacks := GetAttacksBb(Bishop, SqA1, occupied)
	assert.True(t, attacks.Has(SqB2))
	assert.True(t, attacks.Has(SqC3))
	assert.False(t, attacks.Has(SqD4))
}

func TestGetPawnAttacksWhiteFromE4(t *testing.T) {
	attacks := GetPawnAttacks(White, SqE4)
	assert.True(t, attacks.Has(SqD5))
	assert.True(t, attacks.Has(SqF5))
	assert.Equal(t, 2, attacks.PopCount())
}

func TestGetPawnAttacksBlackFromE4(t *testing.T) {
	attacks := GetPawnAttacks(Black, SqE4)
	assert.True(t, attacks.Has(SqD3))
	assert.True(t, attacks.Has(SqF3))
}
