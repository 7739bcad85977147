package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMoveRoundTripsFromToType(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.MoveType())
	assert.True(t, m.IsValid())
}

func TestCreateMovePromotionEncodesPieceType(t *testing.T) {
	m := CreateMove(SqA7, SqA8, Promotion, Queen)
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "a7a8q", m.StringUci())
}

func TestSetValueAndValueOfRoundTrip(t *testing.T) {
	m := CreateMove(SqG1, SqF3, Normal, PtNone)
	m.SetValue(Value(123))
	assert.Equal(t, Value(123), m.ValueOf())
	assert.Equal(t, SqG1, m.From())
	assert.Equal(t, SqF3, m.To())
}

func TestMoveOfStripsSortValue(t *testing.T) {
	m := CreateMove(SqG1, SqF3, Normal, PtNone)
	withValue := m
	withValue.SetValue(Value(500))
	assert.Equal(t, m, withValue.MoveOf())
}

func TestMoveNoneIsNeverValid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.StringUci())
}

func TestStringUciNonPromotion(t *testing.T) {
	m := CreateMove(SqE7, SqE5, Normal, PtNone)
	assert.Equal(t, "e7e5", m.StringUci())
}
