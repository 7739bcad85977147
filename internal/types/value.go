package types

import (
	"strconv"
	"strings"
)

// Value is a centipawn evaluation or search score.
type Value int16

const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueInf                Value = 15_000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = 10_000
	ValueMin                Value = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// IsValid checks if v lies within the valid evaluation range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a mate-in-N score.
func (v Value) IsCheckMateValue() bool {
	a := abs16(int16(v))
	return a > int16(ValueCheckMateThreshold) && a <= int16(ValueCheckMate)
}

// String renders v the way a UCI "score" field does: "cp <n>", "mate <n>"
// or "N/A".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsCheckMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - int(abs16(int16(v)))
		b.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
