/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package tt

import (
	. "github.com/chessforge/engine/internal/types"
	"github.com/chessforge/engine/internal/zobrist"
)

// Entry is one slot of the table. Kept deliberately small (16 bytes) so a
// cache line holds several entries.
type Entry struct {
	key   zobrist.Key
	move  uint16
	eval  int16
	value int16
	vmeta uint16 // depth:7 vtype:2 age:3, see the mask constants below
}

// EntrySize is the size in bytes of one Entry.
const EntrySize = 16

const (
	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

func (e *Entry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *Entry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key is the full Zobrist key stored in this entry, used to detect hash
// collisions against the table's index.
func (e *Entry) Key() zobrist.Key { return e.key }

// Move is the best move found for this position, or MoveNone.
func (e *Entry) Move() Move { return Move(e.move) }

// Value is the search score stored for this position.
func (e *Entry) Value() Value { return Value(e.value) }

// Eval is the static evaluation stored for this position.
func (e *Entry) Eval() Value { return Value(e.eval) }

// Depth is the search depth this entry was stored at.
func (e *Entry) Depth() int8 { return int8((e.vmeta & depthMask) >> depthShift) }

// Age is how many generations old this entry is; Probe decrements it
// by one on every hit.
func (e *Entry) Age() int8 { return int8(e.vmeta & ageMask) }

// Type reports whether Value is exact or a search-cutoff bound.
func (e *Entry) Type() ValueType { return ValueType((e.vmeta & vtypeMask) >> vtypeShift) }
