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

// Package history holds the move-ordering tables a search fills in as it
// goes: killer moves per ply and a from/to history-counter heuristic for
// quiet moves that caused a beta cutoff elsewhere in the tree.
package history

import (
	. "github.com/chessforge/engine/internal/types"
)

// Tables bundles the move-ordering heuristics a single search run
// accumulates. Not safe for concurrent use; the engine package gates
// searches to one at a time.
type Tables struct {
	killers [MaxDepth][2]Move
	counter [2][SqLength][SqLength]int64
}

// NewTables returns an empty set of move-ordering tables.
func NewTables() *Tables {
	return &Tables{}
}

// Clear resets every table, used between searches so stale move-ordering
// data from a previous position does not leak in.
func (t *Tables) Clear() {
	*t = Tables{}
}

// StoreKiller records move as a killer at ply, shifting a prior killer
// into the second slot. Only quiet (non-capture) moves should be stored;
// the caller is responsible for that check.
func (t *Tables) StoreKiller(ply int, move Move) {
	m := move.MoveOf()
	slots := &t.killers[ply]
	if slots[0] == m {
		return
	}
	slots[1] = slots[0]
	slots[0] = m
}

// Killers returns the two killer moves recorded at ply, MoveNone if unset.
func (t *Tables) Killers(ply int) [2]Move {
	return t.killers[ply]
}

// IsKiller reports whether move is one of the killers recorded at ply.
func (t *Tables) IsKiller(ply int, move Move) bool {
	m := move.MoveOf()
	slots := t.killers[ply]
	return slots[0] == m || slots[1] == m
}

// AddHistory increases the history counter for a quiet move that caused a
// beta cutoff, weighted by depth so cutoffs deep in the tree count more.
func (t *Tables) AddHistory(c Color, move Move, depth int) {
	from, to := move.From(), move.To()
	t.counter[c][from][to] += int64(depth) * int64(depth)
}

// HistoryScore returns the accumulated history weight for a move, used to
// order quiet moves that are neither the TT move nor a killer.
func (t *Tables) HistoryScore(c Color, move Move) int64 {
	return t.counter[c][move.From()][move.To()]
}
