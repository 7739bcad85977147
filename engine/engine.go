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

package engine

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/chessforge/engine/internal/evaluator"
	"github.com/chessforge/engine/internal/movegen"
	"github.com/chessforge/engine/internal/search"
	"github.com/chessforge/engine/internal/tt"
	. "github.com/chessforge/engine/internal/types"
)

// Engine bundles the pieces a host needs to run searches against: a
// transposition table that persists across calls and a search instance
// serialized by sem so two goroutines can never run the search core at
// once. internal/search itself is single-threaded and synchronous by
// design; sem is what turns "one search at a time" into an enforced
// property instead of a documented expectation, the way the engine this
// was learned from uses a semaphore to gate concurrent UCI "go" commands.
type Engine struct {
	table *tt.Table
	srch  *search.Search
	sem   *semaphore.Weighted
}

// NewEngine returns an Engine with a transposition table sized in
// megabytes.
func NewEngine(ttSizeMB int) *Engine {
	table := tt.NewTable(ttSizeMB)
	return &Engine{
		table: table,
		srch:  search.NewSearch(table),
		sem:   semaphore.NewWeighted(1),
	}
}

// SetInfoSink installs the sink that receives per-depth search progress.
func (e *Engine) SetInfoSink(sink search.InfoSink) {
	e.srch.SetInfoSink(sink)
}

// Search runs a synchronous search on p to the given limits and returns
// the result. Search blocks if another Search call on the same Engine is
// already running; call Stop from another goroutine to cut it short.
func (e *Engine) Search(p *Position, limits search.Limits) *search.Result {
	if err := e.sem.Acquire(context.Background(), 1); err != nil {
		return &search.Result{BestMove: MoveNone, Value: ValueNA}
	}
	defer e.sem.Release(1)
	return e.srch.Run(p, limits)
}

// Stop requests that a Search call in progress on this Engine return as
// soon as it next checks in.
func (e *Engine) Stop() {
	e.srch.Stop()
}

// Evaluate returns the static evaluation of p from the side-to-move's
// point of view, without searching.
func Evaluate(p *Position) Value {
	return evaluator.NewEvaluator().Evaluate(p)
}

// Perft counts leaf nodes of the legal-move tree rooted at p to the
// given depth. p is left unchanged: every move explored is undone before
// Perft returns.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range movegen.GenerateLegalMoves(p) {
		p.DoMove(m)
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// DivideEntry is one root move's perft subtree count, as reported by
// Divide.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide runs Perft one ply at a time for each legal root move in p,
// preserving move-generation order, the standard way to bisect a move
// generator bug against a reference engine.
func Divide(p *Position, depth int) []DivideEntry {
	moves := movegen.GenerateLegalMoves(p)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		p.DoMove(m)
		var nodes uint64
		if depth > 1 {
			nodes = Perft(p, depth-1)
		} else {
			nodes = 1
		}
		p.UndoMove()
		entries = append(entries, DivideEntry{Move: m, Nodes: nodes})
	}
	return entries
}
