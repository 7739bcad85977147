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

// Package search implements iterative-deepening alpha-beta with principal
// variation search, quiescence at the leaves, and move ordering driven by
// the transposition table, MVV/LVA, killer moves and history counters.
//
// Search is single-threaded and synchronous: Run does not spawn a
// goroutine of its own. An embedder wanting to search in the background
// and stop it early runs Run on its own goroutine and calls Stop from
// another one; the stop flag is deliberately a plain bool; the only
// writer is Stop and the only reader is the goroutine running Run, the
// same pattern the engine this was learned from uses.
package search

import (
	"sort"
	"time"

	"github.com/chessforge/engine/internal/config"
	"github.com/chessforge/engine/internal/evaluator"
	"github.com/chessforge/engine/internal/history"
	"github.com/chessforge/engine/internal/logging"
	"github.com/chessforge/engine/internal/movegen"
	"github.com/chessforge/engine/internal/position"
	"github.com/chessforge/engine/internal/tt"
	. "github.com/chessforge/engine/internal/types"
	"github.com/chessforge/engine/internal/util"
)

var log = logging.GetSearchLog()

const checkTimeEvery = 2047 // node-count mask; must be 2^n - 1

// Search drives one iterative-deepening alpha-beta search over a shared
// transposition table and evaluator.
type Search struct {
	table *tt.Table
	eval  *evaluator.Evaluator
	hist  *history.Tables
	sink  InfoSink

	stopped  bool
	stats    Statistics
	limits   Limits
	nodes    uint64
	startAt  time.Time

	rootBestMove     Move
	previousBestMove Move
}

// NewSearch returns a Search backed by table, which may be shared across
// successive searches; the caller owns its lifetime.
func NewSearch(table *tt.Table) *Search {
	return &Search{
		table: table,
		eval:  evaluator.NewEvaluator(),
		hist:  history.NewTables(),
		sink:  NopSink{},
	}
}

// SetInfoSink installs the receiver of per-depth progress records.
func (s *Search) SetInfoSink(sink InfoSink) {
	if sink == nil {
		sink = NopSink{}
	}
	s.sink = sink
}

// Stop requests that a running Run return as soon as it next checks in.
func (s *Search) Stop() {
	s.stopped = true
}

// Statistics returns the counters gathered during the last Run.
func (s *Search) Statistics() Statistics {
	stats := s.stats
	stats.Nodes = s.nodes
	return stats
}

// Run searches p under limits and returns the best move found, along with
// the principal variation and metadata about the search. p ends up in the
// same state it started in: every DoMove during the search is undone.
func (s *Search) Run(p *position.Position, limits Limits) *Result {
	s.stopped = false
	s.limits = limits
	s.nodes = 0
	s.stats = Statistics{}
	s.hist.Clear()
	s.rootBestMove = MoveNone
	s.previousBestMove = MoveNone
	s.startAt = time.Now()
	log.Debugf("search started on %s", p.ToFEN())

	rootMoves := movegen.GenerateLegalMoves(p)
	if len(rootMoves) == 0 {
		return &Result{BestMove: MoveNone, Value: terminalValue(p, 0), SearchTime: time.Since(s.startAt)}
	}
	if p.IsRepetition(2) || p.HalfMoveClock() >= 100 {
		return &Result{BestMove: rootMoves[0], Value: ValueDraw, SearchTime: time.Since(s.startAt)}
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	result := &Result{BestMove: rootMoves[0]}
	for depth := 1; depth <= maxDepth; depth++ {
		value := s.rootSearch(p, depth, -ValueInf, ValueInf, rootMoves)
		if s.stopped && depth > 1 {
			break
		}

		result.Depth = depth
		result.Value = value
		result.Nodes = s.nodes
		result.SearchTime = time.Since(s.startAt)
		result.BestMove = s.rootBestMove
		result.Pv = s.principalVariation(p, depth)
		if len(result.Pv) > 1 {
			result.PonderMove = result.Pv[1]
		}

		s.sink.Send(Info{
			Depth: depth,
			Value: value,
			Nodes: s.nodes,
			Time:  result.SearchTime,
			Nps:   util.Nps(s.nodes, result.SearchTime),
			Pv:    result.Pv,
		})

		if value.IsCheckMateValue() || s.stopped {
			break
		}
	}
	log.Debugf("search finished: %s", result.String())
	return result
}

func terminalValue(p *position.Position, ply int) Value {
	if p.HasCheck() {
		return -ValueCheckMate + Value(ply)
	}
	return ValueDraw
}

func (s *Search) checkTime() {
	if s.limits.MoveTime > 0 && time.Since(s.startAt) >= s.limits.MoveTime {
		s.stopped = true
	}
	if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
		s.stopped = true
	}
}

// rootSearch is search's ply-0 special case: it must remember which move
// produced the best score so Run can report it even if a later sibling
// at the same depth raises alpha without becoming the new best in time.
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value, moves []Move) Value {
	ordered := s.orderMoves(p, moves, s.previousBestMove, 0)

	bestValue := -ValueInf
	bestMove := ordered[0]

	for i, m := range ordered {
		p.DoMove(m)
		var value Value
		if i == 0 {
			value = -s.search(p, depth-1, 1, -beta, -alpha, true)
		} else {
			value = -s.search(p, depth-1, 1, -alpha-1, -alpha, false)
			if value > alpha && value < beta {
				s.stats.PvsResearches++
				value = -s.search(p, depth-1, 1, -beta, -alpha, true)
			}
		}
		p.UndoMove()

		if s.stopped {
			break
		}
		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
	}

	if !s.stopped || depth == 1 {
		s.rootBestMove = bestMove
		s.previousBestMove = bestMove
		if config.Settings.Search.UseTT {
			s.table.Put(p.ZobristKey(), bestMove, int8(depth), tt.ValueToTT(bestValue, 0), VtExact, ValueZero)
		}
	}
	return bestValue
}

func (s *Search) search(p *position.Position, depth int, ply int, alpha, beta Value, isPV bool) Value {
	if depth <= 0 {
		return s.qsearch(p, ply, alpha, beta)
	}

	s.nodes++
	if s.nodes&checkTimeEvery == 0 {
		s.checkTime()
	}
	if s.stopped {
		return ValueZero
	}

	if ply > 0 && (p.IsRepetition(2) || p.HalfMoveClock() >= 100) {
		return ValueDraw
	}

	moves := movegen.GenerateLegalMoves(p)
	if len(moves) == 0 {
		if p.HasCheck() {
			s.stats.Checkmates++
			return -ValueCheckMate + Value(ply)
		}
		s.stats.Stalemates++
		return ValueDraw
	}

	origAlpha := alpha
	var ttMove Move = MoveNone
	if config.Settings.Search.UseTT {
		if e := s.table.Probe(p.ZobristKey()); e != nil {
			s.stats.TTHits++
			ttMove = e.Move()
			if config.Settings.Search.UseTTValue && int(e.Depth()) >= depth {
				val := tt.ValueFromTT(e.Value(), ply)
				switch e.Type() {
				case VtExact:
					return val
				case VtBeta:
					if val >= beta {
						s.stats.TTCuts++
						return val
					}
				case VtAlpha:
					if val <= alpha {
						s.stats.TTCuts++
						return val
					}
				}
			}
		} else {
			s.stats.TTMisses++
		}
	}
	if !config.Settings.Search.UseTTMove {
		ttMove = MoveNone
	}

	ordered := s.orderMoves(p, moves, ttMove, ply)

	bestValue := -ValueInf
	bestMove := MoveNone

	for i, m := range ordered {
		quiet := !isCaptureMove(p, m)

		p.DoMove(m)
		var value Value
		if i == 0 || !config.Settings.Search.UsePVS {
			value = -s.search(p, depth-1, ply+1, -beta, -alpha, isPV)
		} else {
			value = -s.search(p, depth-1, ply+1, -alpha-1, -alpha, false)
			if value > alpha && value < beta {
				s.stats.PvsResearches++
				value = -s.search(p, depth-1, ply+1, -beta, -alpha, true)
			}
		}
		p.UndoMove()

		if s.stopped {
			return ValueZero
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.stats.BetaCuts++
			if i == 0 {
				s.stats.BetaCuts1st++
			}
			if quiet {
				if config.Settings.Search.UseKiller {
					s.hist.StoreKiller(ply, m)
				}
				if config.Settings.Search.UseHistory {
					s.hist.AddHistory(p.NextPlayer(), m, depth)
				}
			}
			break
		}
	}

	if config.Settings.Search.UseTT {
		vtype := VtExact
		switch {
		case bestValue <= origAlpha:
			vtype = VtAlpha
		case bestValue >= beta:
			vtype = VtBeta
		}
		s.table.Put(p.ZobristKey(), bestMove, int8(depth), tt.ValueToTT(bestValue, ply), vtype, ValueZero)
	}

	return bestValue
}

func (s *Search) qsearch(p *position.Position, ply int, alpha, beta Value) Value {
	s.nodes++
	s.stats.QNodes++
	if s.nodes&checkTimeEvery == 0 {
		s.checkTime()
	}
	if s.stopped {
		return ValueZero
	}

	standPat := s.eval.Evaluate(p)
	if !config.Settings.Search.UseQuiescence {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := s.orderMoves(p, movegen.GeneratePseudoLegalMoves(p, movegen.GenCapture), MoveNone, -1)
	for _, m := range captures {
		if !p.IsLegalMove(m) {
			continue
		}
		p.DoMove(m)
		value := -s.qsearch(p, ply+1, -beta, -alpha)
		p.UndoMove()

		if s.stopped {
			return ValueZero
		}
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// orderMoves sorts moves so the ones most likely to be best are searched
// first: the TT move, then captures by MVV/LVA, then killers, then the
// history heuristic. ply < 0 means "no killer/history lookup" (used from
// qsearch, which has no ply-indexed tables of its own).
func (s *Search) orderMoves(p *position.Position, moves []Move, ttMove Move, ply int) []Move {
	type scored struct {
		m     Move
		score int
	}
	list := make([]scored, len(moves))

	var killers [2]Move
	if ply >= 0 {
		killers = s.hist.Killers(ply)
	}

	for i, m := range moves {
		sc := 0
		switch {
		case m == ttMove && m != MoveNone:
			sc = 1_000_000
		case isCaptureMove(p, m):
			sc = 500_000 + captureScore(p, m)
		case ply >= 0 && config.Settings.Search.UseKiller && (m.MoveOf() == killers[0] || m.MoveOf() == killers[1]):
			sc = 100_000
		case ply >= 0 && config.Settings.Search.UseHistory:
			sc = int(s.hist.HistoryScore(p.NextPlayer(), m))
		}
		list[i] = scored{m, sc}
	}

	sort.SliceStable(list, func(a, b int) bool { return list[a].score > list[b].score })

	ordered := make([]Move, len(list))
	for i, e := range list {
		ordered[i] = e.m
	}
	return ordered
}

func isCaptureMove(p *position.Position, m Move) bool {
	return p.PieceAt(m.To()) != PieceNone || m.MoveType() == EnPassant
}

func captureScore(p *position.Position, m Move) int {
	victimValue := int(Pawn.ValueOf())
	if m.MoveType() != EnPassant {
		victimValue = int(p.PieceAt(m.To()).TypeOf().ValueOf())
	}
	attackerValue := int(p.PieceAt(m.From()).TypeOf().ValueOf())
	return victimValue*10 - attackerValue
}

// principalVariation walks the TT's best moves from p forward, making and
// then unmaking every move it visits so p is unchanged on return.
func (s *Search) principalVariation(p *position.Position, maxLen int) []Move {
	pv := make([]Move, 0, maxLen)
	for len(pv) < maxLen {
		e := s.table.Probe(p.ZobristKey())
		if e == nil || e.Move() == MoveNone {
			break
		}
		m := e.Move()
		if !isLegalInPosition(p, m) {
			break
		}
		p.DoMove(m)
		pv = append(pv, m)
	}
	for range pv {
		p.UndoMove()
	}
	return pv
}

func isLegalInPosition(p *position.Position, m Move) bool {
	for _, lm := range movegen.GenerateLegalMoves(p) {
		if lm == m {
			return true
		}
	}
	return false
}
