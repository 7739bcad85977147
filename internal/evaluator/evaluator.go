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

// Package evaluator assigns a centipawn score to a Position from the side
// to move's point of view: material, piece-square placement tapered by
// game phase, a small mobility term and a tempo bonus, with draws by
// insufficient material scored at zero.
package evaluator

import (
	"github.com/chessforge/engine/internal/config"
	"github.com/chessforge/engine/internal/logging"
	"github.com/chessforge/engine/internal/movegen"
	"github.com/chessforge/engine/internal/position"
	. "github.com/chessforge/engine/internal/types"
	"github.com/chessforge/engine/internal/util"
)

var log = logging.GetEvaluatorLog()

// Evaluator holds no per-call state of its own; it exists so the search
// package can depend on a type rather than a bare function, the way the
// teacher's search depends on *Evaluator.
type Evaluator struct {
}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores p from the perspective of the side to move: positive
// means the mover is better, negative means worse.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if config.Settings.Eval.UseInsufficientMaterial && p.HasInsufficientMaterial() {
		return ValueDraw
	}

	us := p.NextPlayer()
	them := us.Flip()

	midScore, endScore, phase := e.scorePhases(p, us, them)

	phase = util.Max(0, util.Min(phase, GamePhaseMax))
	tapered := (int(midScore)*phase + int(endScore)*(GamePhaseMax-phase)) / GamePhaseMax

	score := tapered

	if config.Settings.Eval.UseMobility {
		score += e.mobility(p, us) - e.mobility(p, them)
	}

	score += config.Settings.Eval.TempoBonus

	if score > int(ValueCheckMateThreshold) {
		score = int(ValueCheckMateThreshold)
	}
	if score < -int(ValueCheckMateThreshold) {
		score = -int(ValueCheckMateThreshold)
	}
	return Value(score)
}

// scorePhases walks every piece on the board once, accumulating the
// mid-game score, end-game score and phase counter from us's perspective.
func (e *Evaluator) scorePhases(p *position.Position, us, them Color) (mid, end Value, phase int) {
	for _, c := range [2]Color{us, them} {
		sign := Value(1)
		if c == them {
			sign = -1
		}
		for pt := King; pt < PtLength; pt++ {
			bb := p.PieceTypeBb(c, pt)
			phase += bb.PopCount() * gamePhaseWeight[pt]
			for bb != BbZero {
				sq := bb.PopLsb()
				if config.Settings.Eval.UseMaterial {
					mid += sign * pt.ValueOf()
					end += sign * pt.ValueOf()
				}
				if config.Settings.Eval.UsePST {
					mid += sign * pstMidValue(c, pt, sq)
					end += sign * pstEndValue(c, pt, sq)
				}
			}
		}
	}
	return mid, end, phase
}

// mobility counts the pseudo-legal knight, bishop, rook and queen moves
// available to c (pawn and king moves are not counted), a cheap
// stand-in for the teacher's attack-map-based mobility term.
func (e *Evaluator) mobility(p *position.Position, c Color) int {
	occ := p.OccupiedBb()
	own := p.ColorBb(c)
	count := 0
	for pt := Knight; pt <= Queen; pt++ {
		bb := p.PieceTypeBb(c, pt)
		for bb != BbZero {
			sq := bb.PopLsb()
			count += (GetAttacksBb(pt, sq, occ) &^ own).PopCount()
		}
	}
	return count * config.Settings.Eval.MobilityUnit
}

// IsCheckMate reports whether p is checkmate: the side to move is in
// check and has no legal move.
func IsCheckMate(p *position.Position) bool {
	return p.HasCheck() && !movegen.HasLegalMove(p)
}

// IsStaleMate reports whether p is stalemate: the side to move is not in
// check but has no legal move.
func IsStaleMate(p *position.Position) bool {
	return !p.HasCheck() && !movegen.HasLegalMove(p)
}
