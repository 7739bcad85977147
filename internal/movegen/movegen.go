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

// Package movegen generates pseudo-legal and legal moves for a Position,
// and validates the generator itself through perft node counting.
package movegen

import (
	"github.com/chessforge/engine/internal/logging"
	"github.com/chessforge/engine/internal/position"
	. "github.com/chessforge/engine/internal/types"
)

var log = logging.GetMovegenLog()

// GenMode selects which subset of pseudo-legal moves to generate.
type GenMode uint8

const (
	GenCapture GenMode = 1 << iota
	GenNonCapture
	GenAll = GenCapture | GenNonCapture
)

var slidingTypes = [3]PieceType{Bishop, Rook, Queen}
var nonSlidingTypes = [2]PieceType{Knight, King}

// GeneratePseudoLegalMoves returns every pseudo-legal move for the side to
// move in mode, without checking whether the mover's own king is left in
// check (see GenerateLegalMoves for that).
func GeneratePseudoLegalMoves(p *position.Position, mode GenMode) []Move {
	moves := make([]Move, 0, 64)
	us := p.NextPlayer()

	moves = generatePawnMoves(p, us, mode, moves)
	for _, pt := range nonSlidingTypes {
		moves = generatePieceMoves(p, us, pt, mode, moves)
	}
	for _, pt := range slidingTypes {
		moves = generatePieceMoves(p, us, pt, mode, moves)
	}
	if mode&GenNonCapture != 0 {
		moves = generateCastlingMoves(p, us, moves)
	}
	return moves
}

// GenerateLegalMoves returns every legal move for the side to move: every
// pseudo-legal move that does not leave the mover's own king in check.
func GenerateLegalMoves(p *position.Position) []Move {
	pseudo := GeneratePseudoLegalMoves(p, GenAll)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if p.IsLegalMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move. It generates the pseudo-legal moves but stops testing legality at
// the first legal one instead of filtering the whole list. Used for
// checkmate/stalemate detection.
func HasLegalMove(p *position.Position) bool {
	for _, m := range GeneratePseudoLegalMoves(p, GenAll) {
		if p.IsLegalMove(m) {
			return true
		}
	}
	return false
}

func generatePieceMoves(p *position.Position, us Color, pt PieceType, mode GenMode, moves []Move) []Move {
	ownOcc := p.ColorBb(us)
	oppOcc := p.ColorBb(us.Flip())
	fromBb := p.PieceTypeBb(us, pt)
	for fromBb != BbZero {
		from := fromBb.PopLsb()
		targets := GetAttacksBb(pt, from, p.OccupiedBb()) &^ ownOcc
		switch mode {
		case GenCapture:
			targets &= oppOcc
		case GenNonCapture:
			targets &^= oppOcc
		}
		for targets != BbZero {
			to := targets.PopLsb()
			moves = append(moves, CreateMove(from, to, Normal, PtNone))
		}
	}
	return moves
}

func generatePawnMoves(p *position.Position, us Color, mode GenMode, moves []Move) []Move {
	them := us.Flip()
	oppOcc := p.ColorBb(them)
	occAll := p.OccupiedBb()
	promRank := us.PromotionRankBb()
	fwd := us.PawnDirection()

	pawns := p.PieceTypeBb(us, Pawn)
	for pawns != BbZero {
		from := pawns.PopLsb()

		if mode&GenNonCapture != 0 {
			one := from.To(fwd)
			if one != SqNone && !occAll.Has(one) {
				moves = append(moves, promotionsOrNormal(from, one, promRank)...)
				if from.RankOf() == us.PawnStartRank() {
					two := one.To(fwd)
					if two != SqNone && !occAll.Has(two) {
						moves = append(moves, CreateMove(from, two, Normal, PtNone))
					}
				}
			}
		}

		if mode&GenCapture != 0 {
			for _, d := range pawnCaptureDirs(us) {
				to := from.To(d)
				if to == SqNone {
					continue
				}
				if oppOcc.Has(to) {
					moves = append(moves, promotionsOrNormal(from, to, promRank)...)
				} else if to == p.EnPassantSquare() {
					moves = append(moves, CreateMove(from, to, EnPassant, PtNone))
				}
			}
		}
	}
	return moves
}

func pawnCaptureDirs(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func promotionsOrNormal(from, to Square, promRank Bitboard) []Move {
	if promRank.Has(to) {
		return []Move{
			CreateMove(from, to, Promotion, Queen),
			CreateMove(from, to, Promotion, Rook),
			CreateMove(from, to, Promotion, Bishop),
			CreateMove(from, to, Promotion, Knight),
		}
	}
	return []Move{CreateMove(from, to, Normal, PtNone)}
}

func generateCastlingMoves(p *position.Position, us Color, moves []Move) []Move {
	rights := p.CastlingRights()
	occ := p.OccupiedBb()
	them := us.Flip()

	if us == White {
		if rights.Has(CastlingWhiteOO) &&
			!occ.Has(SqF1) && !occ.Has(SqG1) &&
			!p.IsAttacked(SqE1, them) && !p.IsAttacked(SqF1, them) && !p.IsAttacked(SqG1, them) {
			moves = append(moves, CreateMove(SqE1, SqG1, Castling, PtNone))
		}
		if rights.Has(CastlingWhiteOOO) &&
			!occ.Has(SqD1) && !occ.Has(SqC1) && !occ.Has(SqB1) &&
			!p.IsAttacked(SqE1, them) && !p.IsAttacked(SqD1, them) && !p.IsAttacked(SqC1, them) {
			moves = append(moves, CreateMove(SqE1, SqC1, Castling, PtNone))
		}
	} else {
		if rights.Has(CastlingBlackOO) &&
			!occ.Has(SqF8) && !occ.Has(SqG8) &&
			!p.IsAttacked(SqE8, them) && !p.IsAttacked(SqF8, them) && !p.IsAttacked(SqG8, them) {
			moves = append(moves, CreateMove(SqE8, SqG8, Castling, PtNone))
		}
		if rights.Has(CastlingBlackOOO) &&
			!occ.Has(SqD8) && !occ.Has(SqC8) && !occ.Has(SqB8) &&
			!p.IsAttacked(SqE8, them) && !p.IsAttacked(SqD8, them) && !p.IsAttacked(SqC8, them) {
			moves = append(moves, CreateMove(SqE8, SqC8, Castling, PtNone))
		}
	}
	return moves
}
