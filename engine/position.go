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

// Package engine is the embedding surface: everything a host application
// needs to set up a position, make and unmake moves, and ask the search
// for a move, without reaching into the internal packages directly.
package engine

import (
	"github.com/chessforge/engine/internal/movegen"
	"github.com/chessforge/engine/internal/position"
	. "github.com/chessforge/engine/internal/types"
)

// Position is the embedding type for a chess position. It is a thin alias
// so host code never needs to import internal/position directly.
type Position = position.Position

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	return position.NewPosition()
}

// PositionFromFEN parses a FEN string into a Position. On error the
// returned Position is nil and the caller's prior position, if any, is
// unaffected. The parser rejects fewer than four fields, unknown piece
// letters, more than eight ranks, a bad side-to-move or castling field,
// an unreadable en passant square and non-numeric clocks. It does not
// check that every rank holds exactly eight squares, that both kings are
// present, or that the en passant square lies on rank 3 or rank 6.
func PositionFromFEN(fen string) (*Position, error) {
	p, err := position.PositionFromFEN(fen)
	if err != nil {
		return nil, &FenParseError{Fen: fen, Reason: err.Error()}
	}
	return p, nil
}

// PositionToFEN renders p as a FEN string.
func PositionToFEN(p *Position) string {
	return p.ToFEN()
}

// LegalMoves returns every legal move available to the side to move in p.
// The returned slice is a fresh copy; the caller may mutate it freely.
func LegalMoves(p *Position) []Move {
	return movegen.GenerateLegalMoves(p)
}

// Make applies m to p. m must be a member of LegalMoves(p); if it is not,
// Make returns an IllegalMoveError and p is left completely unchanged.
func Make(p *Position, m Move) error {
	legal := false
	for _, lm := range movegen.GenerateLegalMoves(p) {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return &IllegalMoveError{MoveUci: m.StringUci(), Reason: "not a legal move in this position"}
	}
	p.DoMove(m)
	return nil
}

// Unmake reverses the most recent Make call on p. Calling Unmake on a
// position with no prior Make is a programming error, the same contract
// position.Position.UndoMove already has.
func Unmake(p *Position) {
	p.UndoMove()
}
