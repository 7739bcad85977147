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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chessforge/engine/internal/position"
	. "github.com/chessforge/engine/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft validates the move generator by exhaustively counting leaf nodes
// of the legal-move tree to a fixed depth.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64

	stopFlag bool
}

// NewPerft returns an empty Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a perft run started on another goroutine abort as
// soon as it next checks in.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// Run counts leaf nodes of the legal-move tree rooted at fen to depth
// plies and prints a summary, the way a UCI engine's "go perft" does.
func (perft *Perft) Run(fen string, depth int) (uint64, error) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.reset()

	p, err := position.PositionFromFEN(fen)
	if err != nil {
		return 0, err
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)

	start := time.Now()
	nodes := perft.search(depth, p)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return 0, nil
	}
	perft.Nodes = nodes

	out.Printf("Time       : %s\n", elapsed)
	out.Printf("NPS        : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Nodes      : %d\n", perft.Nodes)
	out.Printf("Captures   : %d\n", perft.CaptureCounter)
	out.Printf("EnPassant  : %d\n", perft.EnpassantCounter)
	out.Printf("Checks     : %d\n", perft.CheckCounter)
	out.Printf("CheckMates : %d\n", perft.CheckMateCounter)
	out.Printf("Castles    : %d\n", perft.CastleCounter)
	out.Printf("Promotions : %d\n", perft.PromotionCounter)
	return perft.Nodes, nil
}

// Divide runs perft one ply at a time for each root move, reporting the
// subtree node count per move; this is the standard way to bisect a
// move generator bug against a reference engine.
func Divide(fen string, depth int) (map[string]uint64, error) {
	p, err := position.PositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	result := make(map[string]uint64)
	perft := NewPerft()
	for _, m := range GenerateLegalMoves(p) {
		p.DoMove(m)
		var nodes uint64
		if depth > 1 {
			nodes = perft.search(depth-1, p)
		} else {
			nodes = 1
		}
		p.UndoMove()
		result[m.StringUci()] = nodes
	}
	return result, nil
}

func (perft *Perft) search(depth int, p *position.Position) uint64 {
	if perft.stopFlag {
		return 0
	}
	moves := GeneratePseudoLegalMoves(p, GenAll)

	if depth > 1 {
		var total uint64
		for _, m := range moves {
			p.DoMove(m)
			if !p.IsAttacked(p.KingSquare(p.NextPlayer().Flip()), p.NextPlayer()) {
				total += perft.search(depth-1, p)
			}
			p.UndoMove()
		}
		return total
	}

	var total uint64
	for _, m := range moves {
		capture := p.PieceAt(m.To()) != PieceNone
		enpassant := m.MoveType() == EnPassant
		castling := m.MoveType() == Castling
		promotion := m.MoveType() == Promotion

		p.DoMove(m)
		if !p.IsAttacked(p.KingSquare(p.NextPlayer().Flip()), p.NextPlayer()) {
			total++
			if enpassant {
				perft.EnpassantCounter++
				perft.CaptureCounter++
			}
			if capture {
				perft.CaptureCounter++
			}
			if castling {
				perft.CastleCounter++
			}
			if promotion {
				perft.PromotionCounter++
			}
			if p.HasCheck() {
				perft.CheckCounter++
				if !HasLegalMove(p) {
					perft.CheckMateCounter++
				}
			}
		}
		p.UndoMove()
	}
	return total
}

func (perft *Perft) reset() {
	*perft = Perft{}
}
