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
	"strings"

	"github.com/chessforge/engine/internal/movegen"
	. "github.com/chessforge/engine/internal/types"
)

// MoveFromCoord resolves UCI-style coordinate notation ("e2e4", "e7e8q")
// against the legal moves available in p. The text must denote a move
// that is actually legal in p; a syntactically valid but illegal move
// (e.g. "e2e5") is reported the same as garbage input, since neither
// names a move engine.Make could ever apply.
func MoveFromCoord(p *Position, text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) < 4 || len(text) > 5 {
		return MoveNone, &MoveParseError{Text: text}
	}

	from := MakeSquare(text[0:2])
	to := MakeSquare(text[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, &MoveParseError{Text: text}
	}

	promo := PtNone
	if len(text) == 5 {
		promo = pieceTypeFromChar(text[4])
		if promo == PtNone {
			return MoveNone, &MoveParseError{Text: text}
		}
	}

	for _, m := range movegen.GenerateLegalMoves(p) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.MoveType() == Promotion && m.PromotionType() != promo {
			continue
		}
		if m.MoveType() != Promotion && promo != PtNone {
			continue
		}
		return m, nil
	}
	return MoveNone, &MoveParseError{Text: text}
}

// MoveToCoord renders m in UCI coordinate notation.
func MoveToCoord(m Move) string {
	return m.StringUci()
}

func pieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	default:
		return PtNone
	}
}
