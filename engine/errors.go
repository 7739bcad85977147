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

import "fmt"

// FenParseError reports a malformed FEN string; see position.PositionFromFEN
// for the field-by-field rules.
type FenParseError struct {
	Fen    string
	Reason string
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("fen parse error: %s: %q", e.Reason, e.Fen)
}

// IllegalMoveError reports an attempt to make a move that is not in the
// legal move set for the position it was attempted on.
type IllegalMoveError struct {
	MoveUci string
	Reason  string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.MoveUci, e.Reason)
}

// MoveParseError reports coordinate text that does not denote a
// syntactically valid move.
type MoveParseError struct {
	Text string
}

func (e *MoveParseError) Error() string {
	return fmt.Sprintf("move parse error: %q is not valid coordinate notation", e.Text)
}
