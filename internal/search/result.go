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

package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/chessforge/engine/internal/types"
)

var out = message.NewPrinter(language.English)

// Result is what a completed (or time-cut) search reports back.
type Result struct {
	BestMove   Move
	PonderMove Move
	Value      Value
	Depth      int
	Nodes      uint64
	SearchTime time.Duration
	Pv         []Move
}

func (r *Result) String() string {
	return out.Sprintf("bestmove %s value %s depth %d nodes %d time %s pv %s",
		r.BestMove.StringUci(), r.Value.String(), r.Depth, r.Nodes, r.SearchTime, pvString(r.Pv))
}

func pvString(pv []Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.StringUci()
	}
	return s
}

// Info is a progress record emitted once per completed iterative-deepening
// depth, mirroring what a UCI "info" line reports.
type Info struct {
	Depth    int
	SelDepth int
	Value    Value
	Nodes    uint64
	Time     time.Duration
	Nps      uint64
	Pv       []Move
}

// InfoSink receives search progress; the embedder supplies an
// implementation (e.g. printing UCI "info" lines, or just ignoring it).
type InfoSink interface {
	Send(Info)
}

// NopSink discards every Info record; the zero value for search callers
// that do not need progress updates.
type NopSink struct{}

// Send implements InfoSink by doing nothing.
func (NopSink) Send(Info) {}
