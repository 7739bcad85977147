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

// Package tt implements the transposition table: a fixed-size,
// power-of-two-addressed cache of search results keyed by Zobrist hash.
// Table is not safe for concurrent use; Resize and Clear must not run
// while a search is probing or storing.
package tt

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chessforge/engine/internal/logging"
	. "github.com/chessforge/engine/internal/types"
	"github.com/chessforge/engine/internal/zobrist"
)

var out = message.NewPrinter(language.English)
var log = logging.GetTTLog()

// MaxSizeInMB is the largest table size Resize will honor.
const MaxSizeInMB = 65_536

// Table is the transposition table.
type Table struct {
	log                *logging.Logger
	data               []Entry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              Stats
}

// Stats holds running usage counters for a Table.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// NewTable returns a Table sized to fit within sizeInMByte, rounded down to
// a power-of-two entry count.
func NewTable(sizeInMByte int) *Table {
	t := &Table{log: log}
	t.Resize(sizeInMByte)
	return t
}

// Resize clears the table and rebuilds it with room for as many entries
// as fit within sizeInMByte.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Errorf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}

	t.sizeInByte = uint64(sizeInMByte) * MB
	if t.sizeInByte == 0 {
		t.maxNumberOfEntries = 0
	} else {
		t.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(t.sizeInByte/EntrySize))))
	}
	t.hashKeyMask = t.maxNumberOfEntries - 1
	t.sizeInByte = t.maxNumberOfEntries * EntrySize

	t.data = make([]Entry, t.maxNumberOfEntries)
	t.numberOfEntries = 0
	t.Stats = Stats{}

	t.log.Infof("TT size %d MB, capacity %d entries (%d bytes each)", t.sizeInByte/MB, t.maxNumberOfEntries, unsafe.Sizeof(Entry{}))
}

// Probe looks up key and returns the stored entry, or nil on a miss.
// Decrements the entry's age by one on a hit, so recently-probed
// positions drift back toward age 0 and are favored over stale entries
// when a replacement decision compares ages.
func (t *Table) Probe(key zobrist.Key) *Entry {
	if t.maxNumberOfEntries == 0 {
		return nil
	}
	t.Stats.Probes++
	e := &t.data[t.hash(key)]
	if e.key == key {
		e.decreaseAge()
		t.Stats.Hits++
		return e
	}
	t.Stats.Misses++
	return nil
}

// Put stores a search result for key, replacing whatever was in that slot
// according to a depth-preferred, age-aware policy.
func (t *Table) Put(key zobrist.Key, move Move, depth int8, value Value, vtype ValueType, eval Value) {
	if t.maxNumberOfEntries == 0 {
		return
	}

	e := &t.data[t.hash(key)]
	t.Stats.Puts++

	if e.key == 0 {
		t.numberOfEntries++
		t.store(e, key, move, depth, value, vtype, eval)
		return
	}

	if e.key != key {
		t.Stats.Collisions++
		if depth > e.Depth() || (depth == e.Depth() && e.Age() > 1) {
			t.Stats.Overwrites++
			t.store(e, key, move, depth, value, vtype, eval)
		}
		return
	}

	t.Stats.Updates++
	if move != MoveNone {
		e.move = uint16(move)
	}
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	if value != ValueNA {
		e.value = int16(value)
		e.vmeta = uint16(depth)<<depthShift | uint16(vtype)<<vtypeShift | uint16(1)
	}
}

func (t *Table) store(e *Entry, key zobrist.Key, move Move, depth int8, value Value, vtype ValueType, eval Value) {
	e.key = key
	e.move = uint16(move)
	e.eval = int16(eval)
	e.value = int16(value)
	e.vmeta = uint16(depth)<<depthShift | uint16(vtype)<<vtypeShift | uint16(1)
}

// Clear empties every entry without changing the table's size.
func (t *Table) Clear() {
	t.data = make([]Entry, t.maxNumberOfEntries)
	t.numberOfEntries = 0
	t.Stats = Stats{}
}

// Hashfull returns table occupancy in permill, as reported by UCI "info".
func (t *Table) Hashfull() int {
	if t.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * t.numberOfEntries) / t.maxNumberOfEntries)
}

// Len returns the number of occupied entries.
func (t *Table) Len() uint64 { return t.numberOfEntries }

// AgeEntries increments the age of every occupied entry, making them less
// likely to survive the next round of overwrites. Run once between
// searches, never while a search is running.
func (t *Table) AgeEntries() {
	if t.numberOfEntries == 0 {
		return
	}
	start := time.Now()
	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	slice := t.maxNumberOfEntries / goroutines
	for i := uint64(0); i < goroutines; i++ {
		go func(i uint64) {
			defer wg.Done()
			begin := i * slice
			end := begin + slice
			if i == goroutines-1 {
				end = t.maxNumberOfEntries
			}
			for n := begin; n < end; n++ {
				if t.data[n].key != 0 {
					t.data[n].increaseAge()
				}
			}
		}(i)
	}
	wg.Wait()
	t.log.Debugf("aged %d entries in %s", t.numberOfEntries, time.Since(start))
}

// String summarizes table size and usage statistics.
func (t *Table) String() string {
	return out.Sprintf("TT: %d MB, %d entries, %d%% full, puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		t.sizeInByte/MB, t.maxNumberOfEntries, t.Hashfull()/10,
		t.Stats.Puts, t.Stats.Updates, t.Stats.Collisions, t.Stats.Overwrites,
		t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}

func (t *Table) hash(key zobrist.Key) uint64 {
	return uint64(key) & t.hashKeyMask
}

// ValueToTT adjusts a mate score found at ply plies from the root into a
// root-independent form safe to store: a checkmate found deeper in the
// tree is made to look even closer to the root before it is cached, so a
// shallower probe does not think the mate is one ply nearer than it is.
func ValueToTT(value Value, ply int) Value {
	if value >= ValueCheckMateThreshold {
		return value + Value(ply)
	}
	if value <= -ValueCheckMateThreshold {
		return value - Value(ply)
	}
	return value
}

// ValueFromTT reverses ValueToTT, converting a stored mate score back into
// one relative to the current search's root at ply.
func ValueFromTT(value Value, ply int) Value {
	if value >= ValueCheckMateThreshold {
		return value - Value(ply)
	}
	if value <= -ValueCheckMateThreshold {
		return value + Value(ply)
	}
	return value
}
