//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable implements a fixed-size, always-replace
// transposition table keyed by Zobrist hash. It is not thread safe;
// Resize/Clear must not be called
// concurrently with a running search.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/hzyun/xiangqi/internal/logging"
	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// MB is one megabyte in bytes.
const MB = 1024 * 1024

// MaxSizeInMB bounds Resize to a sane upper limit.
const MaxSizeInMB = 65_536

// EntrySize is the in-memory size of one Entry.
const EntrySize = unsafe.Sizeof(Entry{})

// Table is the transposition table: a power-of-two-sized slice addressed
// by the low bits of the Zobrist key, always-replace on collision.
type Table struct {
	log        *logging.Logger
	data       []Entry
	indexMask  uint64
	numEntries uint64
	Stats      Stats
}

// Stats tracks table usage for diagnostic logging.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// NewTable creates a Table sized to the largest power-of-two entry count
// that fits within sizeInMB.
func NewTable(sizeInMB int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMB)
	return t
}

// Resize rebuilds the table for a new size, discarding all entries.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		t.log.Warning(out.Sprintf("tt: requested %d MB reduced to max %d MB", sizeInMB, MaxSizeInMB))
		sizeInMB = MaxSizeInMB
	}
	if sizeInMB < 0 {
		sizeInMB = 0
	}
	sizeInBytes := uint64(sizeInMB) * MB
	numEntries := uint64(0)
	if sizeInBytes >= uint64(EntrySize) {
		numEntries = uint64(1) << uint64(math.Floor(math.Log2(float64(sizeInBytes)/float64(EntrySize))))
	}
	t.indexMask = 0
	if numEntries > 0 {
		t.indexMask = numEntries - 1
	}
	t.data = make([]Entry, numEntries)
	t.numEntries = 0
	t.Stats = Stats{}
	t.log.Info(out.Sprintf("tt: resized to %d MB, %d entries of %d bytes", sizeInMB, numEntries, EntrySize))
}

// Clear empties every slot without changing the table's size.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.numEntries = 0
	t.Stats = Stats{}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.indexMask
}

// Probe returns the stored entry for key, or nil if the table is empty or
// the slot holds a different position.
func (t *Table) Probe(key zobrist.Key) *Entry {
	if len(t.data) == 0 {
		return nil
	}
	t.Stats.Probes++
	e := &t.data[t.index(key)]
	if e.isEmpty() || e.key != key {
		t.Stats.Misses++
		return nil
	}
	t.Stats.Hits++
	return e
}

// Store writes a search result into the table, always overwriting
// whatever was in the slot before.
func (t *Table) Store(key zobrist.Key, move types.Move, depth int8, value types.Value, bound Bound) {
	if len(t.data) == 0 {
		return
	}
	t.Stats.Puts++
	e := &t.data[t.index(key)]
	if e.isEmpty() {
		t.numEntries++
	} else if e.key != key {
		t.Stats.Collisions++
	}
	e.key = key
	e.move = move
	e.value = int16(value)
	e.depth = depth
	e.bound = bound
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.numEntries
}

// Hashfull reports table occupancy in permille.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	return int((1000 * t.numEntries) / uint64(len(t.data)))
}

func (t *Table) String() string {
	return out.Sprintf("TT: %d entries (%d permille full), puts=%d collisions=%d probes=%d hits=%d misses=%d",
		len(t.data), t.Hashfull(), t.Stats.Puts, t.Stats.Collisions, t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}
