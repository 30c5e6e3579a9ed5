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

package transpositiontable

import (
	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

// Bound classifies what a stored score actually means relative to the
// alpha-beta window it was computed in.
type Bound uint8

const (
	// BoundNone marks an empty/unused entry.
	BoundNone Bound = iota
	// BoundExact is a fail-soft principal-variation score.
	BoundExact
	// BoundLower is a fail-high score: the true value is >= this.
	BoundLower
	// BoundUpper is a fail-low score: the true value is <= this.
	BoundUpper
)

// Entry is one transposition-table slot, keyed by the full 64-bit Zobrist
// key so that a bucket collision is detected rather than returning a wrong
// position's stored score.
type Entry struct {
	key   zobrist.Key
	move  types.Move
	value int16
	depth int8
	bound Bound
}

// Key is the full Zobrist key stored in the slot.
func (e *Entry) Key() zobrist.Key { return e.key }

// Move is the best move found for this position, or types.NoMove.
func (e *Entry) Move() types.Move { return e.move }

// Value is the stored score, from the side-to-move-at-storage-time's view.
func (e *Entry) Value() types.Value { return types.Value(e.value) }

// Depth is the search depth the stored score was computed at.
func (e *Entry) Depth() int8 { return e.depth }

// Bound reports whether Value() is exact, a lower bound or an upper bound.
func (e *Entry) Bound() Bound { return e.bound }

// isEmpty reports whether the slot has never been written (or was cleared).
func (e *Entry) isEmpty() bool { return e.bound == BoundNone }
