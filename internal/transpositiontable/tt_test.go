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
	"testing"

	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

func TestResizeAndCapacity(t *testing.T) {
	tt := NewTable(1)
	if len(tt.data) == 0 {
		t.Fatal("expected a non-zero capacity for a 1 MB table")
	}
	if tt.indexMask+1 != uint64(len(tt.data)) {
		t.Fatalf("capacity %d is not a power of two (mask %#x)", len(tt.data), tt.indexMask)
	}
}

func TestStoreAndProbe(t *testing.T) {
	tt := NewTable(1)
	key := zobristTestKey(42)
	move := types.NewMove(types.SquareOf(0, 0), types.SquareOf(1, 0))
	tt.Store(key, move, 5, 123, BoundExact)

	e := tt.Probe(key)
	if e == nil {
		t.Fatal("expected a hit after Store")
	}
	if e.Move() != move || e.Value() != 123 || e.Depth() != 5 || e.Bound() != BoundExact {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := NewTable(1)
	if e := tt.Probe(zobristTestKey(7)); e != nil {
		t.Fatalf("expected nil on empty table, got %+v", e)
	}
}

func TestAlwaysReplace(t *testing.T) {
	tt := NewTable(1)
	// Two keys that map to the same slot (same low bits) but differ in the
	// high bits exercise the collision/always-replace path.
	k1, k2 := zobristTestKey(1), zobristTestKey(1+uint64(len(tt.data)))
	tt.Store(k1, types.NoMove, 3, 10, BoundExact)
	tt.Store(k2, types.NoMove, 1, 20, BoundLower)

	e := tt.Probe(k2)
	if e == nil || e.Value() != 20 {
		t.Fatalf("expected always-replace to overwrite with the newer entry, got %+v", e)
	}
	if tt.Stats.Collisions == 0 {
		t.Fatal("expected a recorded collision")
	}
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTable(1)
	tt.Store(zobristTestKey(9), types.NoMove, 1, 1, BoundExact)
	if tt.Len() == 0 {
		t.Fatal("expected a stored entry before Clear")
	}
	tt.Clear()
	if tt.Len() != 0 {
		t.Fatalf("expected Len()==0 after Clear, got %d", tt.Len())
	}
	if e := tt.Probe(zobristTestKey(9)); e != nil {
		t.Fatalf("expected a miss after Clear, got %+v", e)
	}
}

func zobristTestKey(n uint64) zobrist.Key {
	return zobrist.Key(n)
}
