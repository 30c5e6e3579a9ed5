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

package openingbook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/hzyun/xiangqi/internal/attacks"
	"github.com/hzyun/xiangqi/internal/movegen"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func moveToPair(m types.Move) squarePair {
	return squarePair{
		{m.From().Rank(), m.From().File()},
		{m.To().Rank(), m.To().File()},
	}
}

func writeBookFile(t *testing.T, fixture map[string][]squarePair) (dir, file string) {
	t.Helper()
	raw, err := json.Marshal(fixture)
	if err != nil {
		t.Fatal(err)
	}
	dir = t.TempDir()
	file = "book.json"
	if err := os.WriteFile(filepath.Join(dir, file), raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, file
}

func TestNewBookIsEmptyAndAlwaysMisses(t *testing.T) {
	b := NewBook()
	if b.NumberOfEntries() != 0 {
		t.Fatal("expected a fresh book to have no entries")
	}
	pos := position.NewPosition()
	_, ok := b.Probe(pos.Key(), movegen.Legal(pos))
	if ok {
		t.Fatal("an empty book must never return a move")
	}
}

func TestLoadMissingFileLeavesBookEmpty(t *testing.T) {
	b := NewBook()
	err := b.Load(t.TempDir(), "does-not-exist.json")
	if err == nil {
		t.Fatal("expected an error for a missing book file")
	}
	if b.NumberOfEntries() != 0 {
		t.Fatal("a failed load must not populate the book")
	}
}

func TestLoadMalformedFileLeavesBookEmpty(t *testing.T) {
	dir := t.TempDir()
	file := "book.json"
	if err := os.WriteFile(filepath.Join(dir, file), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	b := NewBook()
	if err := b.Load(dir, file); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
	if b.NumberOfEntries() != 0 {
		t.Fatal("a failed parse must not populate the book")
	}
}

func TestLoadAndProbeStartPosition(t *testing.T) {
	pos := position.NewPosition()
	legal := movegen.Legal(pos)
	if legal.Len() == 0 {
		t.Fatal("start position must have legal moves")
	}
	m := legal.At(0)

	key := strconv.FormatUint(uint64(pos.Key()), 10)
	dir, file := writeBookFile(t, map[string][]squarePair{key: {moveToPair(m)}})

	b := NewBook()
	if err := b.Load(dir, file); err != nil {
		t.Fatal(err)
	}
	if b.NumberOfEntries() != 1 {
		t.Fatalf("expected 1 book entry, got %d", b.NumberOfEntries())
	}
	got, ok := b.Probe(pos.Key(), legal)
	if !ok {
		t.Fatal("expected the book to hit on the start position")
	}
	if got != m {
		t.Fatalf("expected book to return %s, got %s", m, got)
	}
}

func TestProbeIntersectsWithLegalMoves(t *testing.T) {
	pos := position.NewPosition()
	legal := movegen.Legal(pos)
	m := legal.At(0)

	// from==to can never be a legal move; Probe must discard it rather
	// than ever hand it back even though it shares the position's key.
	bogus := types.NewMove(types.SquareOf(4, 4), types.SquareOf(4, 4))
	key := strconv.FormatUint(uint64(pos.Key()), 10)
	dir, file := writeBookFile(t, map[string][]squarePair{
		key: {moveToPair(bogus), moveToPair(m)},
	})

	b := NewBook()
	if err := b.Load(dir, file); err != nil {
		t.Fatal(err)
	}
	got, ok := b.Probe(pos.Key(), legal)
	if !ok {
		t.Fatal("expected a hit once intersected with legal moves")
	}
	if got != m {
		t.Fatalf("expected the only legal candidate %s, got %s", m, got)
	}
}
