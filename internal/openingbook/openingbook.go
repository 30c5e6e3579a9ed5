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

// Package openingbook reads a prebuilt Zobrist-key -> moves map and hands
// back a uniformly random legal move for a known position. The book is
// read-only and immutable once loaded; building it from archival game
// records is out of scope for this package.
package openingbook

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	myLogging "github.com/hzyun/xiangqi/internal/logging"
	"github.com/hzyun/xiangqi/internal/moveslice"
	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/util"
	"github.com/hzyun/xiangqi/internal/zobrist"

	"github.com/op/go-logging"
)

// squarePair is one [rank, file] coordinate as it appears in the book's
// JSON encoding: [[fromRank, fromFile], [toRank, toFile]].
type squarePair [2][2]int

// Book maps a position's Zobrist key to the moves known to have been
// played from it. Immutable after Load returns.
type Book struct {
	log     *logging.Logger
	entries map[zobrist.Key][]types.Move
	rng     *rand.Rand
}

// NewBook creates an empty, bookless Book. Calling Probe on it always
// misses; Load populates it from a file.
func NewBook() *Book {
	return &Book{
		log:     myLogging.GetLog(),
		entries: make(map[zobrist.Key][]types.Move),
		rng:     rand.New(rand.NewSource(1)),
	}
}

// Load reads the JSON file dir/file (see parseBook) and replaces the
// book's contents. A missing or malformed file is logged and leaves the
// book's contents unchanged (empty for a fresh Book), so the engine
// degrades to bookless search rather than failing to start.
func (b *Book) Load(dir, file string) error {
	candidate := filepath.Join(dir, file)
	resolved, err := util.ResolveFile(candidate)
	if err != nil {
		b.log.Warningf("opening book: %s not found, running bookless: %v", candidate, err)
		return err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		b.log.Warningf("opening book: could not read %s, running bookless: %v", resolved, err)
		return err
	}
	entries, err := b.parseBook(raw)
	if err != nil {
		b.log.Warningf("opening book: could not parse %s, running bookless: %v", resolved, err)
		return err
	}
	b.entries = entries
	b.log.Infof("opening book: loaded %d positions from %s", len(b.entries), resolved)
	return nil
}

// parseBook decodes raw JSON shaped like `{"<zobrist>": [[[fr,fc],[tr,tc]], ...], ...}`
// into a key -> moves map (the [[rank,file],[rank,file]] shape matches how
// the book-building pipeline this engine only consumes, not builds,
// serializes a move). Only a malformed top-level document fails the
// load; an individual key that is not a valid uint64 is skipped and
// logged.
func (b *Book) parseBook(raw []byte) (map[zobrist.Key][]types.Move, error) {
	var decoded map[string][]squarePair
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("invalid opening book JSON: %w", err)
	}
	entries := make(map[zobrist.Key][]types.Move, len(decoded))
	for keyStr, pairs := range decoded {
		keyInt, err := strconv.ParseUint(keyStr, 10, 64)
		if err != nil {
			b.log.Warningf("opening book: skipping malformed key %q: %v", keyStr, err)
			continue
		}
		moves := make([]types.Move, 0, len(pairs))
		for _, pair := range pairs {
			from := types.SquareOf(pair[0][0], pair[0][1])
			to := types.SquareOf(pair[1][0], pair[1][1])
			moves = append(moves, types.NewMove(from, to))
		}
		entries[zobrist.Key(keyInt)] = moves
	}
	return entries, nil
}

// NumberOfEntries reports how many distinct positions the book covers.
func (b *Book) NumberOfEntries() int {
	return len(b.entries)
}

// Probe looks up key and, if found, intersects the book's stored moves
// with the position's actual legal moves and returns a uniformly random
// survivor; a stale book entry referencing a now-illegal move must never
// be played.
func (b *Book) Probe(key zobrist.Key, legal *moveslice.MoveSlice) (types.Move, bool) {
	stored, ok := b.entries[key]
	if !ok || len(stored) == 0 {
		return types.NoMove, false
	}
	var candidates []types.Move
	for _, m := range stored {
		for i := 0; i < legal.Len(); i++ {
			if legal.At(i) == m {
				candidates = append(candidates, m)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return types.NoMove, false
	}
	return candidates[b.rng.Intn(len(candidates))], true
}
