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

// Package zobrist holds the process-wide, read-only Zobrist key tables used
// to compute and incrementally update a Position's hash.
// One 64-bit constant is reserved per (piece, square) pair plus one constant
// for "Black to move"; all are produced once at startup from a fixed seed
// so that two processes (the engine and an offline book-building tool) agree
// on the same keys for the same position.
package zobrist

import "github.com/hzyun/xiangqi/internal/types"

// Key is a 64-bit position fingerprint.
type Key uint64

const seed uint64 = 1070372

var (
	pieceKeys [types.PieceLength][types.SquareLength]Key
	sideKey   Key
	ready     bool
)

// Init builds the key tables. Safe to call more than once (e.g. from
// tests); every call after the first is a no-op.
func Init() {
	if ready {
		return
	}
	r := newRandom(seed)
	for pc := types.Piece(0); pc < types.PieceLength; pc++ {
		for sq := types.Square(0); sq < types.SquareLength; sq++ {
			pieceKeys[pc][sq] = Key(r.rand64())
		}
	}
	sideKey = Key(r.rand64())
	ready = true
}

// Piece returns the key for placing piece pc on square sq.
func Piece(pc types.Piece, sq types.Square) Key {
	return pieceKeys[pc][sq]
}

// Side returns the "Black to move" key.
func Side() Key {
	return sideKey
}

// random is the xorshift64star PRNG, Sebastiano Vigna's public-domain
// implementation: a single 64-bit word of state, no warm-up needed,
// period 2^64-1.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("zobrist: seed must not be 0")
	}
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
