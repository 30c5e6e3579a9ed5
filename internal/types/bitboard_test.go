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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareBbRoundTrips(t *testing.T) {
	for sq := Square(0); sq < SquareLength; sq++ {
		bb := SquareBb(sq)
		assert.True(t, bb.Has(sq))
		assert.Equal(t, 1, bb.PopCount())
		assert.Equal(t, sq, bb.Lsb())
	}
}

func TestBitboardSetAndClear(t *testing.T) {
	origin := SquareOf(0, 0)
	var bb Bitboard
	bb = bb.Set(origin)
	bb = bb.Set(SquareOf(9, 8))
	assert.True(t, bb.Has(origin))
	assert.True(t, bb.Has(SquareOf(9, 8)))
	assert.Equal(t, 2, bb.PopCount())

	bb = bb.Clear(origin)
	assert.False(t, bb.Has(origin))
	assert.Equal(t, 1, bb.PopCount())
}

func TestBitboardPushPopSquare(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(SquareOf(4, 4))
	assert.True(t, bb.Has(SquareOf(4, 4)))
	bb.PopSquare(SquareOf(4, 4))
	assert.True(t, bb.IsEmpty())
}

func TestBitboardSetSpansHiWord(t *testing.T) {
	lo := SquareOf(7, 0)  // square 63, last bit of Lo
	hi := SquareOf(7, 1)  // square 64, first bit of Hi
	bb := SquareBb(lo).Or(SquareBb(hi))
	assert.Equal(t, uint64(1)<<63, bb.Lo)
	assert.Equal(t, uint64(1), bb.Hi)
	assert.Equal(t, 2, bb.PopCount())
}

func TestBitboardBooleanOps(t *testing.T) {
	a := SquareBb(SquareOf(0, 0)).Or(SquareBb(SquareOf(0, 1)))
	b := SquareBb(SquareOf(0, 1)).Or(SquareBb(SquareOf(0, 2)))

	assert.Equal(t, 3, a.Or(b).PopCount())
	assert.Equal(t, 1, a.And(b).PopCount())
	assert.True(t, a.And(b).Has(SquareOf(0, 1)))
	assert.Equal(t, 2, a.Xor(b).PopCount())
	assert.False(t, a.Xor(b).Has(SquareOf(0, 1)))
	assert.Equal(t, 1, a.AndNot(b).PopCount())
	assert.True(t, a.AndNot(b).Has(SquareOf(0, 0)))
}

func TestBitboardNotStaysWithinBoard(t *testing.T) {
	empty := EmptyBb
	full := empty.Not()
	assert.Equal(t, SquareLength, full.PopCount())
	for sq := Square(0); sq < SquareLength; sq++ {
		assert.True(t, full.Has(sq))
	}
}

func TestBitboardPopLsbDrainsInOrder(t *testing.T) {
	bb := SquareBb(SquareOf(3, 2)).Or(SquareBb(SquareOf(1, 0))).Or(SquareBb(SquareOf(5, 8)))
	var seen []Square
	for !bb.IsEmpty() {
		var sq Square
		sq, bb = bb.PopLsb()
		seen = append(seen, sq)
	}
	assert.Equal(t, []Square{SquareOf(1, 0), SquareOf(3, 2), SquareOf(5, 8)}, seen)
}

func TestBitboardLsbOnEmptyIsSquareNone(t *testing.T) {
	assert.Equal(t, SquareNone, EmptyBb.Lsb())
	sq, rest := EmptyBb.PopLsb()
	assert.Equal(t, SquareNone, sq)
	assert.True(t, rest.IsEmpty())
}

func TestBitboardString(t *testing.T) {
	bb := SquareBb(SquareOf(0, 0))
	s := bb.String()
	assert.Equal(t, Ranks, len(splitLines(s)))
	assert.Contains(t, splitLines(s)[Ranks-1], "1")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}
