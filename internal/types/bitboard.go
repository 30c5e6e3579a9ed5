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
	"math/bits"
	"strings"
)

// Bitboard is a set of board squares. The board has 90 squares, wider than
// a single 64-bit word, so a Bitboard is backed by two words: Lo covers
// squares 0-63, Hi covers squares 64-89 (26 bits used, the rest always
// zero). All bitwise operations keep Hi masked to those 26 bits so that no
// phantom bits above square 89 ever leak into popcount/Lsb scans.
type Bitboard struct {
	Lo uint64
	Hi uint64
}

const hiBits = SquareLength - 64 // 26
const hiMask = (uint64(1) << hiBits) - 1

// EmptyBb is the zero-value empty bitboard.
var EmptyBb = Bitboard{}

func wordAndBit(sq Square) (hi bool, bit uint64) {
	if sq < 64 {
		return false, uint64(1) << uint(sq)
	}
	return true, uint64(1) << uint(sq-64)
}

// SquareBb returns the singleton bitboard for sq.
func SquareBb(sq Square) Bitboard {
	hi, bit := wordAndBit(sq)
	if hi {
		return Bitboard{Hi: bit}
	}
	return Bitboard{Lo: bit}
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	hi, bit := wordAndBit(sq)
	if hi {
		return b.Hi&bit != 0
	}
	return b.Lo&bit != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	hi, bit := wordAndBit(sq)
	if hi {
		b.Hi |= bit
	} else {
		b.Lo |= bit
	}
	return b
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	hi, bit := wordAndBit(sq)
	if hi {
		b.Hi &^= bit
	} else {
		b.Lo &^= bit
	}
	return b
}

// PushSquare sets sq in *b in place.
func (b *Bitboard) PushSquare(sq Square) {
	*b = b.Set(sq)
}

// PopSquare clears sq in *b in place.
func (b *Bitboard) PopSquare(sq Square) {
	*b = b.Clear(sq)
}

// Or returns the union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b.Lo | o.Lo, b.Hi | o.Hi}
}

// And returns the intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b.Lo & o.Lo, b.Hi & o.Hi}
}

// Xor returns the symmetric difference of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b.Lo ^ o.Lo, b.Hi ^ o.Hi}
}

// AndNot returns b with every square of o removed.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b.Lo &^ o.Lo, b.Hi &^ o.Hi}
}

// Not returns the complement of b, masked to the 90 valid squares.
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b.Lo, ^b.Hi & hiMask}
}

// IsEmpty reports whether b has no squares set.
func (b Bitboard) IsEmpty() bool {
	return b.Lo == 0 && b.Hi == 0
}

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// Lsb returns the lowest-indexed set square, or SquareNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b.Lo != 0 {
		return Square(bits.TrailingZeros64(b.Lo))
	}
	if b.Hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.Hi))
	}
	return SquareNone
}

// PopLsb returns the lowest-indexed set square together with b minus that
// square, the usual "iterate set bits" idiom.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	if sq == SquareNone {
		return SquareNone, b
	}
	return sq, b.Clear(sq)
}

// String renders b as a 10x9 ASCII board, rank 9 (Red's back rank) on top
// so it reads the same way as a printed board.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		for file := 0; file < Files; file++ {
			if b.Has(SquareOf(rank, file)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
