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

import "fmt"

// Move is a from-square/to-square pair, packed into a uint16. Xiangqi has
// no promotions, castling or en-passant, so no extra bits are needed.
// Capture information is deliberately not part of Move: make() returns the
// captured piece as a separate undo token that the caller must pass back
// to unmake().
type Move uint16

const (
	fromShift = 0
	toShift   = 7
	squareBits = 0x7F
)

// NoMove is the sentinel for "no move". from==to is never a legal move
// (nothing can move onto its own square), so the zero value is safe to use.
var NoMove = Move(0)

// NewMove packs a from/to square pair into a Move.
func NewMove(from, to Square) Move {
	return Move(uint16(from)<<fromShift | uint16(to)<<toShift)
}

// From returns the source square.
func (m Move) From() Square {
	return Square((uint16(m) >> fromShift) & squareBits)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint16(m) >> toShift) & squareBits)
}

// IsValid reports whether m is not NoMove.
func (m Move) IsValid() bool {
	return m != NoMove
}

func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return fmt.Sprintf("%s%s", m.From(), m.To())
}

// RootMove pairs a root move with the score its subtree produced in the
// last completed iteration, so the root move list can be re-sorted before
// the next deepening iteration (the previous best move is always searched
// first).
type RootMove struct {
	Move  Move
	Value Value
}
