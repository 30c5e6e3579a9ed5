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

// Value is a centipawn-like evaluation/search score, positive favoring the
// side to move (in negamax context) or Red (as the evaluator's raw output,
// see the evaluator package doc).
type Value int32

const (
	// ValueDraw is the score of a draw: repetition, or no legal moves
	// while not in check (the Xiangqi analogue of stalemate, scored as a
	// draw rather than a loss).
	ValueDraw Value = 0

	// ValueInfinite bounds the search window at the root.
	ValueInfinite Value = 30000

	// ValueNA marks "no value available", returned when a search is
	// cancelled before producing a usable score.
	ValueNA Value = ValueInfinite + 1

	// ValueCheckMate is the mate sentinel M. A mate in n plies scores
	// ±(ValueCheckMate - n).
	ValueCheckMate Value = 10000

	// ValueCheckMateThreshold: scores with absolute value strictly greater
	// than this are "mate found" scores.
	ValueCheckMateThreshold Value = ValueCheckMate - 100
)

// IsCheckmateValue reports whether v encodes a forced mate.
func (v Value) IsCheckmateValue() bool {
	return v > ValueCheckMateThreshold || v < -ValueCheckMateThreshold
}

// MateIn returns the number of plies to mate encoded in v (positive: the
// side to move delivers mate; negative: the side to move is mated),
// assuming v.IsCheckmateValue().
func (v Value) MateIn() int {
	if v > 0 {
		return int(ValueCheckMate - v)
	}
	return -int(ValueCheckMate + v)
}

// MateScore folds ply into the checkmate sentinel so that a shorter mate
// (smaller ply) scores higher than a longer one.
func MateScore(ply int) Value {
	return -(ValueCheckMate - Value(ply))
}
