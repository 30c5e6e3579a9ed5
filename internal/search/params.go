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

package search

import "github.com/hzyun/xiangqi/internal/types"

// captureBonus is added to a capture's MVV-LVA score so that every capture
// sorts ahead of every quiet move regardless of history counts.
const captureBonus = 1_000_000

// nullMoveReduction computes R, the extra depth reduction null-move
// pruning searches at.
func nullMoveReduction(depth int) int {
	return 3 + depth/6
}

// mvvLva scores a capture as victim value minus attacker value, so that
// capturing a valuable piece with a cheap one sorts first.
func mvvLva(victim, attacker types.PieceType) int {
	return int(victim.BaseValue()) - int(attacker.BaseValue()) + captureBonus
}
