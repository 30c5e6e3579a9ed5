/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package history implements the history-heuristic table consulted by the
// search's move ordering: quiet moves that caused a beta cutoff accumulate
// depth^2 credit at [piece][to-square], so that a later search of a
// sibling node tries the same kind of quiet move first.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hzyun/xiangqi/internal/types"
)

var out = message.NewPrinter(language.German)

// Table is indexed [piece type][to square]; it is cleared at the start of
// every top-level search.
type Table struct {
	counter [types.PtLength][types.SquareLength]int64
}

// NewTable creates an empty history table.
func NewTable() *Table {
	return &Table{}
}

// Clear resets every counter to zero.
func (t *Table) Clear() {
	*t = Table{}
}

// Add credits a quiet move that produced a beta cutoff at the given depth.
func (t *Table) Add(pt types.PieceType, to types.Square, depth int) {
	t.counter[pt][to] += int64(depth) * int64(depth)
}

// Value returns the accumulated credit for (pt, to), used as the sort key
// for quiet moves once captures have been ordered.
func (t *Table) Value(pt types.PieceType, to types.Square) int64 {
	return t.counter[pt][to]
}

func (t *Table) String() string {
	var sb strings.Builder
	for pt := types.PieceType(0); pt < types.PtLength; pt++ {
		for sq := types.Square(0); sq < types.SquareLength; sq++ {
			if v := t.counter[pt][sq]; v != 0 {
				sb.WriteString(out.Sprintf("%s->%s: %d\n", pt.String(), sq.String(), v))
			}
		}
	}
	return sb.String()
}
