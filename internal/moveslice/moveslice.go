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

// Package moveslice provides a small helper type over []types.Move used by
// movegen to accumulate pseudo-legal/legal moves without per-call
// allocation when a caller supplies a slice with spare capacity.
package moveslice

import (
	"fmt"
	"strings"

	"github.com/hzyun/xiangqi/internal/types"
)

// MoveSlice is a []types.Move with a few convenience methods.
type MoveSlice []types.Move

// NewMoveSlice creates an empty move slice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]types.Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move.
func (ms *MoveSlice) PushBack(m types.Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) types.Move {
	if i < 0 || i >= ms.Len() {
		panic("MoveSlice: index out of bounds")
	}
	return (*ms)[i]
}

// String renders the moves for diagnostic logging.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MoveSlice: [%d] { ", ms.Len())
	for i := 0; i < ms.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ms.At(i).String())
	}
	sb.WriteString(" }")
	return sb.String()
}
