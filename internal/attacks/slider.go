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

package attacks

import "github.com/hzyun/xiangqi/internal/types"

// RookAttacks returns every destination square reachable by a Rook at sq
// given the board's full occupancy: the empty squares of each ray up to
// and including the first occupied square.
func RookAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	var bb types.Bitboard
	for dir := North; dir <= West; dir++ {
		for _, s := range Ray[dir][sq] {
			bb.PushSquare(s)
			if occ.Has(s) {
				break
			}
		}
	}
	return bb
}

// CannonAttacks returns every destination square reachable by a Cannon at
// sq: the empty squares before the first screen piece, then only the
// first occupied square beyond that screen, per ray.
func CannonAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	var bb types.Bitboard
	for dir := North; dir <= West; dir++ {
		screened := false
		for _, s := range Ray[dir][sq] {
			if !screened {
				if !occ.Has(s) {
					bb.PushSquare(s)
				} else {
					screened = true
				}
				continue
			}
			if occ.Has(s) {
				bb.PushSquare(s)
				break
			}
		}
	}
	return bb
}
