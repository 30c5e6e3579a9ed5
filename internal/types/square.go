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

// Square indexes one of the 90 points of the Xiangqi board: 10 ranks of 9
// files, rank 0 being Black's back rank and rank 9 being Red's back rank.
// sq = rank*9 + file.
type Square uint8

const (
	// Ranks is the number of ranks (rows).
	Ranks = 10
	// Files is the number of files (columns).
	Files = 9
	// SquareLength is the number of squares on the board.
	SquareLength = Ranks * Files
	// SquareNone marks an invalid/absent square.
	SquareNone Square = SquareLength

	// RiverNorth is the last rank (inclusive) of Black's side of the river.
	RiverNorth = 4
	// RiverSouth is the first rank (inclusive) of Red's side of the river.
	RiverSouth = 5

	// PalaceFileLo/PalaceFileHi bound the palace files (inclusive).
	PalaceFileLo = 3
	PalaceFileHi = 5
	// BlackPalaceRankHi is the last rank (inclusive) of Black's palace.
	BlackPalaceRankHi = 2
	// RedPalaceRankLo is the first rank (inclusive) of Red's palace.
	RedPalaceRankLo = 7
)

// SquareOf builds a Square from a rank and file, both zero-based.
func SquareOf(rank, file int) Square {
	return Square(rank*Files + file)
}

// Rank returns the zero-based rank (0 = Black's back rank).
func (sq Square) Rank() int {
	return int(sq) / Files
}

// File returns the zero-based file.
func (sq Square) File() int {
	return int(sq) % Files
}

// IsValid reports whether sq is one of the 90 board squares.
func (sq Square) IsValid() bool {
	return sq < SquareLength
}

// InPalace reports whether sq lies within the palace of color c.
func (sq Square) InPalace(c Color) bool {
	f := sq.File()
	if f < PalaceFileLo || f > PalaceFileHi {
		return false
	}
	r := sq.Rank()
	if c == Black {
		return r <= BlackPalaceRankHi
	}
	return r >= RedPalaceRankLo
}

// OwnHalf reports whether sq lies on color c's side of the river
// (inclusive of the river-bank ranks); used by the elephant's
// river-crossing restriction.
func (sq Square) OwnHalf(c Color) bool {
	if c == Black {
		return sq.Rank() <= RiverNorth
	}
	return sq.Rank() >= RiverSouth
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank())
}
