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

// PieceType enumerates the seven Xiangqi piece kinds, independent of color.
type PieceType uint8

const (
	King     PieceType = iota
	Guard    PieceType = iota
	Elephant PieceType = iota
	Horse    PieceType = iota
	Rook     PieceType = iota
	Cannon   PieceType = iota
	Pawn     PieceType = iota
	// PtLength is the number of piece types.
	PtLength = 7
	// PtNone marks the absence of a piece type.
	PtNone PieceType = 7
)

var pieceTypeLabels = [PtLength]string{"k", "a", "b", "n", "r", "c", "p"}

func (pt PieceType) String() string {
	if pt >= PtLength {
		return "-"
	}
	return pieceTypeLabels[pt]
}

// BaseValue returns the static material value of one piece of this type,
// from the side-to-move-positive perspective (sign-free). King carries a
// sentinel far larger than any realistic material balance so that losing a
// king dominates the evaluation.
func (pt PieceType) BaseValue() Value {
	return pieceBaseValue[pt]
}

var pieceBaseValue = [PtLength]Value{
	King:     20000,
	Guard:    100,
	Elephant: 100,
	Horse:    450,
	Rook:     900,
	Cannon:   500,
	Pawn:     100,
}

// Piece is a (PieceType, Color) pair densely packed into 0..13: Red's
// seven piece types occupy 0-6, Black's the mirrored 7-13.
type Piece uint8

const (
	// PieceLength is the number of distinct (type, color) kinds.
	PieceLength = 14
	// PieceNone marks an empty square in the mailbox.
	PieceNone Piece = 14
)

// PieceOf packs a piece type and color into a dense Piece index.
func PieceOf(pt PieceType, c Color) Piece {
	return Piece(uint8(c)*PtLength + uint8(pt))
}

// Type extracts the PieceType component.
func (p Piece) Type() PieceType {
	if p >= PieceLength {
		return PtNone
	}
	return PieceType(uint8(p) % PtLength)
}

// Color extracts the Color component.
func (p Piece) Color() Color {
	if p >= PieceLength {
		return NoColor
	}
	return Color(uint8(p) / PtLength)
}

// IsValid reports whether p denotes an actual piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p < PieceLength
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "."
	}
	s := p.Type().String()
	if p.Color() == Red {
		return upper(s)
	}
	return s
}

func upper(s string) string {
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
