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

func TestPieceOf(t *testing.T) {
	type args struct {
		pt PieceType
		c  Color
	}
	tests := []struct {
		name string
		args args
		want Piece
	}{
		{"Red King", args{King, Red}, Piece(King)},
		{"Black King", args{King, Black}, Piece(PtLength + uint8(King))},
		{"Red Horse", args{Horse, Red}, Piece(Horse)},
		{"Black Horse", args{Horse, Black}, Piece(PtLength + uint8(Horse))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PieceOf(tt.args.pt, tt.args.c))
		})
	}
}

func TestPieceTypeAndColor(t *testing.T) {
	for c := Red; c <= Black; c++ {
		for pt := King; pt < PtLength; pt++ {
			p := PieceOf(pt, c)
			assert.Equal(t, pt, p.Type())
			assert.Equal(t, c, p.Color())
			assert.True(t, p.IsValid())
		}
	}
}

func TestPieceNoneIsInvalid(t *testing.T) {
	assert.False(t, PieceNone.IsValid())
	assert.Equal(t, PtNone, PieceNone.Type())
	assert.Equal(t, NoColor, PieceNone.Color())
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "K", PieceOf(King, Red).String())
	assert.Equal(t, "k", PieceOf(King, Black).String())
	assert.Equal(t, "R", PieceOf(Rook, Red).String())
	assert.Equal(t, "c", PieceOf(Cannon, Black).String())
	assert.Equal(t, ".", PieceNone.String())
}

func TestPieceTypeString(t *testing.T) {
	assert.Equal(t, "k", King.String())
	assert.Equal(t, "p", Pawn.String())
	assert.Equal(t, "-", PtNone.String())
}

func TestBaseValueKingDominates(t *testing.T) {
	sum := Guard.BaseValue() + Elephant.BaseValue() + Horse.BaseValue() +
		Rook.BaseValue() + Cannon.BaseValue() + Pawn.BaseValue()
	assert.Greater(t, int(King.BaseValue()), int(sum)*2)
}
