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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

func TestMain(m *testing.M) {
	zobrist.Init()
	m.Run()
}

// The opening position has exactly 44 legal moves for the side to move.
func TestOpeningPositionHas44LegalMoves(t *testing.T) {
	p, err := position.NewPositionFEN(position.StartFEN)
	assert.NoError(t, err)
	moves := Legal(p)
	assert.Equal(t, 44, moves.Len())
}

// Every legal move must also appear among the pseudo-legal moves: Legal is
// always a subset of PseudoLegal.
func TestLegalIsSubsetOfPseudoLegal(t *testing.T) {
	p, err := position.NewPositionFEN(position.StartFEN)
	assert.NoError(t, err)
	pseudo := PseudoLegal(p)
	legal := Legal(p)

	pseudoSet := make(map[types.Move]bool, pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		pseudoSet[pseudo.At(i)] = true
	}
	for i := 0; i < legal.Len(); i++ {
		assert.True(t, pseudoSet[legal.At(i)], "legal move %s missing from pseudo-legal set", legal.At(i))
	}
}

// LegalCaptures must be exactly the legal moves whose destination square is
// occupied, and nothing else.
func TestLegalCapturesMatchesDestinationOccupancy(t *testing.T) {
	// A midgame-ish FEN with cannons and horses in contact.
	p, err := position.NewPositionFEN("rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1")
	assert.NoError(t, err)

	legal := Legal(p)
	captures := LegalCaptures(p)

	wantCaptures := 0
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if p.PieceAt(m.To()) != types.PieceNone {
			wantCaptures++
		}
	}
	assert.Equal(t, wantCaptures, captures.Len())
	for i := 0; i < captures.Len(); i++ {
		assert.NotEqual(t, types.PieceNone, p.PieceAt(captures.At(i).To()))
	}
}

// Red's cannon can capture Black's horse over the screen of a single
// intervening piece: 7,1 -> 0,1 from the opening position (red cannon on
// (7,1) takes black horse on (0,1), using the black cannon on (2,1) as
// the screen).
func TestCannonCaptureOverScreenIsLegal(t *testing.T) {
	p, err := position.NewPositionFEN(position.StartFEN)
	assert.NoError(t, err)
	from := types.SquareOf(7, 1)
	to := types.SquareOf(0, 1)
	m := types.NewMove(from, to)

	legal := Legal(p)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == m {
			found = true
			break
		}
	}
	assert.True(t, found, "expected cannon capture move to be legal")
}

// Neither side is in check in the opening position.
func TestOpeningPositionHasNoCheck(t *testing.T) {
	p, err := position.NewPositionFEN(position.StartFEN)
	assert.NoError(t, err)
	assert.False(t, InCheck(p, types.Red))
	assert.False(t, InCheck(p, types.Black))
}

// Two bare kings facing each other on an open file must report check via
// the flying-general rule even though no ordinary piece attacks either
// king square.
func TestFlyingGeneralIsCheck(t *testing.T) {
	p, err := position.NewPositionFEN("4k4/9/9/9/9/9/9/9/9/4K4 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, InCheck(p, types.Red))
	assert.True(t, InCheck(p, types.Black))
}

// Blocking the file between the two kings clears the flying-general check.
func TestFlyingGeneralBlockedIsNotCheck(t *testing.T) {
	p, err := position.NewPositionFEN("4k4/9/9/4p4/9/9/9/9/9/4K4 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, InCheck(p, types.Red))
	assert.False(t, InCheck(p, types.Black))
}

// A boxed-in king with no legal move and in check has no legal moves at
// all, as required to distinguish checkmate from stalemate. Black's king
// sits at the corner of its palace; one red rook checks along the open
// rank and also covers the only rank-escape square, a second red rook
// covers the only file-escape square, and neither rook is reachable by
// the king.
func TestHasLegalMoveFalseWhenNoEscape(t *testing.T) {
	p, err := position.NewPositionFEN("3k4R/9/9/9/9/3R5/9/9/9/5K3 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, InCheck(p, types.Black))
	assert.False(t, HasLegalMove(p))
}
