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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

func TestMain(m *testing.M) {
	zobrist.Init()
	m.Run()
}

func TestNewPositionStartFen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, types.Red, p.SideToMove())
	assert.Equal(t, types.PieceOf(types.King, types.Red), p.PieceAt(types.SquareOf(9, 4)))
	assert.Equal(t, types.PieceOf(types.King, types.Black), p.PieceAt(types.SquareOf(0, 4)))
	assert.Equal(t, StartFEN, p.FEN())
}

func TestFenRoundTrip(t *testing.T) {
	p, err := NewPositionFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, StartFEN, p.FEN())
}

func TestMalformedFenRankCount(t *testing.T) {
	_, err := NewPositionFEN("9/9/9 w - - 0 1")
	assert.Error(t, err)
}

func TestMalformedFenBadChar(t *testing.T) {
	_, err := NewPositionFEN("rnbqkabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1")
	assert.Error(t, err)
}

func TestMalformedFenSideToMove(t *testing.T) {
	_, err := NewPositionFEN(StartFEN[:len(StartFEN)-len("w - - 0 1")] + "x - - 0 1")
	assert.Error(t, err)
}

func TestDoUndoMoveRoundTrip(t *testing.T) {
	p := NewPosition()
	before := *p
	beforeKey := p.Key()

	from, to := types.SquareOf(7, 1), types.SquareOf(0, 1)
	m := types.NewMove(from, to)
	captured := p.DoMove(m)
	assert.NotEqual(t, beforeKey, p.Key())
	assert.Equal(t, types.PieceOf(types.Horse, types.Black), captured)

	p.UndoMove(m, captured)
	assert.Equal(t, beforeKey, p.Key())
	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.colorBB, p.colorBB)
	assert.Equal(t, before.pieceBB, p.pieceBB)
}

func TestIncrementalKeyMatchesRecompute(t *testing.T) {
	p := NewPosition()
	m := types.NewMove(types.SquareOf(7, 1), types.SquareOf(0, 1))
	p.DoMove(m)

	recomputed, err := NewPositionFEN(p.FEN())
	assert.NoError(t, err)
	assert.Equal(t, recomputed.Key(), p.Key())
}

func TestColorBbPopcountMatchesMailbox(t *testing.T) {
	p := NewPosition()
	count := 0
	for sq := types.Square(0); sq < types.SquareLength; sq++ {
		if p.PieceAt(sq).Color() == types.Red && p.PieceAt(sq) != types.PieceNone {
			count++
		}
	}
	assert.Equal(t, count, p.ColorBB(types.Red).PopCount())
}

func TestRepetitionCount(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, 1, p.RepetitionCount())
}

func TestClonedPositionIsIndependent(t *testing.T) {
	p := NewPosition()
	clone := p.Clone()
	m := types.NewMove(types.SquareOf(7, 1), types.SquareOf(0, 1))
	clone.DoMove(m)
	assert.NotEqual(t, p.Key(), clone.Key())
	assert.Equal(t, types.PieceOf(types.Horse, types.Black), p.PieceAt(types.SquareOf(0, 1)))
}
