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

// Package position holds the mutable board state: piece bitboards, the
// mailbox, side to move and the incrementally maintained Zobrist key. A
// Position is mutated in place by DoMove/UndoMove during search; callers
// that need to preserve their own copy take one explicitly with Clone.
package position

import (
	"fmt"
	"strings"

	"github.com/hzyun/xiangqi/internal/assert"
	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

// StartFEN is the standard Xiangqi opening layout.
const StartFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

// Position aggregates everything needed to generate moves, evaluate and
// search from a board state.
type Position struct {
	board      [types.SquareLength]types.Piece
	pieceBB    [types.PieceLength]types.Bitboard
	colorBB    [types.ColorLength]types.Bitboard
	kingSquare [types.ColorLength]types.Square
	sideToMove types.Color
	key        zobrist.Key

	// history records every zobrist key seen since this Position was
	// constructed, including the current one; used for repetition
	// detection. It is not trimmed on UndoMove past the object's own
	// construction point.
	history []zobrist.Key
}

// NewPosition returns the standard Xiangqi starting position.
func NewPosition() *Position {
	p, err := NewPositionFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("position: start FEN did not parse: %v", err))
	}
	return p
}

// NewPositionFEN builds a Position from a FEN string.
func NewPositionFEN(fen string) (*Position, error) {
	p := &Position{}
	for i := range p.board {
		p.board[i] = types.PieceNone
	}
	if err := p.setupFromFEN(fen); err != nil {
		return nil, err
	}
	p.history = append(p.history, p.key)
	if assert.DEBUG {
		p.checkInvariants()
	}
	return p, nil
}

// Clone returns an independent deep copy. The search controller takes one
// clone per search so the caller's Position is never mutated.
func (p *Position) Clone() *Position {
	c := *p
	c.history = make([]zobrist.Key, len(p.history))
	copy(c.history, p.history)
	return &c
}

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq types.Square) types.Piece {
	return p.board[sq]
}

// PieceBB returns the bitboard of squares occupied by pc.
func (p *Position) PieceBB(pc types.Piece) types.Bitboard {
	return p.pieceBB[pc]
}

// ColorBB returns the union of all pieces of color c.
func (p *Position) ColorBB(c types.Color) types.Bitboard {
	return p.colorBB[c]
}

// OccupiedAll returns every occupied square.
func (p *Position) OccupiedAll() types.Bitboard {
	return p.colorBB[types.Red].Or(p.colorBB[types.Black])
}

// SideToMove returns whose turn it is.
func (p *Position) SideToMove() types.Color {
	return p.sideToMove
}

// Key returns the current Zobrist key.
func (p *Position) Key() zobrist.Key {
	return p.key
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.kingSquare[c]
}

// RepetitionCount returns how many times the current key appears in the
// full history, including the current entry itself: a count greater than
// one means this exact position has occurred before.
func (p *Position) RepetitionCount() int {
	count := 0
	for _, k := range p.history {
		if k == p.key {
			count++
		}
	}
	return count
}

// DoMove plays m and returns the captured piece (PieceNone if none) as an
// opaque undo token to be passed back to UndoMove.
func (p *Position) DoMove(m types.Move) types.Piece {
	from, to := m.From(), m.To()

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "DoMove: invalid move %s", m.String())
		assert.Assert(p.board[from] != types.PieceNone, "DoMove: no piece on %s", from.String())
		assert.Assert(p.board[from].Color() == p.sideToMove, "DoMove: piece on %s does not belong to side to move", from.String())
		assert.Assert(p.board[to].Type() != types.King, "DoMove: king cannot be captured")
	}

	moving := p.removePieceAt(from)
	captured := types.PieceNone
	if p.board[to] != types.PieceNone {
		captured = p.removePieceAt(to)
	}
	p.placePieceAt(moving, to)

	p.key ^= zobrist.Side()
	p.sideToMove = p.sideToMove.Flip()
	p.history = append(p.history, p.key)

	if assert.DEBUG {
		p.checkInvariants()
	}
	return captured
}

// UndoMove reverses the effect of the DoMove call that produced captured,
// restoring the Position to its exact prior state including the Zobrist
// key and history.
func (p *Position) UndoMove(m types.Move, captured types.Piece) {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 1, "UndoMove: history exhausted")
	}

	p.history = p.history[:len(p.history)-1]
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= zobrist.Side()

	from, to := m.From(), m.To()
	moving := p.removePieceAt(to)
	if captured != types.PieceNone {
		p.placePieceAt(captured, to)
	}
	p.placePieceAt(moving, from)

	if assert.DEBUG {
		p.checkInvariants()
	}
}

// DoNullMove flips the side to move without playing a move, used by null
// move pruning. UndoNullMove reverses it.
func (p *Position) DoNullMove() {
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= zobrist.Side()
	p.history = append(p.history, p.key)
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.history = p.history[:len(p.history)-1]
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= zobrist.Side()
}

func (p *Position) removePieceAt(sq types.Square) types.Piece {
	pc := p.board[sq]
	p.board[sq] = types.PieceNone
	p.pieceBB[pc] = p.pieceBB[pc].Clear(sq)
	p.colorBB[pc.Color()] = p.colorBB[pc.Color()].Clear(sq)
	p.key ^= zobrist.Piece(pc, sq)
	return pc
}

func (p *Position) placePieceAt(pc types.Piece, sq types.Square) {
	p.board[sq] = pc
	p.pieceBB[pc] = p.pieceBB[pc].Set(sq)
	p.colorBB[pc.Color()] = p.colorBB[pc.Color()].Set(sq)
	if pc.Type() == types.King {
		p.kingSquare[pc.Color()] = sq
	}
	p.key ^= zobrist.Piece(pc, sq)
}

// checkInvariants re-derives every field from the mailbox/bitboards and
// panics on mismatch. Only ever called
// behind assert.DEBUG, which the Go compiler eliminates entirely when
// DEBUG is a false constant.
func (p *Position) checkInvariants() {
	var wantColor [types.ColorLength]types.Bitboard
	for sq := types.Square(0); sq < types.SquareLength; sq++ {
		pc := p.board[sq]
		if pc == types.PieceNone {
			continue
		}
		assert.Assert(p.pieceBB[pc].Has(sq), "invariant: mailbox/pieceBB mismatch at %s", sq.String())
		wantColor[pc.Color()] = wantColor[pc.Color()].Set(sq)
	}
	assert.Assert(wantColor[types.Red] == p.colorBB[types.Red], "invariant: colorBB[Red] mismatch")
	assert.Assert(wantColor[types.Black] == p.colorBB[types.Black], "invariant: colorBB[Black] mismatch")
	assert.Assert(p.colorBB[types.Red].And(p.colorBB[types.Black]).IsEmpty(), "invariant: colorBB overlap")
	assert.Assert(len(p.history) > 0 && p.history[len(p.history)-1] == p.key, "invariant: history.last != key")
}

// String renders the board as ASCII, Black's back rank on top.
func (p *Position) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s to move, key=%x\n", p.sideToMove.String(), uint64(p.key))
	for r := 0; r < types.Ranks; r++ {
		fmt.Fprintf(&sb, "%d  ", r)
		for f := 0; f < types.Files; f++ {
			pc := p.board[types.SquareOf(r, f)]
			if pc == types.PieceNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   a b c d e f g h i\n")
	return sb.String()
}
