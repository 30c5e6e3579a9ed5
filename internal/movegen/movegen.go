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

// Package movegen generates pseudo-legal and legal moves for a Position,
// and detects check.
package movegen

import (
	"github.com/hzyun/xiangqi/internal/attacks"
	"github.com/hzyun/xiangqi/internal/moveslice"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/types"
)

// PseudoLegal generates every move available to the side to move, ignoring
// whether it leaves the mover's own king in check.
func PseudoLegal(p *position.Position) *moveslice.MoveSlice {
	ml := moveslice.NewMoveSlice(48)
	us := p.SideToMove()
	own := p.ColorBB(us)
	occ := p.OccupiedAll()

	genTable(ml, p, us, own, attacks.King, types.King)
	genTable(ml, p, us, own, attacks.Guard, types.Guard)
	genElephant(ml, p, us, own, occ)
	genHorse(ml, p, us, own, occ)
	genPawn(ml, p, us, own)
	genSlider(ml, p, us, own, occ, attacks.RookAttacks, types.Rook)
	genSlider(ml, p, us, own, occ, attacks.CannonAttacks, types.Cannon)
	return ml
}

// Legal filters PseudoLegal down to moves that do not leave the mover's own
// king in check, by actually playing and unplaying each candidate.
func Legal(p *position.Position) *moveslice.MoveSlice {
	pseudo := PseudoLegal(p)
	us := p.SideToMove()
	legal := moveslice.NewMoveSlice(pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		captured := p.DoMove(m)
		if !InCheck(p, us) {
			legal.PushBack(m)
		}
		p.UndoMove(m, captured)
	}
	return legal
}

// LegalCaptures returns the subset of Legal whose destination is occupied
// by the opponent, used by quiescence search.
func LegalCaptures(p *position.Position) *moveslice.MoveSlice {
	pseudo := PseudoLegal(p)
	us := p.SideToMove()
	captures := moveslice.NewMoveSlice(pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.PieceAt(m.To()) == types.PieceNone {
			continue
		}
		captured := p.DoMove(m)
		if !InCheck(p, us) {
			captures.PushBack(m)
		}
		p.UndoMove(m, captured)
	}
	return captures
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full list; used to tell mate from stalemate.
func HasLegalMove(p *position.Position) bool {
	pseudo := PseudoLegal(p)
	us := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		captured := p.DoMove(m)
		ok := !InCheck(p, us)
		p.UndoMove(m, captured)
		if ok {
			return true
		}
	}
	return false
}

func genTable(ml *moveslice.MoveSlice, p *position.Position, us types.Color, own types.Bitboard, table [types.SquareLength]types.Bitboard, pt types.PieceType) {
	bb := p.PieceBB(types.PieceOf(pt, us))
	for !bb.IsEmpty() {
		var from types.Square
		from, bb = bb.PopLsb()
		targets := table[from].AndNot(own)
		for !targets.IsEmpty() {
			var to types.Square
			to, targets = targets.PopLsb()
			ml.PushBack(types.NewMove(from, to))
		}
	}
}

func genPawn(ml *moveslice.MoveSlice, p *position.Position, us types.Color, own types.Bitboard) {
	genTable(ml, p, us, own, attacks.Pawn[us], types.Pawn)
}

func genElephant(ml *moveslice.MoveSlice, p *position.Position, us types.Color, own, occ types.Bitboard) {
	bb := p.PieceBB(types.PieceOf(types.Elephant, us))
	for !bb.IsEmpty() {
		var from types.Square
		from, bb = bb.PopLsb()
		targets := attacks.Elephant[from].AndNot(own)
		for !targets.IsEmpty() {
			var to types.Square
			to, targets = targets.PopLsb()
			if !to.OwnHalf(us) {
				continue
			}
			if occ.Has(attacks.ElephantLeg(from, to)) {
				continue
			}
			ml.PushBack(types.NewMove(from, to))
		}
	}
}

func genHorse(ml *moveslice.MoveSlice, p *position.Position, us types.Color, own, occ types.Bitboard) {
	bb := p.PieceBB(types.PieceOf(types.Horse, us))
	for !bb.IsEmpty() {
		var from types.Square
		from, bb = bb.PopLsb()
		targets := attacks.Horse[from].AndNot(own)
		for !targets.IsEmpty() {
			var to types.Square
			to, targets = targets.PopLsb()
			if occ.Has(attacks.HorseLeg(from, to)) {
				continue
			}
			ml.PushBack(types.NewMove(from, to))
		}
	}
}

func genSlider(ml *moveslice.MoveSlice, p *position.Position, us types.Color, own, occ types.Bitboard, attackFn func(types.Square, types.Bitboard) types.Bitboard, pt types.PieceType) {
	bb := p.PieceBB(types.PieceOf(pt, us))
	for !bb.IsEmpty() {
		var from types.Square
		from, bb = bb.PopLsb()
		targets := attackFn(from, occ).AndNot(own)
		for !targets.IsEmpty() {
			var to types.Square
			to, targets = targets.PopLsb()
			ml.PushBack(types.NewMove(from, to))
		}
	}
}
