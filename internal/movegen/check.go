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
	"github.com/hzyun/xiangqi/internal/attacks"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/types"
)

// AttackedBy reports whether sq is attacked by any piece of color attacker,
// given the current occupancy. It works by scanning
// backwards from sq using each piece kind's own attack pattern, which is
// valid because every pattern here (including the sliders, via the
// blocker-scan ray attacks) is reciprocal.
func AttackedBy(p *position.Position, sq types.Square, attacker types.Color) bool {
	occ := p.OccupiedAll()

	// Pawn attacks are not symmetric: scan with the *defender's* own
	// pawn-direction table from sq, not the attacker's.
	defenderPawns := attacks.Pawn[attacker.Flip()][sq]
	if !defenderPawns.And(p.PieceBB(types.PieceOf(types.Pawn, attacker))).IsEmpty() {
		return true
	}

	if !attacks.King[sq].And(p.PieceBB(types.PieceOf(types.King, attacker))).IsEmpty() {
		return true
	}

	horses := attacks.Horse[sq].And(p.PieceBB(types.PieceOf(types.Horse, attacker)))
	for !horses.IsEmpty() {
		var from types.Square
		from, horses = horses.PopLsb()
		if !occ.Has(attacks.HorseLeg(from, sq)) {
			return true
		}
	}

	if sq.OwnHalf(attacker) {
		elephants := attacks.Elephant[sq].And(p.PieceBB(types.PieceOf(types.Elephant, attacker)))
		for !elephants.IsEmpty() {
			var from types.Square
			from, elephants = elephants.PopLsb()
			if !occ.Has(attacks.ElephantLeg(from, sq)) {
				return true
			}
		}
	}

	if !attacks.RookAttacks(sq, occ).And(p.PieceBB(types.PieceOf(types.Rook, attacker))).IsEmpty() {
		return true
	}
	if !attacks.CannonAttacks(sq, occ).And(p.PieceBB(types.PieceOf(types.Cannon, attacker))).IsEmpty() {
		return true
	}

	return false
}

// InCheck reports whether color c's king is attacked, including via the
// flying-general rule.
func InCheck(p *position.Position, c types.Color) bool {
	kingSq := p.KingSquare(c)
	if AttackedBy(p, kingSq, c.Flip()) {
		return true
	}
	return flyingGeneral(p, kingSq, p.KingSquare(c.Flip()))
}

// flyingGeneral reports whether the two kings face each other on an open
// file: same file, no piece between them.
func flyingGeneral(p *position.Position, a, b types.Square) bool {
	if a.File() != b.File() {
		return false
	}
	r1, r2 := a.Rank(), b.Rank()
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	occ := p.OccupiedAll()
	for r := r1 + 1; r < r2; r++ {
		if occ.Has(types.SquareOf(r, a.File())) {
			return false
		}
	}
	return true
}
