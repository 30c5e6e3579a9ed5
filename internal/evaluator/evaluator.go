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

// Package evaluator scores a Position from Red's perspective: tapered
// material plus piece-square tables, mobility for the sliding/jumping
// attackers, king safety and a handful of Xiangqi-specific pattern bonuses.
// Callers that need a side-to-move-positive (negamax) score negate the
// result for Black.
package evaluator

import (
	"github.com/hzyun/xiangqi/internal/attacks"
	"github.com/hzyun/xiangqi/internal/config"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/types"
)

// Evaluate returns the static evaluation of p from Red's perspective:
// positive favors Red, negative favors Black.
func Evaluate(p *position.Position) types.Value {
	mg, eg := materialAndPst(p)
	w := phase(p)
	score := taper(mg, eg, w)

	score += mobility(p, types.Red) - mobility(p, types.Black)
	score += kingSafety(p, types.Red) - kingSafety(p, types.Black)
	score += patterns(p, types.Red) - patterns(p, types.Black)
	score += dynamicAttacker(p, types.Red) - dynamicAttacker(p, types.Black)

	return score
}

// EvaluateRelative returns Evaluate(p) from the side-to-move's point of
// view, as negamax expects: Red-perspective score, negated for Black.
func EvaluateRelative(p *position.Position) types.Value {
	v := Evaluate(p)
	if p.SideToMove() == types.Black {
		return -v
	}
	return v
}

// materialAndPst sums material plus piece-square contributions for every
// piece on the board, Red minus Black, for both game phases.
func materialAndPst(p *position.Position) (mg, eg types.Value) {
	for pc := types.Piece(0); pc < types.PieceLength; pc++ {
		bb := p.PieceBB(pc)
		sign := types.Value(1)
		if pc.Color() == types.Black {
			sign = -1
		}
		count := types.Value(bb.PopCount())
		mg += sign * count * pc.Type().BaseValue()
		eg += sign * count * pc.Type().BaseValue()
		for !bb.IsEmpty() {
			var sq types.Square
			sq, bb = bb.PopLsb()
			mg += sign * types.PstMid(pc, sq)
			eg += sign * types.PstEnd(pc, sq)
		}
	}
	return mg, eg
}

// phase returns the tapering weight w in [0,1]: 1 at full material (pure
// midgame), shrinking towards the endgame as non-pawn material is traded
// off.
func phase(p *position.Position) float64 {
	total := 0
	for _, c := range [...]types.Color{types.Red, types.Black} {
		for _, pt := range [...]types.PieceType{types.Rook, types.Horse, types.Cannon, types.Guard, types.Elephant} {
			total += p.PieceBB(types.PieceOf(pt, c)).PopCount() * int(pt.BaseValue())
		}
	}
	opening := int(config.Settings.Eval.OpeningMaterial)
	if opening <= 0 {
		return 1
	}
	w := float64(total) / float64(opening)
	if w > 1 {
		w = 1
	}
	return w
}

func taper(mg, eg types.Value, w float64) types.Value {
	return types.Value(w*float64(mg) + (1-w)*float64(eg))
}

// mobility counts legal-destination-shaped targets (empty or capturable)
// for rook/horse/cannon and weights them per piece kind. It deliberately
// does not filter for self-check, a "pseudo-legal destination count"
// definition of mobility.
func mobility(p *position.Position, c types.Color) types.Value {
	own := p.ColorBB(c)
	occ := p.OccupiedAll()
	var total types.Value

	rooks := p.PieceBB(types.PieceOf(types.Rook, c))
	for !rooks.IsEmpty() {
		var sq types.Square
		sq, rooks = rooks.PopLsb()
		total += types.Value(attacks.RookAttacks(sq, occ).AndNot(own).PopCount()) * types.Value(config.Settings.Eval.MobilityRookBonus)
	}

	cannons := p.PieceBB(types.PieceOf(types.Cannon, c))
	for !cannons.IsEmpty() {
		var sq types.Square
		sq, cannons = cannons.PopLsb()
		total += types.Value(attacks.CannonAttacks(sq, occ).AndNot(own).PopCount()) * types.Value(config.Settings.Eval.MobilityCannonBonus)
	}

	horses := p.PieceBB(types.PieceOf(types.Horse, c))
	for !horses.IsEmpty() {
		var sq types.Square
		sq, horses = horses.PopLsb()
		targets := attacks.Horse[sq].AndNot(own)
		count := 0
		for t := targets; !t.IsEmpty(); {
			var to types.Square
			to, t = t.PopLsb()
			if !occ.Has(attacks.HorseLeg(sq, to)) {
				count++
			}
		}
		total += types.Value(count) * types.Value(config.Settings.Eval.MobilityHorseBonus)
	}

	return total
}

// kingSafety penalizes palace squares the opponent attacks.
func kingSafety(p *position.Position, c types.Color) types.Value {
	enemy := c.Flip()
	var penalty types.Value
	kingSq := p.KingSquare(c)
	palace := palaceSquares(c)
	for _, sq := range palace {
		_ = kingSq
		if attackedBy(p, sq, enemy) {
			penalty -= types.Value(config.Settings.Eval.KingSafetyPenalty)
		}
	}
	return penalty
}

func palaceSquares(c types.Color) []types.Square {
	lo, hi := types.BlackPalaceRankHi, types.BlackPalaceRankHi
	if c == types.Red {
		lo, hi = types.RedPalaceRankLo, types.Ranks-1
	} else {
		lo, hi = 0, types.BlackPalaceRankHi
	}
	var sqs []types.Square
	for r := lo; r <= hi; r++ {
		for f := types.PalaceFileLo; f <= types.PalaceFileHi; f++ {
			sqs = append(sqs, types.SquareOf(r, f))
		}
	}
	return sqs
}

// attackedBy duplicates movegen.AttackedBy's logic for just the pieces the
// evaluator cares about (rook/cannon/horse attacks into the palace). The
// evaluator does not import movegen; it depends only on position and
// attacks, so the check is inlined here.
func attackedBy(p *position.Position, sq types.Square, attacker types.Color) bool {
	occ := p.OccupiedAll()
	if !attacks.RookAttacks(sq, occ).And(p.PieceBB(types.PieceOf(types.Rook, attacker))).IsEmpty() {
		return true
	}
	if !attacks.CannonAttacks(sq, occ).And(p.PieceBB(types.PieceOf(types.Cannon, attacker))).IsEmpty() {
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
	return false
}

// patterns awards small positional bonuses: bottom cannon, palace-heart
// horse, connected horses, rook on the rib file.
func patterns(p *position.Position, c types.Color) types.Value {
	var bonus types.Value

	backRank := types.RedPalaceRankLo + 2
	if c == types.Black {
		backRank = 0
	}
	cannons := p.PieceBB(types.PieceOf(types.Cannon, c))
	for !cannons.IsEmpty() {
		var sq types.Square
		sq, cannons = cannons.PopLsb()
		if sq.Rank() == backRank {
			bonus += types.Value(config.Settings.Eval.BottomCannonBonus)
		}
	}

	heart := palaceHeart(c)
	horses := p.PieceBB(types.PieceOf(types.Horse, c))
	var horseSquares []types.Square
	for bb := horses; !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLsb()
		horseSquares = append(horseSquares, sq)
		if sq == heart {
			bonus += types.Value(config.Settings.Eval.PalaceHeartHorseBonus)
		}
	}
	occ := p.OccupiedAll()
	for i := 0; i < len(horseSquares); i++ {
		for j := i + 1; j < len(horseSquares); j++ {
			a, b := horseSquares[i], horseSquares[j]
			if guardsLeg(occ, a, b) && guardsLeg(occ, b, a) {
				bonus += types.Value(config.Settings.Eval.ConnectedHorsesBonus)
			}
		}
	}

	ribFiles := [2]int{types.PalaceFileLo - 1, types.PalaceFileHi + 1}
	rooks := p.PieceBB(types.PieceOf(types.Rook, c))
	for !rooks.IsEmpty() {
		var sq types.Square
		sq, rooks = rooks.PopLsb()
		if sq.File() == ribFiles[0] || sq.File() == ribFiles[1] {
			bonus += types.Value(config.Settings.Eval.RookOnRibFileBonus)
		}
	}

	return bonus
}

func palaceHeart(c types.Color) types.Square {
	if c == types.Red {
		return types.SquareOf(types.RedPalaceRankLo+1, 4)
	}
	return types.SquareOf(1, 4)
}

// guardsLeg reports whether `guard` is one of the leg squares of a horse
// on `knight`, i.e. whether a piece on `guard` would block at least one of
// that horse's jumps. occ is not consulted. Two horses are "connected"
// when each sits on a leg square of the other. This is a simplified
// "mutual leg guard" definition rather than full defense analysis.
func guardsLeg(occ types.Bitboard, guard, knight types.Square) bool {
	targets := attacks.Horse[knight]
	for t := targets; !t.IsEmpty(); {
		var to types.Square
		to, t = t.PopLsb()
		if attacks.HorseLeg(knight, to) == guard {
			return true
		}
	}
	return false
}

// dynamicAttacker gives each rook/horse/cannon of color c a small bonus
// for every defender (guard/elephant) the opponent is missing.
func dynamicAttacker(p *position.Position, c types.Color) types.Value {
	enemy := c.Flip()
	missing := 0
	for _, pt := range [...]types.PieceType{types.Guard, types.Elephant} {
		full := 2
		have := p.PieceBB(types.PieceOf(pt, enemy)).PopCount()
		if have < full {
			missing += full - have
		}
	}
	if missing == 0 {
		return 0
	}
	attackers := 0
	for _, pt := range [...]types.PieceType{types.Rook, types.Horse, types.Cannon} {
		attackers += p.PieceBB(types.PieceOf(pt, c)).PopCount()
	}
	return types.Value(missing * attackers * int(config.Settings.Eval.MissingDefenderBonus))
}
