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

// Package attacks holds the process-wide, read-only attack tables used by
// movegen: one precomputed Bitboard of reachable squares per piece kind and
// origin square for the short-range pieces (King, Guard, Elephant, Horse,
// Pawn), plus the leg/eye blocker square for each Elephant and Horse
// destination and an ordered per-direction square list (Ray) that the
// sliding pieces (Rook, Cannon) scan against the board's occupancy at
// generation time.
package attacks

import "github.com/hzyun/xiangqi/internal/types"

// Direction indexes the four cardinal rays used by the sliding pieces.
// North decreases rank (towards Black's back rank), South increases it.
const (
	North = iota
	South
	East
	West
	directionLength
)

var (
	// King holds the (up to 4) orthogonal in-palace destinations per square.
	King [types.SquareLength]types.Bitboard
	// Guard holds the (up to 4) diagonal in-palace destinations per square.
	Guard [types.SquareLength]types.Bitboard
	// Elephant holds the (up to 4) two-point-diagonal destinations per
	// square, not yet masked to the owner's own half of the river.
	Elephant [types.SquareLength]types.Bitboard
	// Horse holds the (up to 8) knight-shaped destinations per square.
	Horse [types.SquareLength]types.Bitboard
	// Pawn holds the per-color destinations per square (forward, plus
	// sideways once the pawn has crossed the river).
	Pawn [types.ColorLength][types.SquareLength]types.Bitboard

	// Ray[dir][sq] lists the squares on that ray from sq, nearest first.
	Ray [directionLength][types.SquareLength][]types.Square

	elephantLeg [types.SquareLength]map[types.Square]types.Square
	horseLeg    [types.SquareLength]map[types.Square]types.Square

	ready bool
)

// Init builds every table. Idempotent and cheap enough to call eagerly at
// process start; movegen and the evaluator both assume it has already run.
func Init() {
	if ready {
		return
	}
	for r := 0; r < types.Ranks; r++ {
		for f := 0; f < types.Files; f++ {
			sq := types.SquareOf(r, f)
			elephantLeg[sq] = map[types.Square]types.Square{}
			horseLeg[sq] = map[types.Square]types.Square{}
			buildKingGuard(sq, r, f)
			buildElephant(sq, r, f)
			buildHorse(sq, r, f)
			buildPawn(sq, r, f)
			buildRays(sq, r, f)
		}
	}
	ready = true
}

func inAnyPalace(r, f int) bool {
	if f < types.PalaceFileLo || f > types.PalaceFileHi {
		return false
	}
	return r <= types.BlackPalaceRankHi || r >= types.RedPalaceRankLo
}

func inBounds(r, f int) bool {
	return r >= 0 && r < types.Ranks && f >= 0 && f < types.Files
}

func buildKingGuard(sq types.Square, r, f int) {
	orth := [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	for _, d := range orth {
		nr, nf := r+d[0], f+d[1]
		if !inAnyPalace(nr, nf) {
			continue
		}
		King[sq].PushSquare(types.SquareOf(nr, nf))
	}
	diag := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for _, d := range diag {
		nr, nf := r+d[0], f+d[1]
		if !inAnyPalace(nr, nf) {
			continue
		}
		Guard[sq].PushSquare(types.SquareOf(nr, nf))
	}
}

func buildElephant(sq types.Square, r, f int) {
	deltas := [4][2]int{{2, 2}, {2, -2}, {-2, 2}, {-2, -2}}
	for _, d := range deltas {
		nr, nf := r+d[0], f+d[1]
		if !inBounds(nr, nf) {
			continue
		}
		to := types.SquareOf(nr, nf)
		Elephant[sq].PushSquare(to)
		elephantLeg[sq][to] = types.SquareOf(r+d[0]/2, f+d[1]/2)
	}
}

func buildHorse(sq types.Square, r, f int) {
	deltas := [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	for _, d := range deltas {
		nr, nf := r+d[0], f+d[1]
		if !inBounds(nr, nf) {
			continue
		}
		to := types.SquareOf(nr, nf)
		Horse[sq].PushSquare(to)
		legR, legF := r, f
		if d[0]%2 == 0 {
			legR += d[0] / 2
		} else {
			legF += d[1] / 2
		}
		horseLeg[sq][to] = types.SquareOf(legR, legF)
	}
}

func buildPawn(sq types.Square, r, f int) {
	if inBounds(r-1, f) {
		Pawn[types.Red][sq].PushSquare(types.SquareOf(r-1, f))
	}
	if r <= types.RiverNorth {
		if inBounds(r, f-1) {
			Pawn[types.Red][sq].PushSquare(types.SquareOf(r, f-1))
		}
		if inBounds(r, f+1) {
			Pawn[types.Red][sq].PushSquare(types.SquareOf(r, f+1))
		}
	}
	if inBounds(r+1, f) {
		Pawn[types.Black][sq].PushSquare(types.SquareOf(r+1, f))
	}
	if r >= types.RiverSouth {
		if inBounds(r, f-1) {
			Pawn[types.Black][sq].PushSquare(types.SquareOf(r, f-1))
		}
		if inBounds(r, f+1) {
			Pawn[types.Black][sq].PushSquare(types.SquareOf(r, f+1))
		}
	}
}

func buildRays(sq types.Square, r, f int) {
	var north, south, east, west []types.Square
	for nr := r - 1; nr >= 0; nr-- {
		north = append(north, types.SquareOf(nr, f))
	}
	for nr := r + 1; nr < types.Ranks; nr++ {
		south = append(south, types.SquareOf(nr, f))
	}
	for nf := f + 1; nf < types.Files; nf++ {
		east = append(east, types.SquareOf(r, nf))
	}
	for nf := f - 1; nf >= 0; nf-- {
		west = append(west, types.SquareOf(r, nf))
	}
	Ray[North][sq] = north
	Ray[South][sq] = south
	Ray[East][sq] = east
	Ray[West][sq] = west
}

// ElephantLeg returns the eye square that must be empty for the Elephant
// move from to to be legal.
func ElephantLeg(from, to types.Square) types.Square {
	return elephantLeg[from][to]
}

// HorseLeg returns the leg square that must be empty for the Horse move
// from to to be legal.
func HorseLeg(from, to types.Square) types.Square {
	return horseLeg[from][to]
}
