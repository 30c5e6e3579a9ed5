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

package types

// PstMid and PstEnd give the piece-square contribution for a piece on a
// square in the midgame and endgame respectively. Tables are authored
// from the mover's own viewpoint, rank 0 being that color's
// back rank; PstMid/PstEnd convert a board Square into that viewpoint
// before the lookup: for Red, `[9-rank][8-file]`, for Black `[rank][file]`
// directly.
func PstMid(p Piece, sq Square) Value {
	return pstMid[p.Type()][pstIndex(p.Color(), sq)]
}

// PstEnd is the endgame counterpart of PstMid.
func PstEnd(p Piece, sq Square) Value {
	return pstEnd[p.Type()][pstIndex(p.Color(), sq)]
}

func pstIndex(c Color, sq Square) Square {
	if c == Red {
		return SquareOf(Ranks-1-sq.Rank(), Files-1-sq.File())
	}
	return sq
}

// @formatter:off
var (
	kingPst = [SquareLength]Value{
		0, 0, 0, 8, 8, 8, 0, 0, 0,
		0, 0, 0, 8, 8, 8, 0, 0, 0,
		0, 0, 0, 6, 6, 6, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 6, 6, 6, 0, 0, 0,
		0, 0, 0, 8, 8, 8, 0, 0, 0,
		0, 0, 0, 8, 8, 8, 0, 0, 0,
	}

	guardPst = [SquareLength]Value{
		0, 0, 0, 20, 0, 20, 0, 0, 0,
		0, 0, 0, 0, 23, 0, 0, 0, 0,
		0, 0, 0, 20, 0, 20, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 20, 0, 20, 0, 0, 0,
		0, 0, 0, 0, 23, 0, 0, 0, 0,
		0, 0, 0, 20, 0, 20, 0, 0, 0,
	}

	elephantPst = [SquareLength]Value{
		0, 0, 20, 0, 0, 0, 20, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 23, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 20, 0, 0, 0, 20, 0, 0,
		0, 0, 20, 0, 0, 0, 20, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 23, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 20, 0, 0, 0, 20, 0, 0,
	}

	horsePst = [SquareLength]Value{
		90, 90, 90, 96, 90, 96, 90, 90, 90,
		90, 96, 103, 97, 94, 97, 103, 96, 90,
		92, 98, 99, 103, 99, 103, 99, 98, 92,
		93, 108, 100, 107, 100, 107, 100, 108, 93,
		90, 100, 99, 103, 104, 103, 99, 100, 90,
		90, 98, 101, 102, 103, 102, 101, 98, 90,
		92, 94, 98, 95, 98, 95, 98, 94, 92,
		93, 92, 94, 95, 92, 95, 94, 92, 93,
		85, 90, 92, 93, 78, 93, 92, 90, 85,
		88, 85, 90, 88, 90, 88, 90, 85, 88,
	}

	rookPst = [SquareLength]Value{
		206, 208, 207, 213, 214, 213, 207, 208, 206,
		206, 212, 209, 216, 233, 216, 209, 212, 206,
		206, 208, 207, 214, 216, 214, 207, 208, 206,
		206, 213, 213, 216, 216, 216, 213, 213, 206,
		208, 211, 211, 214, 215, 214, 211, 211, 208,
		208, 212, 212, 214, 215, 214, 212, 212, 208,
		204, 209, 204, 212, 214, 212, 204, 209, 204,
		198, 208, 204, 212, 212, 212, 204, 208, 198,
		200, 208, 206, 212, 200, 212, 206, 208, 200,
		194, 206, 204, 212, 200, 212, 204, 206, 194,
	}

	cannonPst = [SquareLength]Value{
		100, 100, 96, 91, 90, 91, 96, 100, 100,
		98, 98, 96, 92, 89, 92, 96, 98, 98,
		97, 97, 96, 91, 92, 91, 96, 97, 97,
		96, 99, 99, 98, 100, 98, 99, 99, 96,
		96, 96, 96, 96, 100, 96, 96, 96, 96,
		95, 96, 99, 96, 100, 96, 99, 96, 95,
		96, 96, 96, 96, 96, 96, 96, 96, 96,
		97, 96, 100, 99, 101, 99, 100, 96, 97,
		96, 97, 98, 98, 98, 98, 98, 97, 96,
		96, 96, 97, 99, 99, 99, 97, 96, 96,
	}

	pawnPstMid = [SquareLength]Value{
		9, 9, 9, 11, 13, 11, 9, 9, 9,
		19, 24, 34, 42, 44, 42, 34, 24, 19,
		19, 24, 32, 37, 37, 37, 32, 24, 19,
		19, 23, 27, 29, 30, 29, 27, 23, 19,
		14, 18, 20, 27, 29, 27, 20, 18, 14,
		7, 0, 13, 0, 16, 0, 13, 0, 7,
		7, 0, 7, 0, 15, 0, 7, 0, 7,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	pawnPstEnd = [SquareLength]Value{
		20, 20, 20, 25, 30, 25, 20, 20, 20,
		40, 50, 60, 70, 75, 70, 60, 50, 40,
		40, 50, 60, 65, 70, 65, 60, 50, 40,
		40, 50, 55, 60, 60, 60, 55, 50, 40,
		30, 40, 45, 50, 50, 50, 45, 40, 30,
		15, 20, 25, 30, 30, 30, 25, 20, 15,
		10, 15, 20, 20, 20, 20, 20, 15, 10,
		5, 5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// @formatter:on

// pstMid/pstEnd are indexed by PieceType; every type except Pawn reuses the
// same table for both game phases, matching the source's own choice to
// taper only the pawn's positional value.
var (
	pstMid = [PtLength][SquareLength]Value{
		King:     kingPst,
		Guard:    guardPst,
		Elephant: elephantPst,
		Horse:    horsePst,
		Rook:     rookPst,
		Cannon:   cannonPst,
		Pawn:     pawnPstMid,
	}

	pstEnd = [PtLength][SquareLength]Value{
		King:     kingPst,
		Guard:    guardPst,
		Elephant: elephantPst,
		Horse:    horsePst,
		Rook:     rookPst,
		Cannon:   cannonPst,
		Pawn:     pawnPstEnd,
	}
)
