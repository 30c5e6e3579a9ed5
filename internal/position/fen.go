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
	"fmt"
	"strings"

	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

var fenLetters = map[byte]types.PieceType{
	'k': types.King, 'a': types.Guard, 'b': types.Elephant, 'n': types.Horse,
	'r': types.Rook, 'c': types.Cannon, 'p': types.Pawn,
}

// setupFromFEN parses the piece-placement and side-to-move fields of a FEN
// string and ignores the remaining four (castling/en-passant/halfmove/
// fullmove have no meaning for Xiangqi).
func (p *Position) setupFromFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return fmt.Errorf("position: malformed FEN %q: need at least placement and side-to-move fields", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != types.Ranks {
		return fmt.Errorf("position: malformed FEN %q: expected %d ranks, got %d", fen, types.Ranks, len(ranks))
	}
	for r, rank := range ranks {
		f := 0
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			switch {
			case ch >= '1' && ch <= '9':
				f += int(ch - '0')
			default:
				lower := ch
				color := types.Red
				if ch >= 'a' && ch <= 'z' {
					color = types.Black
				} else if ch >= 'A' && ch <= 'Z' {
					lower = ch - 'A' + 'a'
				}
				pt, ok := fenLetters[lower]
				if !ok {
					return fmt.Errorf("position: malformed FEN %q: unrecognized character %q", fen, ch)
				}
				if f >= types.Files {
					return fmt.Errorf("position: malformed FEN %q: rank %d overflows %d files", fen, r, types.Files)
				}
				p.placePieceAt(types.PieceOf(pt, color), types.SquareOf(r, f))
				f++
			}
		}
		if f != types.Files {
			return fmt.Errorf("position: malformed FEN %q: rank %d has %d files, want %d", fen, r, f, types.Files)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = types.Red
	case "b":
		p.sideToMove = types.Black
	default:
		return fmt.Errorf("position: malformed FEN %q: side-to-move token %q not 'w' or 'b'", fen, fields[1])
	}
	if p.sideToMove == types.Black {
		p.key ^= zobrist.Side()
	}
	return nil
}

// FEN serializes the position back to the form accepted by NewPositionFEN.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 0; r < types.Ranks; r++ {
		empties := 0
		for f := 0; f < types.Files; f++ {
			pc := p.board[types.SquareOf(r, f)]
			if pc == types.PieceNone {
				empties++
				continue
			}
			if empties > 0 {
				fmt.Fprintf(&sb, "%d", empties)
				empties = 0
			}
			sb.WriteString(pc.String())
		}
		if empties > 0 {
			fmt.Fprintf(&sb, "%d", empties)
		}
		if r != types.Ranks-1 {
			sb.WriteString("/")
		}
	}
	if p.sideToMove == types.Red {
		sb.WriteString(" w - - 0 1")
	} else {
		sb.WriteString(" b - - 0 1")
	}
	return sb.String()
}
