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
	"strconv"
	"strings"

	"github.com/hzyun/xiangqi/internal/moveslice"
	"github.com/hzyun/xiangqi/internal/types"
)

// ParseUserMove parses a "(rank,file)-(rank,file)" coordinate pair, the
// format a human types at a text prompt in lieu of a board click, and
// resolves it against legal (the caller's current legal move list,
// typically movegen.Legal(p)). It returns an error for malformed input,
// out-of-range coordinates, or a coordinate pair that is not one of
// legal's moves - a typo or an illegal move are reported the same way,
// since neither is playable.
func (p *Position) ParseUserMove(s string, legal *moveslice.MoveSlice) (types.Move, error) {
	from, to, err := parseCoordPair(s)
	if err != nil {
		return types.NoMove, err
	}
	for i := 0; i < legal.Len(); i++ {
		if m := legal.At(i); m.From() == from && m.To() == to {
			return m, nil
		}
	}
	return types.NoMove, fmt.Errorf("position: %q is not a legal move", s)
}

func parseCoordPair(s string) (from, to types.Square, err error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return types.SquareNone, types.SquareNone, fmt.Errorf("position: malformed move %q: expected \"(rank,file)-(rank,file)\"", s)
	}
	from, err = parseCoord(parts[0])
	if err != nil {
		return types.SquareNone, types.SquareNone, err
	}
	to, err = parseCoord(parts[1])
	if err != nil {
		return types.SquareNone, types.SquareNone, err
	}
	return from, to, nil
}

func parseCoord(s string) (types.Square, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	fields := strings.SplitN(s, ",", 2)
	if len(fields) != 2 {
		return types.SquareNone, fmt.Errorf("position: malformed coordinate %q: expected \"(rank,file)\"", s)
	}
	rank, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return types.SquareNone, fmt.Errorf("position: malformed rank in %q: %w", s, err)
	}
	file, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return types.SquareNone, fmt.Errorf("position: malformed file in %q: %w", s, err)
	}
	if rank < 0 || rank >= types.Ranks || file < 0 || file >= types.Files {
		return types.SquareNone, fmt.Errorf("position: coordinate %q out of range", s)
	}
	return types.SquareOf(rank, file), nil
}
