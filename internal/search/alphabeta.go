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

package search

import (
	"sort"

	"github.com/hzyun/xiangqi/internal/config"
	"github.com/hzyun/xiangqi/internal/evaluator"
	"github.com/hzyun/xiangqi/internal/movegen"
	"github.com/hzyun/xiangqi/internal/moveslice"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/transpositiontable"
	"github.com/hzyun/xiangqi/internal/types"
)

// negamax performs a repetition check, TT probe, leaf quiescence
// hand-off, null-move pruning, move generation/ordering,
// late-move reductions and the TT store on the way back out.
//
// Every exit path unmakes whatever move this frame made before returning,
// including the cancellation path, so a mid-search time-out never leaves
// the shared Position corrupted.
func (s *Searcher) negamax(pos *position.Position, depth, ply int, alpha, beta types.Value, allowNull bool) types.Value {
	s.stats.Nodes++
	s.checkTime()
	if s.cancelled {
		return 0
	}

	if pos.RepetitionCount() > 1 {
		return types.ValueDraw
	}

	origAlpha := alpha
	key := pos.Key()
	var ttMove types.Move
	if config.Settings.Search.UseTT {
		if e := s.tt.Probe(key); e != nil {
			s.stats.TtHits++
			ttMove = e.Move()
			if int(e.Depth()) >= depth {
				switch e.Bound() {
				case transpositiontable.BoundExact:
					return e.Value()
				case transpositiontable.BoundLower:
					if e.Value() > alpha {
						alpha = e.Value()
					}
				case transpositiontable.BoundUpper:
					if e.Value() < beta {
						beta = e.Value()
					}
				}
				if alpha >= beta {
					return e.Value()
				}
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta)
	}

	inCheck := movegen.InCheck(pos, pos.SideToMove())

	if config.Settings.Search.UseNullMove && allowNull && !inCheck && depth >= config.Settings.Search.NullMoveMinDepth &&
		attackerCount(pos) > config.Settings.Search.NullMoveMinAttackers-1 {
		r := nullMoveReduction(depth)
		pos.DoNullMove()
		value := -s.negamax(pos, depth-1-r, ply+1, -beta, -beta+1, false)
		pos.UndoNullMove()
		if s.cancelled {
			return 0
		}
		if value >= beta {
			s.stats.NullMoveCutoffs++
			s.tt.Store(key, types.NoMove, int8(depth), beta, transpositiontable.BoundLower)
			return beta
		}
	}

	moves := movegen.Legal(pos)
	if moves.Len() == 0 {
		if inCheck {
			return types.MateScore(ply)
		}
		return types.ValueDraw
	}

	s.orderMovesWithTT(pos, moves, ttMove)

	best := -types.ValueInfinite
	bestMove := types.NoMove

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		isQuiet := pos.PieceAt(m.To()) == types.PieceNone

		reduction := 0
		if config.Settings.Search.UseLMR && depth >= config.Settings.Search.LMRMinDepth &&
			i > config.Settings.Search.LMRMinIndex && isQuiet && !inCheck {
			reduction = 1
			s.stats.LmrReductions++
		}

		captured := pos.DoMove(m)
		value := -s.negamax(pos, depth-1-reduction, ply+1, -beta, -alpha, true)
		if reduction > 0 && value > alpha {
			s.stats.LmrReSearches++
			value = -s.negamax(pos, depth-1, ply+1, -beta, -alpha, true)
		}
		pos.UndoMove(m, captured)

		if s.cancelled {
			return 0
		}

		if value > best {
			best = value
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if isQuiet {
				s.hist.Add(pos.PieceAt(m.From()).Type(), m.To(), depth)
			}
			break
		}
	}

	bound := transpositiontable.BoundExact
	if best <= origAlpha {
		bound = transpositiontable.BoundUpper
	} else if best >= beta {
		bound = transpositiontable.BoundLower
	}
	if config.Settings.Search.UseTT {
		s.tt.Store(key, bestMove, int8(depth), best, bound)
	}
	return best
}

// quiescence resolves in-flight captures past the nominal horizon so the
// static evaluator is never asked to judge a position with a hanging
// piece.
func (s *Searcher) quiescence(pos *position.Position, alpha, beta types.Value) types.Value {
	s.stats.Nodes++
	s.checkTime()
	if s.cancelled {
		return 0
	}

	standPat := evaluator.EvaluateRelative(pos)
	if !config.Settings.Search.UseQuiescence {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := movegen.LegalCaptures(pos)
	s.orderCaptures(pos, captures)

	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		captured := pos.DoMove(m)
		value := -s.quiescence(pos, -beta, -alpha)
		pos.UndoMove(m, captured)

		if s.cancelled {
			return 0
		}
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// attackerCount returns the number of rook+horse+cannon pieces the side
// to move has, used by null-move pruning's zugzwang guard (it refuses
// to try a null move unless the side to move has at least two
// non-pawn attacking pieces).
func attackerCount(pos *position.Position) int {
	us := pos.SideToMove()
	n := 0
	for _, pt := range [...]types.PieceType{types.Rook, types.Horse, types.Cannon} {
		n += pos.PieceBB(types.PieceOf(pt, us)).PopCount()
	}
	return n
}

// orderMoves scores and sorts the root move list: MVV-LVA for captures,
// then history for quiet moves.
func (s *Searcher) orderMoves(pos *position.Position, moves *moveslice.MoveSlice) {
	s.orderMovesWithTT(pos, moves, types.NoMove)
}

// orderRootMoves orders the root move list for one rootSearch iteration.
// On the first iteration there is no prior data, so it falls back to
// orderMoves. On later iterations it instead replays s.rootMoves, the
// descending-by-score order the previous iteration finished with, so the
// move that scored best last time is searched - and gets the tightest
// alpha-beta window - first.
func (s *Searcher) orderRootMoves(pos *position.Position, moves *moveslice.MoveSlice) {
	if len(s.rootMoves) == 0 {
		s.orderMoves(pos, moves)
		return
	}

	ordered := make([]types.Move, 0, moves.Len())
	placed := make(map[types.Move]bool, moves.Len())
	for _, rm := range s.rootMoves {
		for i := 0; i < moves.Len(); i++ {
			if m := moves.At(i); m == rm.Move && !placed[m] {
				ordered = append(ordered, m)
				placed[m] = true
				break
			}
		}
	}
	for i := 0; i < moves.Len(); i++ {
		if m := moves.At(i); !placed[m] {
			ordered = append(ordered, m)
		}
	}
	for i, m := range ordered {
		(*moves)[i] = m
	}
}

// orderMovesWithTT sorts moves descending by: the TT's best move first,
// then MVV-LVA for captures, then history-heuristic credit for quiet
// moves.
func (s *Searcher) orderMovesWithTT(pos *position.Position, moves *moveslice.MoveSlice, ttMove types.Move) {
	scores := make([]int64, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		switch {
		case ttMove.IsValid() && m == ttMove:
			scores[i] = captureBonus * 10
		case pos.PieceAt(m.To()) != types.PieceNone:
			victim := pos.PieceAt(m.To()).Type()
			attacker := pos.PieceAt(m.From()).Type()
			scores[i] = int64(mvvLva(victim, attacker))
		default:
			scores[i] = s.hist.Value(pos.PieceAt(m.From()).Type(), m.To())
		}
	}
	sortMovesByScore(moves, scores)
}

// orderCaptures sorts a capture-only list by MVV-LVA.
func (s *Searcher) orderCaptures(pos *position.Position, captures *moveslice.MoveSlice) {
	scores := make([]int64, captures.Len())
	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		victim := pos.PieceAt(m.To()).Type()
		attacker := pos.PieceAt(m.From()).Type()
		scores[i] = int64(mvvLva(victim, attacker))
	}
	sortMovesByScore(captures, scores)
}

func sortMovesByScore(moves *moveslice.MoveSlice, scores []int64) {
	idx := make([]int, moves.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	ordered := make([]types.Move, moves.Len())
	for i, j := range idx {
		ordered[i] = moves.At(j)
	}
	for i := 0; i < moves.Len(); i++ {
		(*moves)[i] = ordered[i]
	}
}
