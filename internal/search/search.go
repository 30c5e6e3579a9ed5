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

// Package search implements the engine's move search: iterative-deepening
// negamax with alpha-beta pruning, a transposition table, quiescence,
// null-move pruning, late move reductions and MVV-LVA/history move
// ordering. A Searcher owns the transient state of one search lifetime
// (TT, history table, node counter, clock); Run resets it at the start of
// every top-level call and searches a clone of the Position it is given,
// so the caller's own Position is never mutated.
package search

import (
	"sort"
	"time"

	"github.com/hzyun/xiangqi/internal/config"
	"github.com/hzyun/xiangqi/internal/history"
	myLogging "github.com/hzyun/xiangqi/internal/logging"
	"github.com/hzyun/xiangqi/internal/movegen"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/transpositiontable"
	"github.com/hzyun/xiangqi/internal/types"

	"github.com/op/go-logging"
)

// Searcher holds everything that must survive across the plies of a
// single iterative-deepening run but gets cleared between independent
// top-level calls.
type Searcher struct {
	log  *logging.Logger
	slog *logging.Logger

	tt   *transpositiontable.Table
	hist *history.Table

	stats Statistics

	deadline    time.Time
	hasDeadline bool
	cancelled   bool

	rootBestMove  types.Move
	rootBestValue types.Value

	// rootMoves is the previous iteration's root move list, sorted
	// descending by score, so the next iteration's rootSearch can search
	// the move that scored best last time first.
	rootMoves []types.RootMove
}

// NewSearcher creates a Searcher with a transposition table sized from
// config.Settings.Search.TTSize.
func NewSearcher() *Searcher {
	return &Searcher{
		log:  myLogging.GetLog(),
		slog: myLogging.GetSearchLog(),
		tt:   transpositiontable.NewTable(config.Settings.Search.TTSize),
		hist: history.NewTable(),
	}
}

// Result is what one Run call produces: the deepest completed iteration's
// root move and its score, from the root side-to-move's perspective.
type Result struct {
	Move  types.Move
	Value types.Value
	Stats Statistics
}

// Run performs iterative deepening on a clone of pos up to limits'
// iteration ceiling, stopping early if limits has a movetime deadline that
// elapses. The caller's pos is never mutated.
func (s *Searcher) Run(pos *position.Position, limits Limits) Result {
	s.tt.Clear()
	s.hist.Clear()
	s.stats.reset()
	s.cancelled = false
	s.rootBestMove = types.NoMove
	s.rootBestValue = types.ValueNA
	s.rootMoves = nil

	s.hasDeadline = limits.hasDeadline()
	if s.hasDeadline {
		s.deadline = s.stats.StartTime.Add(limits.Movetime)
	}

	work := pos.Clone()
	maxDepth := limits.maxIterationDepth()

	for depth := 1; depth <= maxDepth; depth++ {
		value, move := s.rootSearch(work, depth)
		if s.cancelled {
			break
		}
		s.rootBestMove, s.rootBestValue = move, value
		s.stats.BestMove, s.stats.BestValue = move, value
		s.stats.CompletedDepth = depth
		s.stats.LastIterationEnd = time.Now()
		if value.IsCheckmateValue() {
			break
		}
	}

	s.slog.Debug(s.stats.String())
	return Result{Move: s.rootBestMove, Value: s.rootBestValue, Stats: s.stats}
}

// rootSearch runs one full iteration at the given depth, returning the
// best (score, move) found - or whatever partial result existed at the
// point of cancellation, which the caller discards via s.cancelled.
func (s *Searcher) rootSearch(pos *position.Position, depth int) (types.Value, types.Move) {
	moves := movegen.Legal(pos)
	if moves.Len() == 0 {
		if movegen.InCheck(pos, pos.SideToMove()) {
			return types.MateScore(0), types.NoMove
		}
		return types.ValueDraw, types.NoMove
	}

	s.orderRootMoves(pos, moves)

	alpha, beta := -types.ValueInfinite, types.ValueInfinite
	searched := make([]types.RootMove, 0, moves.Len())

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		captured := pos.DoMove(m)
		s.stats.Nodes++
		value := -s.negamax(pos, depth-1, 1, -beta, -alpha, true)
		pos.UndoMove(m, captured)

		if s.cancelled {
			break
		}

		searched = append(searched, types.RootMove{Move: m, Value: value})
		if value > alpha {
			alpha = value
		}
	}

	if len(searched) == 0 {
		return types.ValueNA, types.NoMove
	}

	sort.SliceStable(searched, func(a, b int) bool { return searched[a].Value > searched[b].Value })
	if !s.cancelled {
		s.rootMoves = searched
	}

	best := searched[0]
	s.tt.Store(pos.Key(), best.Move, int8(depth), best.Value, transpositiontable.BoundExact)
	return best.Value, best.Move
}

// checkTime is called at every node and reads the clock once every
// config.Settings.Search.TimeCheckNodeInterval nodes; once the deadline
// has passed it flips s.cancelled, which every recursive frame observes
// and unwinds on.
func (s *Searcher) checkTime() {
	if !s.hasDeadline || s.cancelled {
		return
	}
	interval := config.Settings.Search.TimeCheckNodeInterval
	if interval == 0 {
		interval = 2048
	}
	if s.stats.Nodes&(interval-1) != 0 {
		return
	}
	if time.Now().After(s.deadline) {
		s.cancelled = true
	}
}
