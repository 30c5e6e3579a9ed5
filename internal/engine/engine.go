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

// Package engine exposes the single Controller the outside world talks to:
// book lookup first, falling through to the searcher's iterative
// deepening.
package engine

import (
	"time"

	"github.com/hzyun/xiangqi/internal/config"
	myLogging "github.com/hzyun/xiangqi/internal/logging"
	"github.com/hzyun/xiangqi/internal/movegen"
	"github.com/hzyun/xiangqi/internal/openingbook"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/search"
	"github.com/hzyun/xiangqi/internal/types"

	"github.com/op/go-logging"
)

// Engine is the Controller the outside world talks to. One Engine owns
// one book and one Searcher; both are safe to reuse across many
// successive calls on different positions.
type Engine struct {
	log *logging.Logger

	book     *openingbook.Book
	searcher *search.Searcher
}

// NewEngine builds an Engine and, if config.Settings.Search.UseBook is
// set, loads the opening book from BookPath/BookFile. A missing or
// malformed book is logged once and the engine proceeds bookless.
func NewEngine() *Engine {
	e := &Engine{
		log:      myLogging.GetLog(),
		book:     openingbook.NewBook(),
		searcher: search.NewSearcher(),
	}
	if config.Settings.Search.UseBook {
		// Load logs its own failure; the engine then simply runs bookless.
		_ = e.book.Load(config.Settings.Search.BookPath, config.Settings.Search.BookFile)
	}
	return e
}

// SearchByDepth iterates exactly to depth and returns the deepest
// completed iteration's (score, move), or the book's pick if the
// position is known.
func (e *Engine) SearchByDepth(pos *position.Position, depth int) (types.Value, types.Move) {
	if move, ok := e.probeBook(pos); ok {
		// A book move was never evaluated to pick it, so it carries no
		// real score; report a neutral value rather than fabricate one.
		return types.ValueDraw, move
	}
	res := e.searcher.Run(pos, search.DepthLimits(depth))
	return res.Value, res.Move
}

// SearchByTime iterates under a wall-clock budget and returns the last
// completed iteration's (score, move), or the book's pick if the position
// is known.
func (e *Engine) SearchByTime(pos *position.Position, budget time.Duration) (types.Value, types.Move) {
	if move, ok := e.probeBook(pos); ok {
		// A book move was never evaluated to pick it, so it carries no
		// real score; report a neutral value rather than fabricate one.
		return types.ValueDraw, move
	}
	res := e.searcher.Run(pos, search.TimeLimits(budget))
	return res.Value, res.Move
}

// probeBook checks the opening book for pos, intersected with its actual
// legal moves.
func (e *Engine) probeBook(pos *position.Position) (types.Move, bool) {
	if !config.Settings.Search.UseBook {
		return types.NoMove, false
	}
	legal := movegen.Legal(pos)
	return e.book.Probe(pos.Key(), legal)
}
