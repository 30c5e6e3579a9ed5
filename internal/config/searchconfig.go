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

package config

// searchConfiguration holds every tunable of the search engine.
type searchConfiguration struct {
	// Opening book
	UseBook  bool
	BookPath string
	BookFile string

	// Quiescence search
	UseQuiescence bool

	// Move ordering
	UseHistory bool

	// Transposition table
	UseTT  bool
	TTSize int // megabytes

	// Null-move pruning
	UseNullMove          bool
	NullMoveMinDepth     int
	NullMoveMinAttackers int

	// Late move reductions
	UseLMR      bool
	LMRMinDepth int
	LMRMinIndex int

	// Iterative deepening time cutoff
	TimeCheckNodeInterval uint64

	// MaxDepth bounds the time-limited search's iteration count.
	MaxDepth int
}

func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/books"
	Settings.Search.BookFile = "book.json"

	Settings.Search.UseQuiescence = true
	Settings.Search.UseHistory = true

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UseNullMove = true
	Settings.Search.NullMoveMinDepth = 3
	Settings.Search.NullMoveMinAttackers = 2

	Settings.Search.UseLMR = true
	Settings.Search.LMRMinDepth = 3
	Settings.Search.LMRMinIndex = 4

	Settings.Search.TimeCheckNodeInterval = 2048

	Settings.Search.MaxDepth = 63
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupSearch() {
}
