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

package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/util"
)

var out = message.NewPrinter(language.German)

// Statistics are extra, non-essential data about the last Run call kept
// around for diagnostic logging (nodes visited, NPS, best move found,
// iterations completed).
type Statistics struct {
	Nodes            uint64
	NullMoveCutoffs  uint64
	TtHits           uint64
	LmrReductions    uint64
	LmrReSearches    uint64
	BestMove         types.Move
	BestValue        types.Value
	CompletedDepth   int
	StartTime        time.Time
	LastIterationEnd time.Time
}

func (s *Statistics) reset() {
	*s = Statistics{StartTime: time.Now()}
}

func (s *Statistics) String() string {
	elapsed := time.Since(s.StartTime)
	return out.Sprintf(
		"depth=%d nodes=%d nps=%d move=%s value=%d ttHits=%d nullCutoffs=%d lmr=%d/%d",
		s.CompletedDepth, s.Nodes, util.Nps(s.Nodes, elapsed), s.BestMove.String(), s.BestValue,
		s.TtHits, s.NullMoveCutoffs, s.LmrReductions, s.LmrReSearches)
}
