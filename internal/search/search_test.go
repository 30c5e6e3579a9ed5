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
	"testing"
	"time"

	"github.com/hzyun/xiangqi/internal/config"
	"github.com/hzyun/xiangqi/internal/movegen"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	m.Run()
}

func TestRunIterativeDeepeningIsMonotonicInDepth(t *testing.T) {
	s := NewSearcher()
	pos := position.NewPosition()
	var last int
	for depth := 1; depth <= 4; depth++ {
		res := s.Run(pos, DepthLimits(depth))
		if res.Stats.CompletedDepth < last {
			t.Fatalf("completed depth went backwards: %d after %d", res.Stats.CompletedDepth, last)
		}
		last = res.Stats.CompletedDepth
		if res.Stats.CompletedDepth != depth {
			t.Fatalf("expected iterative deepening to complete depth %d, got %d", depth, res.Stats.CompletedDepth)
		}
	}
}

func TestRunNeverMutatesCallersPosition(t *testing.T) {
	s := NewSearcher()
	pos := position.NewPosition()
	before := pos.Key()
	s.Run(pos, DepthLimits(3))
	if pos.Key() != before {
		t.Fatal("Run must search a clone and leave the caller's position untouched")
	}
}

func TestRunReturnsALegalMoveAtEveryDepth(t *testing.T) {
	s := NewSearcher()
	pos := position.NewPosition()
	for depth := 1; depth <= 3; depth++ {
		res := s.Run(pos, DepthLimits(depth))
		legal := movegen.Legal(pos)
		found := false
		for i := 0; i < legal.Len(); i++ {
			if legal.At(i) == res.Move {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("depth %d: move %s is not legal", depth, res.Move)
		}
	}
}

func TestRunReturnsADefinedValueFromOpening(t *testing.T) {
	s := NewSearcher()
	pos := position.NewPosition()
	res := s.Run(pos, DepthLimits(1))
	if res.Value == types.ValueNA {
		t.Fatal("expected a defined value from the opening position")
	}
}

func TestRunOnStalematedSideReturnsDraw(t *testing.T) {
	// Black to move has no legal move and is not in check: this engine
	// scores such a stalemate as a draw rather than a loss.
	fen := "4k4/9/2H6/9/9/3R1R3/9/9/9/8K b - - 0 1"
	pos, err := position.NewPositionFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	if movegen.Legal(pos).Len() != 0 {
		t.Skip("position no longer stalemates black; fixture needs revisiting")
	}
	s := NewSearcher()
	res := s.Run(pos, DepthLimits(1))
	if res.Value != types.ValueDraw {
		t.Fatalf("expected ValueDraw for a stalemated side, got %d", res.Value)
	}
}

func TestTimeLimitsNeverExceedsDeadlineByMuch(t *testing.T) {
	s := NewSearcher()
	pos := position.NewPosition()
	budget := 20 * time.Millisecond
	start := time.Now()
	s.Run(pos, TimeLimits(budget))
	elapsed := time.Since(start)
	if elapsed > budget+500*time.Millisecond {
		t.Fatalf("search overran its time budget: %s for a %s budget", elapsed, budget)
	}
}
