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

	"github.com/hzyun/xiangqi/internal/config"
)

// Limits controls how deep/how long a single Run call is allowed to
// search. Exactly one of Depth/Movetime is meaningful at
// a time; the other is zero.
type Limits struct {
	// Depth bounds search_by_depth: iterate 1..Depth and return the
	// deepest completed iteration. Zero means "use Movetime instead".
	Depth int

	// Movetime bounds search_by_time: iterate until the wall clock
	// expires, returning the last fully completed iteration. Zero means
	// "use Depth instead".
	Movetime time.Duration
}

// DepthLimits returns a Limits that iterates exactly to depth.
func DepthLimits(depth int) Limits {
	return Limits{Depth: depth}
}

// TimeLimits returns a Limits that iterates until budget elapses.
func TimeLimits(budget time.Duration) Limits {
	return Limits{Movetime: budget}
}

// maxIterationDepth returns the deepest iteration Run should attempt,
// resolving Limits.Depth against the configured ceiling for time-limited
// searches.
func (l Limits) maxIterationDepth() int {
	if l.Depth > 0 {
		return l.Depth
	}
	if config.Settings.Search.MaxDepth > 0 {
		return config.Settings.Search.MaxDepth
	}
	return 63
}

func (l Limits) hasDeadline() bool {
	return l.Movetime > 0
}
