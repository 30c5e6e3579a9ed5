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

// Package assert gives the rest of the engine a single, searchable spot
// for invariant checks that must never run in a production build: the
// search's hot path (negamax, quiescence, move generation) calls it guarded
// by the DEBUG constant so the Go compiler can eliminate the whole
// statement, argument evaluation included, when DEBUG is false.
//
// Usage:
//
//	if assert.DEBUG {
//		assert.Assert(pos.PopCount(Red) > 0, "red has no pieces left")
//	}
package assert

import "fmt"

// DEBUG gates invariant checks that must hold after every make/unmake.
// Flip to true only for development builds; the search is not fast
// enough to carry these checks in normal use.
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
