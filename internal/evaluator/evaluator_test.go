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

package evaluator

import (
	"testing"

	"github.com/hzyun/xiangqi/internal/attacks"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/types"
	"github.com/hzyun/xiangqi/internal/zobrist"
)

func init() {
	attacks.Init()
	zobrist.Init()
}

func TestStartPositionIsRoughlyBalanced(t *testing.T) {
	p := position.NewPosition()
	v := Evaluate(p)
	if v < -50 || v > 50 {
		t.Fatalf("expected the start position near-balanced, got %d", v)
	}
}

func TestEvaluateRelativeNegatesForBlack(t *testing.T) {
	p, err := position.NewPositionFEN("rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	absolute := Evaluate(p)
	relative := EvaluateRelative(p)
	if relative != -absolute {
		t.Fatalf("expected relative score to negate Red-perspective score for Black to move: %d vs %d", relative, absolute)
	}
}

func TestMissingRookSwingsMaterial(t *testing.T) {
	full := position.NewPosition()
	// Remove Black's h-file rook (square (9,8) in Black's own numbering is
	// rank 0 file 8 on the shared board).
	noRook, err := position.NewPositionFEN("rnbakabn1/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if Evaluate(noRook) <= Evaluate(full) {
		t.Fatalf("expected removing a Black rook to raise Red's score: with=%d without=%d", Evaluate(full), Evaluate(noRook))
	}
}

func TestDynamicAttackerBonusRewardsMissingDefenders(t *testing.T) {
	p, err := position.NewPositionFEN("rn1akabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if dynamicAttacker(p, types.Red) <= 0 {
		t.Fatal("expected a positive dynamic-attacker bonus when Black is missing an elephant")
	}
}
