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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts the nodes, captures, checks and checkmates reached by
// exhaustively playing every legal move to a fixed depth. It is a move
// generator correctness tool, not part of the engine's playing strength.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop interrupts a perft run started in another goroutine.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs StartPerft for every depth from startDepth to endDepth.
func (perft *Perft) StartPerftMulti(fen string, startDepth, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs a single perft search from fen to the given depth.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounter()

	pos, err := position.NewPositionFEN(fen)
	if err != nil {
		out.Printf("Perft: invalid FEN %q: %v\n", fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, pos)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}
	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) miniMax(depth int, p *position.Position) uint64 {
	totalNodes := uint64(0)
	us := p.SideToMove()
	moves := Legal(p)
	for i := 0; i < moves.Len(); i++ {
		if perft.stopFlag {
			return 0
		}
		m := moves.At(i)
		if depth > 1 {
			captured := p.DoMove(m)
			totalNodes += perft.miniMax(depth-1, p)
			p.UndoMove(m, captured)
			continue
		}
		capture := p.PieceAt(m.To()) != types.PieceNone
		captured := p.DoMove(m)
		totalNodes++
		if capture {
			perft.CaptureCounter++
		}
		if InCheck(p, us.Flip()) {
			perft.CheckCounter++
			if !HasLegalMove(p) {
				perft.CheckMateCounter++
			}
		}
		p.UndoMove(m, captured)
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
}
