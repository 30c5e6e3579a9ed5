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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hzyun/xiangqi/internal/attacks"
	"github.com/hzyun/xiangqi/internal/config"
	"github.com/hzyun/xiangqi/internal/engine"
	"github.com/hzyun/xiangqi/internal/logging"
	"github.com/hzyun/xiangqi/internal/movegen"
	"github.com/hzyun/xiangqi/internal/position"
	"github.com/hzyun/xiangqi/internal/zobrist"

	"github.com/pkg/profile"
)

var out = message.NewPrinter(language.German)

const engineVersion = "0.1.0"

func main() {
	attacks.Init()
	zobrist.Init()

	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	bookPath := flag.String("bookpath", "", "path to opening book files")
	bookFile := flag.String("bookfile", "", "opening book file name")
	fen := flag.String("fen", position.StartFEN, "FEN of the position to search or run perft from")
	depth := flag.Int("depth", 0, "search to this fixed depth and print the best move")
	movetime := flag.Int("movetime", 0, "search for this many milliseconds and print the best move")
	perft := flag.Int("perft", 0, "run perft on -fen to this depth instead of searching")
	userMove := flag.String("move", "", "play this \"(rank,file)-(rank,file)\" move on -fen before searching")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./profiling while running")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("./profiling")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	if *bookFile != "" {
		config.Settings.Search.BookFile = *bookFile
	}
	log := logging.GetLog()

	if *perft != 0 {
		var p movegen.Perft
		for i := 1; i <= *perft; i++ {
			p.StartPerft(*fen, i)
		}
		return
	}

	pos, err := position.NewPositionFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}

	if *userMove != "" {
		m, err := pos.ParseUserMove(*userMove, movegen.Legal(pos))
		if err != nil {
			fmt.Fprintln(os.Stderr, "invalid -move:", err)
			os.Exit(1)
		}
		pos.DoMove(m)
	}

	e := engine.NewEngine()

	switch {
	case *movetime > 0:
		budget := time.Duration(*movetime) * time.Millisecond
		score, move := e.SearchByTime(pos, budget)
		out.Printf("bestmove %s score %d\n", move, score)
	case *depth > 0:
		score, move := e.SearchByDepth(pos, *depth)
		out.Printf("bestmove %s score %d\n", move, score)
	default:
		log.Info("neither -depth nor -movetime given, defaulting to depth 6")
		score, move := e.SearchByDepth(pos, 6)
		out.Printf("bestmove %s score %d\n", move, score)
	}
}

func printVersionInfo() {
	out.Printf("xiangqi engine %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
