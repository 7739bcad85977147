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

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chessforge/engine/engine"
	"github.com/chessforge/engine/internal/config"
	"github.com/chessforge/engine/internal/logging"
	"github.com/chessforge/engine/internal/position"
	"github.com/chessforge/engine/internal/search"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level, overriding the config file\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen for perft, divide and search")
	perft := flag.Int("perft", 0, "runs perft on -fen to the given depth")
	divide := flag.Int("divide", 0, "runs divide on -fen to the given depth")
	searchDepth := flag.Int("depth", 0, "runs a fixed-depth search on -fen")
	moveTimeMs := flag.Int("movetime", 0, "runs a time-limited search on -fen, in milliseconds")
	cpuProfile := flag.Bool("profile", false, "collects a CPU profile for the run into ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		config.Settings.Log.Level = *logLvl
	}
	// The loggers got their backends at package init, before the config
	// file and -loglvl were read; rebuild them so the level takes effect.
	logging.GetPositionLog()
	logging.GetMovegenLog()
	logging.GetSearchLog()
	logging.GetTTLog()
	logging.GetEvaluatorLog()
	logging.GetEngineLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	p, err := position.PositionFromFEN(*fen)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	switch {
	case *perft > 0:
		runPerft(p, *perft)
	case *divide > 0:
		runDivide(p, *divide)
	case *searchDepth > 0:
		runSearch(p, search.Limits{Depth: *searchDepth})
	case *moveTimeMs > 0:
		runSearch(p, search.Limits{MoveTime: time.Duration(*moveTimeMs) * time.Millisecond})
	default:
		flag.Usage()
	}
}

func runPerft(p *engine.Position, depth int) {
	out.Printf("Perft depth %d, fen %q\n", depth, engine.PositionToFEN(p))
	start := time.Now()
	nodes := engine.Perft(p, depth)
	elapsed := time.Since(start)
	out.Printf("Nodes : %d\n", nodes)
	out.Printf("Time  : %s\n", elapsed)
}

func runDivide(p *engine.Position, depth int) {
	entries := engine.Divide(p, depth)
	var total uint64
	for _, e := range entries {
		out.Printf("%s: %d\n", engine.MoveToCoord(e.Move), e.Nodes)
		total += e.Nodes
	}
	out.Printf("Total: %d\n", total)
}

func runSearch(p *engine.Position, limits search.Limits) {
	e := engine.NewEngine(config.Settings.Search.TTSizeMB)
	result := e.Search(p, limits)
	out.Println(result.String())
}

func printVersionInfo() {
	out.Println("chessperft")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
