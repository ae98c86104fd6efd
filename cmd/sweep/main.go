// Command sweep generates a random minefield and lets the inference
// engine play it out, printing each move and the final board.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/avyukov/minesolver/internal/autoplay"
	"github.com/avyukov/minesolver/internal/game"
	"github.com/avyukov/minesolver/internal/solver"
)

func main() {
	var (
		height  = flag.Int("height", 8, "board height")
		width   = flag.Int("width", 8, "board width")
		mines   = flag.Int("mines", 10, "mine count")
		seed    = flag.Uint64("seed", 0, "rng seed (0 seeds from time)")
		verbose = flag.Bool("v", false, "log the engine's deductions")
	)
	flag.Parse()

	if *verbose {
		solver.Log.SetLevel(logrus.DebugLevel)
	} else {
		solver.Log.SetLevel(logrus.WarnLevel)
	}

	var rnd *rand.Rand
	if *seed != 0 {
		rnd = rand.New(rand.NewPCG(*seed, *seed))
	} else {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	params := game.GameParams{Height: *height, Width: *width, MineCount: *mines}
	board, err := game.NewBoard(params, rnd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad parameters:", err)
		os.Exit(2)
	}
	runner := autoplay.New(board, rnd)
	status := runner.Run()

	for i, move := range runner.Moves {
		kind := "safe "
		if move.Guess {
			kind = "guess"
		}
		outcome := ""
		if move.Mined {
			outcome = "  *boom*"
		}
		fmt.Printf("%3d  %s %s%s\n", i+1, kind, move.Cell, outcome)
	}

	fmt.Println(board)
	fmt.Printf("%s in %d moves (%d guesses)\n",
		status, len(runner.Moves), runner.GuessCount())

	if status != autoplay.Won {
		os.Exit(1)
	}
}
