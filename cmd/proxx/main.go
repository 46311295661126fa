package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"

	"github.com/vancomm/proxx/internal/config"
	"github.com/vancomm/proxx/internal/proxx"
)

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	var (
		size  = flag.Int("size", config.BoardSize(), "board side length")
		holes = flag.Int("holes", config.HoleCount(), "number of black holes")
		seed  = flag.Uint64("seed", 0, "board seed (0 = random)")
		cheat = flag.Bool("cheat", config.Development(), "show the revealed board during play")
	)
	flag.Parse()

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)
	proxx.Log = logger

	// The board re-checks these on construction; bad parameters must
	// never make it into the game loop.
	minSafe := proxx.SmallestBoardSize * proxx.SmallestBoardSize
	if *size <= proxx.SmallestBoardSize {
		logger.Error("board too small", slog.Int("size", *size))
		os.Exit(2)
	}
	if *holes < 0 || (*size)*(*size)-minSafe <= *holes {
		logger.Error("invalid hole count",
			slog.Int("size", *size), slog.Int("holes", *holes))
		os.Exit(2)
	}

	m := initialModel(*size, *holes, *cheat, createRand(*seed))

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		logger.Error("game crashed", slog.Any("error", err))
		os.Exit(1)
	}

	// Back on the regular screen, leave the outcome behind like the
	// original terminal game did.
	if m, ok := final.(model); ok && m.board != nil {
		switch m.board.Status() {
		case proxx.Won:
			fmt.Println("Congratulations, sailor, you WON the game")
		case proxx.Lost:
			fmt.Println("Condolences, sailor, you LOST the game")
		default:
			fmt.Println("Game abandoned")
		}
		fmt.Println()
		fmt.Println(m.board.RevealedString())
	}
}
