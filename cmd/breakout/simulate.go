package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	metrics "github.com/armon/go-metrics"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

var (
	flagTicks   int
	flagVerbose bool
	flagWidth   int
	flagHeight  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run breakout without a terminal. The autopilot launches the ball and
follows it with the paddle. The run is deterministic for a given seed,
screen size and config, so the final hash can be compared between builds.

Examples:
  breakout simulate
  breakout simulate --ticks 10000 --seed 7 --endless
  breakout simulate --verbose`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to run")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log physics events at debug level")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height")
	simulateCmd.Flags().BoolVar(&flagEndless, "endless", false, "Simulate endless mode")
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks    int
	Snapshot breakout.Snapshot
	Counters map[string]float64 // Summed counters by metric name
}

// simulate runs a game with the autopilot until it ends or maxTicks pass.
func simulate(rt core.RuntimeConfig, maxTicks int, endless bool, logger *log.Logger, opts ...breakout.Option) simResult {
	sink := metrics.NewInmemSink(time.Hour, time.Hour)
	opts = append(opts, breakout.WithLogger(logger), breakout.WithMetrics(physics.NewMetrics(sink)))

	game := breakout.New(opts...)
	if endless {
		game = breakout.NewEndless(opts...)
	}
	game.Reset(rt)

	ticks := 0
	for ticks < maxTicks {
		ticks++
		if game.Step(breakout.Autopilot(game)).State.GameOver {
			break
		}
	}

	counters := make(map[string]float64)
	for _, interval := range sink.Data() {
		for name, c := range interval.Counters {
			counters[name] += c.Sum
		}
	}

	return simResult{Ticks: ticks, Snapshot: game.Snapshot(), Counters: counters}
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	if flagTicks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", flagTicks)
	}

	logger := log.New(io.Discard)
	if flagVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.DebugLevel,
			Prefix: "simulate",
		})
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	rt := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}

	res := simulate(rt, flagTicks, flagEndless, logger)
	printSimResult(cmd.OutOrStdout(), res)
	return nil
}

func printSimResult(w io.Writer, res simResult) {
	p := message.NewPrinter(language.English)
	snap := res.Snapshot

	p.Fprintf(w, "ticks:   %d\n", res.Ticks)
	p.Fprintf(w, "state:   %s\n", snap.State)
	p.Fprintf(w, "score:   %d\n", snap.Score)
	p.Fprintf(w, "lives:   %d\n", snap.Lives)
	p.Fprintf(w, "level:   %d (cycle %d)\n", snap.LevelIndex+1, snap.EndlessCycle)
	p.Fprintf(w, "bricks:  %d left\n", snap.BricksRemaining)
	p.Fprintf(w, "hash:    %016x\n", snap.Hash())

	if len(res.Counters) == 0 {
		return
	}
	names := make([]string, 0, len(res.Counters))
	for name := range res.Counters {
		names = append(names, name)
	}
	slices.Sort(names)

	p.Fprintln(w)
	for _, name := range names {
		p.Fprintf(w, "%-40s %12.0f\n", name, res.Counters[name])
	}
}
