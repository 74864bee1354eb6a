// Command roadrush-sim drives game sessions without a window. Each session is
// steered by an autopilot; a summary is printed at the end and the final frame
// of the first session can be saved as PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/player"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sim"
	"golang.org/x/sync/errgroup"
)

var (
	configPath  = flag.String("config", "", "YAML or INI file overriding the default settings")
	sessions    = flag.Int("sessions", 4, "number of sessions to drive concurrently")
	ticks       = flag.Int("ticks", 3600, "ticks to simulate per session")
	seed        = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	pngPath     = flag.String("png", "", "write the last frame of the first session to this PNG file")
	targetSpeed = flag.Int("target-speed", 6, "cruising speed of the autopilot")
)

// runResult is what one session reports back
type runResult struct {
	ID        string
	Crashes   int
	BestScore int
	Last      sim.FrameState
}

func main() {
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		settings = loaded
	}
	if *sessions < 1 || *ticks < 1 {
		log.Fatal("sessions and ticks must be at least 1")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := run(ctx, settings)
	if err != nil {
		log.Fatal(err)
	}
	printSummary(results)

	if *pngPath != "" {
		scene := render.NewScene(settings)
		w, h := scene.Size()
		if err := render.WritePNG(*pngPath, scene.Frame(results[0].Last), w, h); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", *pngPath)
	}
}

func run(ctx context.Context, settings config.Settings) ([]runResult, error) {
	manager := sim.NewManager(settings)
	pilot := Autopilot{
		TargetSpeed: *targetSpeed,
		Lookahead:   settings.CarHeight * 3,
		Road:        road.NewRoad(settings).Band(),
	}

	results := make([]runResult, *sessions)
	g, ctx := errgroup.WithContext(ctx)
	for i := range results {
		id := fmt.Sprintf("run-%02d", i)
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		if err := manager.Open(id, sim.WithRand(rng)); err != nil {
			return nil, err
		}
		g.Go(func() error {
			res, err := drive(ctx, manager, id, *ticks, pilot)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, id := range manager.IDs() {
		if _, err := manager.Close(id); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// drive steps one session, restarting it after every crash
func drive(ctx context.Context, m *sim.Manager, id string, n int, pilot Autopilot) (runResult, error) {
	res := runResult{ID: id}
	frame, err := m.Frame(id)
	if err != nil {
		return res, err
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%s stopped after %d ticks: %w", id, i, err)
		}

		var cmds player.CommandSet
		restart := frame.GameOver
		if !restart {
			cmds = pilot.Decide(frame)
		}

		frame, err = m.Tick(id, cmds, restart)
		if err != nil {
			return res, err
		}
		if frame.GameOver {
			res.Crashes++
		}
		res.BestScore = frame.HighScore
	}

	res.Last = frame
	return res, nil
}

func printSummary(results []runResult) {
	header := color.New(color.FgYellow, color.Bold)
	header.Printf("%-8s %10s %8s %8s\n", "SESSION", "HIGH", "CRASHES", "TICKS")

	for _, r := range results {
		crashes := color.GreenString("%8d", r.Crashes)
		if r.Crashes > 0 {
			crashes = color.RedString("%8d", r.Crashes)
		}
		fmt.Printf("%s %10d %s %8d\n", color.CyanString("%-8s", r.ID), r.BestScore, crashes, r.Last.Tick)
	}
}
