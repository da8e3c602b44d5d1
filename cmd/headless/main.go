// Command headless runs a game variant without a window, driven by the
// built-in bot. It logs every tick event and exits when the run ends.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/tileworld/assets"
	"github.com/automoto/tileworld/core"
)

func main() {
	game := flag.String("game", "adventure", "Game variant: adventure, arena or maze")
	levelsDir := flag.String("levels", "", "Level directory on disk (empty = embedded levels)")
	tuning := flag.String("tuning", "", "YAML file overriding simulation params")
	tickRate := flag.Int("tickrate", 60, "Loop rate (ticks per second)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = unseeded)")
	duration := flag.Duration("duration", 0, "Stop after this long (0 = run until the game ends)")
	skill := flag.String("skill", "normal", "Bot skill: easy, normal or hard")
	flag.Parse()

	rules, err := core.RulesByName(*game)
	if err != nil {
		log.Fatalf("Unknown game: %v", err)
	}
	params, err := loadParams(*tuning)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	loader := assets.NewLevelLoader(*game)
	if *levelsDir != "" {
		loader = &assets.LevelLoader{FS: os.DirFS(*levelsDir), Dir: "."}
	}
	levels, _, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	var rng core.Rand
	if *seed != 0 {
		rng = core.NewSeededRand(*seed)
	}
	sim, err := core.NewGame(levels, params, rules, rng)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	bot := core.NewBot(sim, botSkill(*skill), rng)
	loop := core.NewGameLoop(sim, *tickRate, bot.Input, func(events core.Events) {
		for _, e := range events {
			log.Printf("tick event: %v", e)
		}
	})

	ctx := context.Background()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Starting %s on %d level(s) (tick rate: %d/s)", rules.Name, len(levels), *tickRate)
	start := time.Now()
	loop.Run(ctx)

	log.Printf("Run over after %s and %d ticks: score %d, health %d, rank %d",
		time.Since(start).Round(time.Millisecond), loop.Ticks(), sim.Score, sim.Health, sim.Rank)
	if rules.Stopwatch && sim.World.GameEnd {
		log.Printf("Stopwatch: %s", core.FormatStopwatch(sim.ElapsedDuration()))
	}
}

func loadParams(path string) (core.Params, error) {
	if path == "" {
		return core.DefaultParams(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return core.Params{}, err
	}
	defer f.Close()
	return core.LoadParams(f)
}

func botSkill(name string) core.BotSkill {
	switch name {
	case "easy":
		return core.BotEasy
	case "hard":
		return core.BotHard
	}
	return core.BotNormal
}
