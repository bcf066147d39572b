// Command longwalk generates a day-by-day novel of one man's walk
// between two real places, one reverse-geocoded footstep at a time.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/savetz/longwalk/internal/geocode"
	"github.com/savetz/longwalk/internal/journey"
	"github.com/savetz/longwalk/internal/llm"
	"github.com/savetz/longwalk/internal/narrative"
	"github.com/savetz/longwalk/internal/persistence"
	"github.com/savetz/longwalk/internal/terrain"
)

const userAgent = "longwalk/1.0 (github.com/savetz/longwalk)"

func main() {
	cfg := journey.DefaultConfig()

	flag.StringVar(&cfg.StartPlace, "start", cfg.StartPlace, "start place name")
	flag.StringVar(&cfg.EndPlace, "end", cfg.EndPlace, "destination place name")
	flag.Float64Var(&cfg.DailyMin, "min-miles", cfg.DailyMin, "minimum miles walked per day")
	flag.Float64Var(&cfg.DailyMax, "max-miles", cfg.DailyMax, "maximum miles walked per day")
	flag.Float64Var(&cfg.ArrivalThreshold, "threshold", cfg.ArrivalThreshold, "arrival threshold in miles")
	flag.DurationVar(&cfg.StepDelay, "delay", cfg.StepDelay, "pause between days (API rate limiting)")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time-based)")

	out := flag.String("out", "long_walk_novel.txt", "novel output path")
	dbPath := flag.String("db", "data/longwalk.db", "travel log database path (empty disables)")
	llmURL := flag.String("llm-url", envOr("LONGWALK_LLM_URL", ""), "completions endpoint for flavor text")
	llmKey := flag.String("llm-key", envOr("LONGWALK_LLM_KEY", ""), "API key for flavor text (empty disables)")
	debug := flag.Bool("debug", false, "append ground-truth directions to interactions")
	flag.Parse()

	setupLogging()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := run(cfg, *out, *dbPath, *llmURL, *llmKey, *debug); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg journey.Config, out, dbPath, llmURL, llmKey string, debug bool) error {
	gen := narrative.NewGenerator(cfg.Seed)
	gen.Debug = debug

	novel, err := journey.CreateNovel(out)
	if err != nil {
		return err
	}
	defer novel.Close()

	walk := journey.New(cfg, geocode.NewClient(userAgent), gen, novel)
	walk.Terrain = terrain.NewField(cfg.Seed)

	llmClient := llm.NewClient(llmURL, llmKey)
	if llmClient.Enabled() {
		walk.Flavor = func(place, walker string) string {
			return llm.ArrivalFlavor(llmClient, place, walker)
		}
		slog.Info("flavor text enabled")
	} else {
		slog.Info("no LLM key set, using terrain descriptions for flavor")
	}

	if dbPath != "" {
		os.MkdirAll(filepath.Dir(dbPath), 0755)
		db, err := persistence.Open(dbPath)
		if err != nil {
			slog.Warn("travel log disabled", "error", err)
		} else {
			defer db.Close()
			walk.Log = db
			walk.RunID = uuid.NewString()
		}
	}

	if err := walk.Run(); err != nil {
		return err
	}

	if err := novel.Close(); err != nil {
		return err
	}

	words, err := countWords(out)
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}

	fmt.Printf("Novel generation complete: %s walked %s miles over %s days.\n",
		gen.WalkerName,
		humanize.CommafWithDigits(walk.State.TotalMiles, 2),
		humanize.Comma(int64(walk.State.Day)),
	)
	fmt.Printf("The novel contains %s words: %s\n", humanize.Comma(int64(words)), out)
	return nil
}

func setupLogging() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}

func countWords(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return len(strings.Fields(string(content))), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
