package main

// #region imports
import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pdekker/merlin-solver/internal/config"
	"github.com/pdekker/merlin-solver/internal/llm"
	"github.com/pdekker/merlin-solver/internal/memory"
	"github.com/pdekker/merlin-solver/internal/oracle"
	"github.com/pdekker/merlin-solver/internal/solver"
)

// #endregion

// #region main

func main() {
	configPath := flag.String("config", envOr("MERLIN_CONFIG", "merlin.yaml"), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var mem *memory.OutcomeMemory
	if cfg.DBPath != "" {
		mem, err = memory.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("open outcome db: %v", err)
		}
		defer mem.Close()
	}

	channel, cleanup, err := buildChannel(cfg)
	if err != nil {
		log.Fatalf("channel: %v", err)
	}
	defer cleanup()

	var gen oracle.Generator
	if cfg.ResourceTier == "high" {
		gen = llm.NewWordGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	}

	strategy := solver.SelectStrategy(solver.Tier(cfg.ResourceTier), gen)
	sv := solver.New(channel, strategy, mem, solver.Params{
		Tier:         solver.Tier(cfg.ResourceTier),
		MaxQuestions: cfg.MaxQuestionsPerAttempt,
		MaxRetries:   cfg.MaxRetriesPerAttempt,
		PrefixLen:    cfg.PrefixLenPrimary,
	})

	fmt.Printf("Merlin solver ready (tier=%s, channel=%s)\n", cfg.ResourceTier, cfg.Channel)

	ctx := context.Background()
	level := 1
	failures := 0
	for {
		fmt.Printf("\n=== Level %d ===\n", level)
		cleared, err := sv.SolveLevel(ctx, level)
		if err != nil {
			log.Fatalf("level %d: %v", level, err)
		}
		if cleared {
			fmt.Println("Level cleared.")
			level++
			failures = 0
			continue
		}
		failures++
		if failures > cfg.MaxRetriesPerAttempt {
			log.Fatalf("level %d: giving up after %d failed attempts", level, failures)
		}
		fmt.Println("Level failed, retrying.")
	}
}

// #endregion main

// #region channel

func buildChannel(cfg config.Config) (oracle.Channel, func(), error) {
	switch cfg.Channel {
	case "browser":
		b, err := oracle.NewBrowser(oracle.BrowserConfig{
			URL:      cfg.GameURL,
			Headless: cfg.Headless,
		})
		if err != nil {
			return nil, nil, err
		}
		return b, func() { b.Close() }, nil
	default:
		fmt.Printf("Manual mode. Open %s and relay questions by hand.\n", cfg.GameURL)
		return oracle.NewConsole(os.Stdin, os.Stdout), func() {}, nil
	}
}

// #endregion channel

// #region env

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion env
