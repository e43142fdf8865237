// Command hegemon runs a headless grand-strategy campaign to completion,
// with the player nation on autopilot alongside the AI.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/talgya/hegemon/internal/engine"
	"github.com/talgya/hegemon/internal/world"
)

type config struct {
	MapWidth     int    `yaml:"map_width"`
	MapHeight    int    `yaml:"map_height"`
	NumAI        int    `yaml:"num_ai"`
	PlayerNation string `yaml:"player_nation"`
	Difficulty   string `yaml:"difficulty"`
	Seed         int64  `yaml:"seed"`
	MaxTurns     int    `yaml:"max_turns"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML game settings")
	seed := flag.Int64("seed", 0, "world seed (overrides config, 0 = random)")
	turns := flag.Int("turns", 0, "turn cap (overrides config, 0 = default)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *turns != 0 {
		cfg.MaxTurns = *turns
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = 300
	}

	game, err := engine.NewGame(engine.Settings{
		MapWidth:     cfg.MapWidth,
		MapHeight:    cfg.MapHeight,
		NumAI:        cfg.NumAI,
		PlayerNation: cfg.PlayerNation,
		Difficulty:   engine.ParseDifficulty(cfg.Difficulty),
		Seed:         cfg.Seed,
		Autopilot:    true,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	for t, count := range world.TerrainCounts(game.Map) {
		slog.Debug("terrain", "type", t.Info().Name, "count", count)
	}

	for !game.GameOver && game.Turn <= cfg.MaxTurns {
		summary := game.AdvanceTurn()

		for _, line := range summary.Events {
			slog.Info("event", "turn", summary.Turn, "what", line)
		}
		for _, note := range game.DrainNotifications() {
			slog.Info("notification", "turn", summary.Turn, "kind", note.Kind, "message", note.Message)
		}

		if summary.Turn%25 == 0 {
			logStandings(game, summary.Turn)
		}
	}

	if game.GameOver {
		winner := game.NationByID(game.Winner)
		slog.Info("campaign over",
			"turn", game.Turn,
			"winner", winner.Name,
			"victory", string(game.VictoryType),
		)
	} else {
		slog.Info("turn cap reached", "turns", cfg.MaxTurns)
	}
	logStandings(game, game.Turn)
}

func logStandings(game *engine.State, turn int) {
	for _, n := range game.Nations {
		if !n.Alive {
			slog.Info("standing", "turn", turn, "nation", n.Name, "status", "eliminated")
			continue
		}
		slog.Info("standing",
			"turn", turn,
			"nation", n.Name,
			"score", fmt.Sprintf("%.0f", n.Score),
			"tiles", len(game.OwnedTiles(n.ID)),
			"gold", humanize.Comma(int64(n.Economy.Gold)),
			"population", humanize.Comma(int64(n.Economy.Population)),
			"stability", n.Economy.Stability,
		)
	}
}
