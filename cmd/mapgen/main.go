// Command mapgen generates a hex terrain map, stores it, and optionally
// serves the map API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexlands/internal/api"
	"github.com/talgya/hexlands/internal/entropy"
	"github.com/talgya/hexlands/internal/persistence"
	"github.com/talgya/hexlands/internal/world"
)

var (
	width   = flag.Int("width", 16, "grid width in hexes")
	height  = flag.Int("height", 9, "grid height in hexes")
	regions = flag.Int("regions", 18, "target region count")
	seed    = flag.Int64("seed", 0, "random seed (0 = draw from entropy source)")
	dbPath  = flag.String("db", "data/hexlands.db", "path to the map database")
	serve   = flag.Bool("serve", false, "serve the HTTP API after generating")
	port    = flag.Int("port", 8080, "HTTP API port")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Entropy source for seedless runs. Optional.
	entropyClient := entropy.NewClient(os.Getenv("RANDOM_ORG_KEY"))
	if entropyClient.Enabled() {
		slog.Info("random.org entropy source enabled")
	}

	cfg := world.DefaultGenConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.NumRegions = *regions
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = entropy.SeedFromSource(entropyClient)
	}

	slog.Info("generating map",
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"regions", cfg.NumRegions,
		"seed", cfg.Seed,
	)

	m, err := world.Generate(cfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	sizes := world.RegionSizes(m.Regions, cfg.NumRegions)
	extinct := 0
	for _, size := range sizes {
		if size == 0 {
			extinct++
		}
	}

	slog.Info("map generated",
		"hexes", humanize.Comma(int64(m.Grid.Size())),
		"regions", cfg.NumRegions-extinct,
		"extinct", extinct,
		"draws", humanize.Comma(int64(len(world.RenderPlan(m)))),
	)
	for t, count := range world.TerrainCounts(m) {
		slog.Info("terrain", "type", world.TerrainName(t), "count", count)
	}

	os.MkdirAll(filepath.Dir(*dbPath), 0755)
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	id, err := db.SaveMap(m)
	if err != nil {
		slog.Error("failed to save map", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Map %s ready: seed %d, %d hexes.\n", id, m.Seed, m.Grid.Size())

	if !*serve {
		return
	}

	adminKey := os.Getenv("HEXLANDS_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("HEXLANDS_ADMIN_KEY not set — admin endpoints will be disabled")
	}

	server := &api.Server{
		DB:       db,
		Entropy:  entropyClient,
		Port:     *port,
		AdminKey: adminKey,
	}
	server.Start()
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", *port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}
