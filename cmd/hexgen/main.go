package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"hexforge/internal/domain/hexmap"
)

type config struct {
	seed      string
	radius    int
	terrains  string
	resources string
	buildings string
	summary   bool
	verbose   bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.seed, "seed", "", "map seed (required)")
	flag.IntVar(&cfg.radius, "radius", 5, "map radius in hexes")
	flag.StringVar(&cfg.terrains, "terrains", joinTags(hexmap.AllTerrains), "comma separated terrain pool")
	flag.StringVar(&cfg.resources, "resources", "", "comma separated resource pool, omit to disable")
	flag.StringVar(&cfg.buildings, "buildings", "", "comma separated building pool, omit to disable")
	flag.BoolVar(&cfg.summary, "summary", false, "print counts instead of tiles")
	flag.BoolVar(&cfg.verbose, "v", false, "log every generated tile to stderr")
	flag.Parse()

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, stdout, stderr io.Writer) error {
	if cfg.seed == "" {
		return fmt.Errorf("missing -seed")
	}
	g := hexmap.Generator{}
	if cfg.verbose {
		g.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	tiles, err := g.Generate(hexmap.Options{
		Seed:      cfg.seed,
		Radius:    cfg.radius,
		Terrains:  splitTags[hexmap.Terrain](cfg.terrains),
		Resources: splitTags[hexmap.Resource](cfg.resources),
		Buildings: splitTags[hexmap.Building](cfg.buildings),
	})
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if cfg.summary {
		return enc.Encode(hexmap.Summarize(tiles))
	}
	return enc.Encode(tiles)
}

// splitTags returns nil for an empty flag so the category is skipped.
func splitTags[T ~string](raw string) []T {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, T(strings.ToUpper(p)))
		}
	}
	return out
}

func joinTags[T ~string](tags []T) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
