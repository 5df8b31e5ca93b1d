// Command rank is a batch CLI: it loads a places dataset, ranks weekend
// getaways for each requested source city, and writes one text report per
// city to an output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/adapter/dataset"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/adapter/textreport"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
)

func main() {
	var (
		dataPath = flag.String("data", "data/destinations.csv", "path to the places CSV dataset")
		cities   = flag.String("cities", "", "comma-separated source cities to rank (required)")
		topN     = flag.Int("top", domain.DefaultTopN, "number of destinations per report")
		outDir   = flag.String("out", "sample_outputs", "directory for rendered report files")
		scale    = flag.String("scale", "fixed", "rating scale: fixed (0-5) or data (derived from dataset)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*dataPath, *cities, *topN, *outDir, *scale, logger); err != nil {
		logger.Error("rank failed", "error", err)
		os.Exit(1)
	}
}

func run(dataPath, cities string, topN int, outDir, scale string, logger *slog.Logger) error {
	sourceCities := splitCities(cities)
	if len(sourceCities) == 0 {
		return errors.New("-cities is required")
	}

	records, err := dataset.Load(dataPath, logger)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "path", dataPath, "destinations", len(records))

	cfg := domain.DefaultScoringConfig()
	switch scale {
	case "fixed":
	case "data":
		cfg.RatingScale = domain.ScaleFromRecords(records)
		cfg.ImputedRating = cfg.RatingScale.Midpoint()
		logger.Info("derived rating scale", "min", cfg.RatingScale.Min, "max", cfg.RatingScale.Max)
	default:
		return fmt.Errorf("unknown scale %q (want fixed or data)", scale)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, city := range sourceCities {
		ranking, err := domain.Rank(records, city, topN, cfg)
		if err != nil {
			if errors.Is(err, domain.ErrSourceCityNotFound) {
				logger.Warn("skipping city", "source_city", city, "error", err)
				continue
			}
			return err
		}

		report := domain.AssembleReport(ranking, cfg.Weights)
		rendered := textreport.Render(report)
		fmt.Print(rendered)

		path := filepath.Join(outDir, outputFilename(city))
		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write report for %q: %w", city, err)
		}
		logger.Info("report saved", "source_city", city, "path", path, "results", len(report.Results))
	}

	return nil
}

func splitCities(s string) []string {
	var cities []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}

// outputFilename maps a city to a filesystem-safe report name, e.g.
// "New Delhi" becomes "new-delhi.txt".
func outputFilename(city string) string {
	key := domain.NormalizeKey(city)
	return strings.ReplaceAll(key, " ", "-") + ".txt"
}
