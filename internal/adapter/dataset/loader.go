// Package dataset loads destination records from the places CSV.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
)

// Load reads a destination dataset from a CSV file.
func Load(path string, logger *slog.Logger) ([]domain.Destination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return records, nil
}

// columns maps the header cells we care about to their indices.
// The source dataset headers vary ("Type" vs "Category", "Google review
// rating"), so resolution is case-insensitive and tolerant of phrasing.
type columns struct {
	name     int
	city     int
	state    int
	category int
	rating   int
}

// Parse reads CSV destination records from r. A missing header or an
// unreadable stream is an error; individual malformed rows are logged and
// skipped, never abort the load. Category and rating columns are optional —
// normalization copes with blank values downstream.
func Parse(r io.Reader, logger *slog.Logger) ([]domain.Destination, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are handled per row below

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.Destination
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn("skipping unreadable row", "line", line, "error", err)
			continue
		}

		rec := domain.Destination{
			Name:     cell(row, cols.name),
			City:     cell(row, cols.city),
			State:    cell(row, cols.state),
			Category: cell(row, cols.category),
			Rating:   cell(row, cols.rating),
		}
		if rec.Name == "" && rec.City == "" {
			logger.Warn("skipping row without name or city", "line", line)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{name: -1, city: -1, state: -1, category: -1, rating: -1}
	for i, h := range header {
		switch key := domain.NormalizeKey(h); {
		case key == "name":
			cols.name = i
		case key == "city":
			cols.city = i
		case key == "state":
			cols.state = i
		case key == "type" || key == "category":
			cols.category = i
		case strings.Contains(key, "rating"):
			if cols.rating == -1 {
				cols.rating = i
			}
		}
	}

	if cols.name == -1 || cols.city == -1 || cols.state == -1 {
		return columns{}, fmt.Errorf("dataset header missing required columns (need name, city, state): %v", header)
	}
	return cols, nil
}

// cell returns the trimmed value at index i, or "" when the column is absent
// or the row is too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
