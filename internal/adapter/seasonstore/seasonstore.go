// Package seasonstore provides the season reference points consumed by the
// shadow analysis. The four canonical solstice/equinox points are built in;
// a CSV file can override them for operators who prefer different calendar
// approximations. The points stay fixed constants either way — nothing here
// derives them from an astronomical calendar.
package seasonstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/solucoes-solares/shadow-api/internal/domain"
)

// Store serves season reference points, from a CSV file when configured.
type Store struct {
	csvPath string
}

// NewStore creates a season store. An empty csvPath means the canonical
// built-in points are always returned.
func NewStore(csvPath string) *Store {
	return &Store{csvPath: csvPath}
}

// Points returns the reference points in file order, or the canonical four
// when no CSV override is configured.
func (s *Store) Points() ([]domain.SeasonPoint, error) {
	if s.csvPath == "" {
		return domain.CanonicalSeasonPoints(), nil
	}
	return loadCSV(s.csvPath)
}

// loadCSV reads a "label,day_of_year" CSV with a header row.
func loadCSV(path string) ([]domain.SeasonPoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seasons CSV: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	// Read and validate header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read seasons CSV header: %w", err)
	}
	expectedHeaders := []string{"label", "day_of_year"}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid seasons CSV header: expected %v, got %v", expectedHeaders, header)
	}
	for i, h := range header {
		if h != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid seasons CSV header: expected column %d to be %s, got %s", i, expectedHeaders[i], h)
		}
	}

	points := make([]domain.SeasonPoint, 0, 4)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read seasons CSV record: %w", err)
		}

		if len(record) != 2 {
			return nil, fmt.Errorf("invalid seasons CSV record: expected 2 columns, got %d", len(record))
		}

		label := strings.TrimSpace(record[0])
		day, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid day_of_year for season %s: %w", label, err)
		}
		if day < 1 || day > 366 {
			return nil, fmt.Errorf("day_of_year for season %s out of range 1-366: %d", label, day)
		}

		points = append(points, domain.SeasonPoint{Label: label, DayOfYear: day})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no season points found in %s", path)
	}

	return points, nil
}
