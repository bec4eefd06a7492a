// Package importer creates flashcards from YAML, XLSX and CSV files.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/cardstudy/internal/flashcard"
)

// ErrUnsupportedFormat is returned for files other than .yml, .yaml, .xlsx and .csv.
var ErrUnsupportedFormat = errors.New("importer: unsupported file format")

// Row is one card in an import file.
type Row struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

// Result summarizes an import.
type Result struct {
	Imported int
	Skipped  int
	Errors   []string
	Cards    []*flashcard.Flashcard
}

// Importer stores rows as new flashcards with a fresh schedule.
type Importer struct {
	repo  flashcard.Repository
	now   func() time.Time
	newID func() string
}

// NewImporter creates an Importer.
func NewImporter(repo flashcard.Repository) *Importer {
	return &Importer{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ImportFile reads path and imports its rows.
func (i *Importer) ImportFile(ctx context.Context, ownerID, path string, source flashcard.Source) (*Result, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}
	return i.Import(ctx, ownerID, rows, source)
}

// Import creates a card for every valid row.
// Rows with a blank or too long side are skipped and reported in Result.Errors.
// The first storage error stops the import.
func (i *Importer) Import(ctx context.Context, ownerID string, rows []Row, source flashcard.Source) (*Result, error) {
	result := &Result{}
	now := i.now().UTC()
	for n, row := range rows {
		front, back, err := flashcard.NormalizeSides(row.Front, row.Back)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", n+1, err))
			continue
		}

		card := flashcard.New(i.newID(), ownerID, front, back, source, now)
		if err := i.repo.Create(ctx, card); err != nil {
			return result, fmt.Errorf("repo.Create(row %d) > %w", n+1, err)
		}
		result.Imported++
		result.Cards = append(result.Cards, card)
	}
	return result, nil
}

// ReadRows reads the rows of a .yml, .yaml, .xlsx or .csv file.
func ReadRows(path string) ([]Row, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return readYAML(path)
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func readYAML(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer file.Close()

	var rows []Row
	if err := yaml.NewDecoder(file).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.Decode(%s) > %w", path, err)
	}
	return rows, nil
}

// readXLSX reads columns A and B of the first sheet. The first row is a header.
func readXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenFile(%s) > %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("f.GetRows(%s) > %w", sheets[0], err)
	}
	return recordsToRows(records), nil
}

// readCSV reads the first two columns. The first row is a header.
func readCSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv.ReadAll(%s) > %w", path, err)
	}
	return recordsToRows(records), nil
}

func recordsToRows(records [][]string) []Row {
	if len(records) <= 1 {
		return nil
	}
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		var row Row
		if len(record) > 0 {
			row.Front = record[0]
		}
		if len(record) > 1 {
			row.Back = record[1]
		}
		rows = append(rows, row)
	}
	return rows
}
