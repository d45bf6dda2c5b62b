package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"lexitrain/internal/domain"
	"lexitrain/internal/repository"
)

// columns of the expected sheet layout:
// surface form | part of speech | CEFR level | definition | example sentence
const (
	colSurfaceForm  = 0
	colPartOfSpeech = 1
	colLevel        = 2
	colDefinition   = 3
	colExample      = 4
)

// Result holds the outcome of one corpus import.
type Result struct {
	Processed int
	Created   int
	Skipped   int
	Errors    []string
}

// Importer loads a leveled word corpus from an .xlsx sheet into the store.
type Importer struct {
	words  repository.WordRepository
	logger *zap.Logger
}

// New creates a corpus importer.
func New(words repository.WordRepository, logger *zap.Logger) *Importer {
	return &Importer{words: words, logger: logger}
}

// ImportFile reads the first sheet of an .xlsx file, skipping the header
// row. Rows whose surface form already exists in the corpus are skipped;
// malformed rows are collected as errors without aborting the import.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	result := &Result{}
	for rowNum, row := range rows {
		if rowNum == 0 {
			continue // header
		}
		result.Processed++

		entry, err := parseRow(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum+1, err))
			continue
		}

		existing, err := i.words.WordBySurfaceForm(ctx, entry.SurfaceForm)
		if err != nil {
			return result, fmt.Errorf("failed to check existing word: %w", err)
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		if err := i.words.CreateWord(ctx, &entry); err != nil {
			return result, fmt.Errorf("failed to create word %q: %w", entry.SurfaceForm, err)
		}
		result.Created++
	}

	i.logger.Info("corpus import finished",
		zap.Int("processed", result.Processed),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

func parseRow(row []string) (domain.WordEntry, error) {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	surface := cell(colSurfaceForm)
	if surface == "" {
		return domain.WordEntry{}, fmt.Errorf("empty surface form")
	}

	level, err := domain.ParseLevel(strings.ToUpper(cell(colLevel)))
	if err != nil {
		return domain.WordEntry{}, err
	}

	return domain.WordEntry{
		SurfaceForm:     surface,
		PartOfSpeech:    cell(colPartOfSpeech),
		Level:           level,
		Definition:      cell(colDefinition),
		ExampleSentence: cell(colExample),
	}, nil
}
