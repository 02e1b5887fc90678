// Package common provides the CSV plumbing and batch processing shared by the
// commands.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// RawDescriptionColumn is the one column a batch input file must carry.
const RawDescriptionColumn = "raw_description"

// ParseDelimiter returns the first rune of value, or DefaultDelimiter when
// value is empty.
func ParseDelimiter(value string) rune {
	for _, r := range value {
		return r
	}
	return DefaultDelimiter
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv
// TCSVRow is the struct type that maps to the CSV columns
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Info("Reading CSV file", logging.Field{Key: logging.FieldInputFile, Value: filePath})

	data, err := os.ReadFile(filePath) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(newReader(data, delimiter), &rows); err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.Info("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// ReadBatchFile reads a batch input file. The header must contain a
// raw_description column; other columns are ignored.
func ReadBatchFile(filePath string, delimiter rune, logger logging.Logger) ([]models.BatchRow, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}

	header, err := newReader(data, delimiter).Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	if !hasColumn(header, RawDescriptionColumn) {
		return nil, fmt.Errorf("CSV file %s has no %q column", filePath, RawDescriptionColumn)
	}

	return ReadCSVFile[models.BatchRow](filePath, delimiter, logger)
}

// WriteBatchFile writes rows to csvFile, creating parent directories.
func WriteBatchFile(rows []models.BatchRow, csvFile string, delimiter rune, logger logging.Logger) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	logger.Info("Writing rows to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(csvFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionOutputFile) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}

// utf8BOM prefixes files exported by spreadsheet tools.
var utf8BOM = []byte("\ufeff")

func newReader(data []byte, delimiter rune) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r
}

func hasColumn(header []string, column string) bool {
	for _, name := range header {
		if name == column {
			return true
		}
	}
	return false
}
