package filestore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// readRecords returns every well formed row with at least minFields fields.
// A missing file reads as no rows.
func readRecords(path string, minFields int) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			log.Warn().Err(err).Str("file", path).Msg("Skipping malformed record")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if len(row) < minFields {
			log.Warn().Str("file", path).Int("fields", len(row)).Msg("Skipping short record")
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// appendRecord adds one row at the end of the file, creating it if needed
func appendRecord(path string, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return f.Close()
}

// writeRecords replaces the whole file
func writeRecords(path string, rows [][]string) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		if err := writer.WriteAll(rows); err != nil {
			return err
		}
		return writer.Error()
	})
}

// writeFileAtomic writes to a temporary sibling and renames it over path
func writeFileAtomic(path string, write func(w io.Writer) error) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmpPath, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
