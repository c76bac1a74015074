package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// Separator is the field delimiter of every written table.
const Separator = ';'

// CSVWriter writes result tables as semicolon separated text with a
// header row.
type CSVWriter struct{}

// WriteToFile writes the table to path. The data goes to a temporary file
// in the same directory first and is renamed into place, so a failed write
// leaves no partial output behind.
func (w *CSVWriter) WriteToFile(path string, table *models.ResultTable) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = w.Write(f, table); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close output file %q: %w", path, err)
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %q: %w", path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place at %q: %w", path, err)
	}
	return nil
}

// Write writes the table in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, table *models.ResultTable) error {
	writer := csv.NewWriter(out)
	writer.Comma = Separator

	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return fmt.Errorf("row %d has %d field(s), want %d", i+1, len(row), len(table.Columns))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
