// Package convert runs a statement document through extraction, parsing
// and CSV output.
package convert

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/insightdelivered/statement-extractor/internal/extractor"
	"github.com/insightdelivered/statement-extractor/internal/models"
	"github.com/insightdelivered/statement-extractor/internal/parser"
	"github.com/insightdelivered/statement-extractor/internal/writer"
)

// OutputSuffix is appended to the input path to name the default output.
const OutputSuffix = ".csv"

// Options controls a single conversion.
type Options struct {
	// Kind selects the pipeline; empty means auto-detect.
	Kind models.StatementKind
	// Output overrides the default "<input>.csv" destination.
	Output string
	Log    zerolog.Logger
}

// Result describes a finished conversion.
type Result struct {
	Kind       models.StatementKind
	Table      *models.ResultTable
	OutputPath string
}

// File converts the document at inputPath and writes the CSV. Nothing is
// written when any step before the write fails.
func File(inputPath string, opts Options) (*Result, error) {
	info, err := os.Stat(inputPath)
	if err != nil || info.IsDir() {
		return nil, models.NewError(models.KindMissingInput,
			fmt.Sprintf("the file %s does not exist", inputPath), err)
	}

	lines, err := extractor.ExtractLines(inputPath, opts.Log)
	if err != nil {
		if errors.Is(err, extractor.ErrNoText) {
			return nil, models.NewError(models.KindNoText, "no text could be extracted from "+inputPath, err)
		}
		return nil, err
	}
	opts.Log.Debug().Str("input", inputPath).Int("lines", len(lines)).Msg("extracted lines")

	kind, table, err := Lines(lines, opts.Kind, opts.Log)
	if err != nil {
		return nil, err
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = inputPath + OutputSuffix
	}
	w := &writer.CSVWriter{}
	if err := w.WriteToFile(outPath, table); err != nil {
		return nil, models.NewError(models.KindOutputWrite, "error writing CSV", err)
	}

	return &Result{Kind: kind, Table: table, OutputPath: outPath}, nil
}

// Lines parses already extracted lines. An empty kind is auto-detected.
func Lines(lines []string, kind models.StatementKind, log zerolog.Logger) (models.StatementKind, *models.ResultTable, error) {
	if len(lines) == 0 {
		return "", nil, models.NewError(models.KindNoText, "no text could be extracted from the document", nil)
	}

	if kind == "" {
		detected, err := parser.AutoDetect(lines)
		if err != nil {
			return "", nil, err
		}
		kind = detected
		log.Debug().Str("kind", string(kind)).Msg("auto-detected statement type")
	}

	p, err := parser.New(kind, log)
	if err != nil {
		return "", nil, err
	}

	table, err := p.Parse(lines)
	if err != nil {
		return "", nil, err
	}
	if table.Skipped > 0 {
		log.Info().Int("skipped", table.Skipped).Msg("some entries did not match and were skipped")
	}
	return kind, table, nil
}
