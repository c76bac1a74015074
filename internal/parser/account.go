package parser

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// AccountParser handles account statements (cash transactions).
//
// The extracted text spreads one booking over three classified lines:
//
//	04 Jan.
//	Überweisung Gehalt 1.234,56 € 5.678,90 €
//	2024
//
// Lines that are not a booking, a day+month or a year are ignored.
// Any record that cannot be split into five fields aborts the whole parse.
type AccountParser struct {
	log zerolog.Logger
}

// windowSize is the number of kept lines that make up one record.
const windowSize = 3

func (p *AccountParser) Name() string {
	return "Account statement"
}

func (p *AccountParser) Parse(lines []string) (*models.ResultTable, error) {
	kept := p.classify(lines)
	p.log.Debug().Int("lines", len(lines)).Int("kept", len(kept)).Msg("classified account lines")

	if len(kept) < windowSize {
		return nil, models.NewError(models.KindInsufficientData,
			fmt.Sprintf("found %d classifiable line(s), need at least %d", len(kept), windowSize), nil)
	}

	table := models.NewResultTable(models.KindAccount)
	for i, composite := range groupAccountLines(kept) {
		rec, err := parseAccountRecord(composite)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		table.AppendAccount(rec)
	}

	if dropped := len(kept) % windowSize; dropped > 0 {
		p.log.Debug().Int("dropped", dropped).Msg("trailing account lines do not fill a record")
	}
	return table, nil
}

// classify keeps the matched prefix of every line that starts with a
// known shape, preserving order.
func (p *AccountParser) classify(lines []string) []string {
	var kept []string
	for _, line := range lines {
		if prefix, ok := classifyLine(strings.TrimSpace(line)); ok {
			kept = append(kept, prefix)
		}
	}
	return kept
}

// groupAccountLines turns every full window of three kept lines into one
// composite string "first third;second". A trailing partial window is dropped.
func groupAccountLines(kept []string) []string {
	composites := make([]string, 0, len(kept)/windowSize)
	for i := 0; i+windowSize <= len(kept); i += windowSize {
		composites = append(composites, kept[i]+" "+kept[i+2]+fieldSeparator+kept[i+1])
	}
	return composites
}

// parseAccountRecord splits a composite string into Date, Type, Text,
// Amount and Balance.
func parseAccountRecord(composite string) (models.AccountRecord, error) {
	s := amountPattern.ReplaceAllString(composite, fieldSeparator+"${1}")
	s = strings.ReplaceAll(s, currencyMarker, "")
	s = splitOnFirstType(s)

	parts := trimFields(strings.Split(s, fieldSeparator))
	if len(parts) != len(models.AccountColumns) {
		return models.AccountRecord{}, models.NewError(models.KindMalformedRecord,
			fmt.Sprintf("%q splits into %d field(s), want %d", composite, len(parts), len(models.AccountColumns)), nil)
	}

	return models.AccountRecord{
		Date:    parts[0],
		Type:    parts[1],
		Text:    parts[2],
		Amount:  parts[3],
		Balance: parts[4],
	}, nil
}
