package parser

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// Parser defines the interface for statement parsers.
type Parser interface {
	// Parse takes the extracted lines of one document, in order, and returns
	// the parsed rows.
	Parse(lines []string) (*models.ResultTable, error)
	// Name returns the human-readable statement name.
	Name() string
}

// New returns the parser for the given statement kind.
func New(kind models.StatementKind, log zerolog.Logger) (Parser, error) {
	switch kind {
	case models.KindAccount:
		return &AccountParser{log: log.With().Str("parser", string(kind)).Logger()}, nil
	case models.KindSecurities:
		return &SecuritiesParser{log: log.With().Str("parser", string(kind)).Logger()}, nil
	default:
		return nil, fmt.Errorf("unsupported statement type: %q", kind)
	}
}

// ParseKind converts a user supplied type name. An empty string or "auto"
// yields the empty kind, meaning the caller should auto-detect.
func ParseKind(s string) (models.StatementKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return "", nil
	case "account", "konto", "kontoauszug":
		return models.KindAccount, nil
	case "securities", "depot", "depotauszug":
		return models.KindSecurities, nil
	default:
		return "", fmt.Errorf("unknown statement type %q, supported: auto, account, securities", s)
	}
}

// AutoDetect tries to identify the statement kind from its lines.
// Share-count entries win over booking lines since securities statements
// may also contain booking keywords such as "Handel".
func AutoDetect(lines []string) (models.StatementKind, error) {
	account := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if isEntryStart(line) {
			return models.KindSecurities, nil
		}
		if !account && startsWithTransactionType(line) {
			account = true
		}
	}
	if account {
		return models.KindAccount, nil
	}
	return "", models.NewError(models.KindUncategorized,
		"could not detect statement type from content; please specify --type", nil)
}
