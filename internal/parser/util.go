package parser

import (
	"regexp"
	"strings"
)

// transactionTypes is the fixed vocabulary of account-statement booking types.
const transactionTypes = `Kartentransaktion|Erträge|Prämie|Zinszahlung|Überweisung|Handel|Steuern|Gebühren`

// Account statement line shapes.
var (
	// Booking type keyword at the start of a line. Only the first occurrence
	// is used when splitting Type from Text.
	typePattern = regexp.MustCompile(`(?:` + transactionTypes + `)`)

	// Combined classifier, anchored at line start. Alternatives are tried in
	// order: booking line (captures the rest of the line), day + German month
	// abbreviation, bare four digit year.
	keptLinePattern = regexp.MustCompile(
		`^(?:` +
			`(?:` + transactionTypes + `)+.*` +
			`|\d{2}\s+(?:Jan\.|Feb\.|März|Apr\.|Mai|Juni|Juli|Aug\.|Sep\.|Okt\.|Nov\.|Dez\.)` +
			`|\d{4}\b` +
			`)`,
	)

	// Decimal-comma amount with optional dot thousands grouping, e.g. 1.234,56
	// or 56,00. Whitespace in front of it is consumed so the inserted
	// separator replaces it.
	amountPattern = regexp.MustCompile(`\s*((?:\d+(?:\.\d{3})*)?,\d{2,})`)
)

// Securities statement patterns.
var (
	// Share count followed by the unit marker opens a new entry.
	entryStartPattern = regexp.MustCompile(`^\d*\.*\d*,\d{2,}\s+Stk\.(?:\s|$)`)

	// One complete entry, searched anywhere in the joined group text.
	securityPattern = regexp.MustCompile(
		`(?P<shares>\d*\.*\d*,\d{2,})\s+Stk\.\s+` +
			`(?P<name>.+?)\s+` +
			`(?P<price>\d*\.*\d*,\d{2,})\s+` +
			`(?P<total>\d*\.*\d*,\d{2,})\s+` +
			`(?P<type>.+?)\s+` +
			`(?P<date>\d{2}\.\d{2}\.\d{4})\s+` +
			`ISIN:\s+(?P<isin>[A-Z0-9]+)`,
	)
)

const (
	fieldSeparator = ";"
	currencyMarker = " €"
)

// classifyLine returns the kept prefix of line, or false when the line is
// not part of any account-statement record.
func classifyLine(line string) (string, bool) {
	loc := keptLinePattern.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return line[:loc[1]], true
}

// isEntryStart reports whether line opens a securities entry.
func isEntryStart(line string) bool {
	return entryStartPattern.MatchString(line)
}

// startsWithTransactionType reports whether line begins with a booking keyword.
func startsWithTransactionType(line string) bool {
	loc := typePattern.FindStringIndex(line)
	return loc != nil && loc[0] == 0
}

// splitOnFirstType inserts a separator right after the first booking keyword.
func splitOnFirstType(s string) string {
	loc := typePattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[1]] + fieldSeparator + s[loc[1]:]
}

// trimFields trims surrounding whitespace from every part.
func trimFields(parts []string) []string {
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
