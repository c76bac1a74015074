package parser

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// SecuritiesParser handles securities account statements.
//
// Every entry begins with a share count and the "Stk." unit marker and may
// wrap over several lines:
//
//	10,00 Stk. Example Corp 123,45 1.234,50 Kauf 01.02.2024
//	ISIN: DE000ABCDEFG
//
// Entries that do not match the full pattern are skipped, not reported as
// errors.
type SecuritiesParser struct {
	log zerolog.Logger
}

func (p *SecuritiesParser) Name() string {
	return "Securities statement"
}

func (p *SecuritiesParser) Parse(lines []string) (*models.ResultTable, error) {
	groups := groupSecurityLines(lines)
	p.log.Debug().Int("lines", len(lines)).Int("groups", len(groups)).Msg("grouped securities lines")

	table := models.NewResultTable(models.KindSecurities)
	for i, group := range groups {
		rec, ok := parseSecurityGroup(group)
		if !ok {
			table.Skipped++
			p.log.Debug().Int("group", i+1).Str("text", strings.Join(group, " ")).Msg("skipping unmatched securities entry")
			continue
		}
		table.AppendSecurity(rec)
	}
	return table, nil
}

// groupSecurityLines splits lines into runs that each start at an entry
// start line. Lines before the first entry start belong to no group and
// are discarded.
func groupSecurityLines(lines []string) [][]string {
	var groups [][]string
	var current []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if isEntryStart(line) {
			if current != nil {
				groups = append(groups, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if current != nil {
		groups = append(groups, current)
	}
	return groups
}

// parseSecurityGroup searches the joined group text for one entry.
func parseSecurityGroup(group []string) (models.SecurityRecord, bool) {
	m := securityPattern.FindStringSubmatch(strings.Join(group, " "))
	if m == nil {
		return models.SecurityRecord{}, false
	}
	field := func(name string) string {
		return m[securityPattern.SubexpIndex(name)]
	}
	return models.SecurityRecord{
		Shares: field("shares"),
		Name:   field("name"),
		Price:  field("price"),
		Total:  field("total"),
		Type:   field("type"),
		Date:   field("date"),
		ISIN:   field("isin"),
	}, true
}
