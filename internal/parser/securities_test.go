package parser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

func newSecuritiesParser() *SecuritiesParser {
	return &SecuritiesParser{log: zerolog.Nop()}
}

func TestSecuritiesParser_SingleLineEntry(t *testing.T) {
	table, err := newSecuritiesParser().Parse([]string{
		"10,00 Stk. Example Corp 123,45 1.234,50 Kauf 01.02.2024 ISIN: DE000ABCDEFG",
	})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	assert.Equal(t, models.SecuritiesColumns, table.Columns)
	assert.Equal(t, []string{"10,00", "Example Corp", "123,45", "1.234,50", "Kauf", "01.02.2024", "DE000ABCDEFG"}, table.Rows[0])
	assert.Zero(t, table.Skipped)
}

func TestSecuritiesParser_Parse(t *testing.T) {
	lines := []string{
		"TRADE REPUBLIC BANK GMBH",
		"DEPOTAUSZUG",
		"Stand 31.12.2024",
		"10,00 Stk. Example Corp 123,45 1.234,50 Kauf",
		"01.02.2024",
		"ISIN: DE000ABCDEFG",
		"2,50 Stk. iShares Core MSCI World",
		"UCITS ETF USD (Acc) 80,12 200,30 Sparplan 15.03.2024",
		"ISIN: IE00B4L5Y983",
		"Seite 1 von 1",
	}

	table, err := newSecuritiesParser().Parse(lines)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, []string{"10,00", "Example Corp", "123,45", "1.234,50", "Kauf", "01.02.2024", "DE000ABCDEFG"}, table.Rows[0])
	assert.Equal(t, []string{"2,50", "iShares Core MSCI World UCITS ETF USD (Acc)", "80,12", "200,30", "Sparplan", "15.03.2024", "IE00B4L5Y983"}, table.Rows[1])
}

func TestSecuritiesParser_SkipsUnmatchedEntry(t *testing.T) {
	lines := []string{
		"10,00 Stk. Example Corp 123,45 1.234,50 Kauf 01.02.2024 ISIN: DE000ABCDEFG",
		"5,00 Stk. Missing Marker AG 10,00 50,00 Kauf 02.02.2024",
		"1,00 Stk. Third SE 99,99 99,99 Verkauf 03.02.2024 ISIN: FR0000000003",
	}

	table, err := newSecuritiesParser().Parse(lines)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, 1, table.Skipped)
	assert.Equal(t, "DE000ABCDEFG", table.Rows[0][6])
	assert.Equal(t, "FR0000000003", table.Rows[1][6])
}

func TestSecuritiesParser_NoEntries(t *testing.T) {
	table, err := newSecuritiesParser().Parse([]string{"DEPOTAUSZUG", "keine Positionen"})
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	assert.NotNil(t, table.Rows)
}

func TestGroupSecurityLines(t *testing.T) {
	lines := []string{
		"leading noise",
		"1,00 Stk. A",
		"wrapped",
		"2,00 Stk. B",
		"3,00 Stk. C",
		"trailing",
	}

	got := groupSecurityLines(lines)
	assert.Equal(t, [][]string{
		{"1,00 Stk. A", "wrapped"},
		{"2,00 Stk. B"},
		{"3,00 Stk. C", "trailing"},
	}, got)
}

func TestParseSecurityGroup_LeadingNoise(t *testing.T) {
	rec, ok := parseSecurityGroup([]string{"Übertrag 7,00 Stk. Foo AG 1,00 7,00 Einlieferung 05.05.2024 ISIN: DE0001234567"})
	require.True(t, ok)
	assert.Equal(t, models.SecurityRecord{
		Shares: "7,00", Name: "Foo AG", Price: "1,00", Total: "7,00",
		Type: "Einlieferung", Date: "05.05.2024", ISIN: "DE0001234567",
	}, rec)
}
