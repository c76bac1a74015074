package parser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

func TestAutoDetect(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected models.StatementKind
		wantErr  bool
	}{
		{
			name:     "detects account statement",
			lines:    []string{"KONTOÜBERSICHT", "04 Jan.", "Überweisung Gehalt 1.234,56 € 5.678,90 €", "2024"},
			expected: models.KindAccount,
		},
		{
			name:     "detects securities statement",
			lines:    []string{"DEPOTAUSZUG", "10,00 Stk. Example Corp 123,45 1.234,50 Kauf 01.02.2024", "ISIN: DE000ABCDEFG"},
			expected: models.KindSecurities,
		},
		{
			name:     "securities wins over booking keywords",
			lines:    []string{"Handel", "1,50 Stk. Foo AG 10,00 15,00 Kauf 01.02.2024 ISIN: DE0001"},
			expected: models.KindSecurities,
		},
		{
			name:    "unknown content returns error",
			lines:   []string{"Some unrelated text", "Page 1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AutoDetect(tt.lines)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, models.KindUncategorized, models.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind     models.StatementKind
		wantName string
		wantErr  bool
	}{
		{models.KindAccount, "Account statement", false},
		{models.KindSecurities, "Securities statement", false},
		{"unknown", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p, err := New(tt.kind, zerolog.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected models.StatementKind
		wantErr  bool
	}{
		{"", "", false},
		{"auto", "", false},
		{"Account", models.KindAccount, false},
		{"depot", models.KindSecurities, false},
		{"securities", models.KindSecurities, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
