package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		kept     bool
	}{
		{"04 Jan. 2024", "04 Jan.", true},
		{"17 März", "17 März", true},
		{"01 Juni 2023", "01 Juni", true},
		{"2024", "2024", true},
		{"2024 Seite 1", "2024", true},
		{"Überweisung Gehalt 1.234,56 € 5.678,90 €", "Überweisung Gehalt 1.234,56 € 5.678,90 €", true},
		{"Kartentransaktion REWE 12,34 € 100,00 €", "Kartentransaktion REWE 12,34 € 100,00 €", true},
		{"Gebühren", "Gebühren", true},
		{"1.234,56 € 5.678,90 €", "", false},
		{"20245 items", "", false},
		{"4 Jan.", "", false},
		{"Datum Typ Beschreibung", "", false},
		{"Seite 1 Überweisung", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := classifyLine(tt.input)
			assert.Equal(t, tt.kept, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsEntryStart(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"10,00 Stk. Example Corp", true},
		{"1.250,50 Stk. Foo", true},
		{"0,123456 Stk.", true},
		{"10 Stk. Example Corp", false},
		{"Example Corp 10,00 Stk.", false},
		{"10,00 Stück Example", false},
		{"ISIN: DE000ABCDEFG", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, isEntryStart(tt.input))
		})
	}
}

func TestSplitOnFirstType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"04 Jan. 2024;Überweisung Gehalt", "04 Jan. 2024;Überweisung; Gehalt"},
		{"Handel Handel AG", "Handel; Handel AG"},
		{"no keyword", "no keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitOnFirstType(tt.input))
		})
	}
}
