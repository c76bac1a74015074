package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultTable_Append(t *testing.T) {
	account := NewResultTable(KindAccount)
	account.AppendAccount(AccountRecord{Date: "04 Jan. 2024", Type: "Überweisung", Text: "Gehalt", Amount: "1.234,56", Balance: "5.678,90"})
	assert.Equal(t, 1, account.Len())
	assert.Len(t, account.Rows[0], len(account.Columns))

	securities := NewResultTable(KindSecurities)
	securities.AppendSecurity(SecurityRecord{Shares: "10,00", Name: "Example Corp", Price: "123,45", Total: "1.234,50", Type: "Kauf", Date: "01.02.2024", ISIN: "DE000ABCDEFG"})
	assert.Equal(t, SecuritiesColumns, securities.Columns)
	assert.Equal(t, []string{"10,00", "Example Corp", "123,45", "1.234,50", "Kauf", "01.02.2024", "DE000ABCDEFG"}, securities.Rows[0])
}
