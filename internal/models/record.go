package models

// StatementKind identifies which document layout a set of lines comes from.
type StatementKind string

const (
	KindAccount    StatementKind = "account"
	KindSecurities StatementKind = "securities"
)

// AccountRecord is one cash transaction from an account statement.
// Amount and Balance keep the source decimal-comma formatting.
type AccountRecord struct {
	Date    string `json:"date"`
	Type    string `json:"type"`
	Text    string `json:"text"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"`
}

// SecurityRecord is one trade or holding entry from a securities statement.
type SecurityRecord struct {
	Shares string `json:"shares"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Total  string `json:"total"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	ISIN   string `json:"isin"`
}

// Column schemas, in output order.
var (
	AccountColumns    = []string{"Date", "Type", "Text", "Amount", "Balance"}
	SecuritiesColumns = []string{"Shares", "Stock Name", "Price per Share", "Total Value", "Type", "Date", "ISIN"}
)

// ResultTable holds the rows parsed from one document with a fixed
// column schema. Rows are appended in source order and never modified.
type ResultTable struct {
	Kind    StatementKind `json:"kind"`
	Columns []string      `json:"columns"`
	Rows    [][]string    `json:"rows"`
	// Skipped counts securities groups that did not match the entry pattern.
	Skipped int `json:"skipped"`
}

// NewResultTable returns an empty table with the schema for kind.
func NewResultTable(kind StatementKind) *ResultTable {
	t := &ResultTable{Kind: kind, Rows: [][]string{}}
	switch kind {
	case KindSecurities:
		t.Columns = SecuritiesColumns
	default:
		t.Columns = AccountColumns
	}
	return t
}

func (t *ResultTable) AppendAccount(r AccountRecord) {
	t.Rows = append(t.Rows, []string{r.Date, r.Type, r.Text, r.Amount, r.Balance})
}

func (t *ResultTable) AppendSecurity(r SecurityRecord) {
	t.Rows = append(t.Rows, []string{r.Shares, r.Name, r.Price, r.Total, r.Type, r.Date, r.ISIN})
}

// Len returns the number of data rows.
func (t *ResultTable) Len() int {
	return len(t.Rows)
}
