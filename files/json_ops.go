package files

import (
	"encoding/json"

	"sber/domain"
)

type txRowJSON struct {
	Title    string `json:"title"`
	Date     string `json:"date"`   // "14 октября"
	Amount   string `json:"amount"` // "-1250.40"
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
}

type JSONEncoder struct{}

func (JSONEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]txRowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, txRowJSON{
			Title:    r.Title,
			Date:     r.Date,
			Amount:   r.Amount.StringFixed(2),
			Category: r.Category,
			Icon:     r.Icon,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

func ExportTransactionsJSON(txs []domain.Transaction, path string) error {
	return ExportTransactions(txs, path, JSONEncoder{})
}

type JSONImporter struct{}

func (JSONImporter) parse(data []byte) ([]Row, error) {
	var in []txRowJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(in))
	for _, r := range in {
		amt, err := parseAmount(r.Amount)
		if err != nil {
			continue
		}
		out = append(out, Row{Title: r.Title, Date: r.Date, Amount: amt, Category: r.Category, Icon: r.Icon})
	}
	return out, nil
}

func ImportTransactionsJSON(path string) ([]Row, error) {
	base := BaseImporter{parser: JSONImporter{}}
	return base.Import(path)
}
