package files

import (
	"bytes"
	"encoding/csv"

	"sber/domain"
)

// Формат: title,date,amount,category,icon
var csvHeader = []string{"title", "date", "amount", "category", "icon"}

type CSVEncoder struct{}

func (CSVEncoder) EncodeRows(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{r.Title, r.Date, r.Amount.StringFixed(2), r.Category, r.Icon}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExportTransactionsCSV(txs []domain.Transaction, path string) error {
	return ExportTransactions(txs, path, CSVEncoder{})
}

type CSVImporter struct{}

func (CSVImporter) parse(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) <= 1 {
		return nil, nil // только хедер
	}
	out := make([]Row, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		if len(rec) < 4 {
			continue
		}
		amt, err := parseAmount(rec[2])
		if err != nil {
			continue
		}
		row := Row{Title: rec[0], Date: rec[1], Amount: amt, Category: rec[3]}
		if len(rec) > 4 {
			row.Icon = rec[4]
		}
		out = append(out, row)
	}
	return out, nil
}

func ImportTransactionsCSV(path string) ([]Row, error) {
	base := BaseImporter{parser: CSVImporter{}}
	return base.Import(path)
}
