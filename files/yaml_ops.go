package files

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"sber/domain"
)

// =======================
// ====== ЭКСПОРТ ========
// =======================

type txRowYAML struct {
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Amount   string `yaml:"amount"`
	Category string `yaml:"category"`
	Icon     string `yaml:"icon,omitempty"`
}

// YAMLEncoder: стратегия кодирования в YAML.
type YAMLEncoder struct{}

func (YAMLEncoder) EncodeRows(rows []Row) ([]byte, error) {
	out := make([]txRowYAML, 0, len(rows))
	for _, r := range rows {
		out = append(out, txRowYAML{
			Title:    r.Title,
			Date:     r.Date,
			Amount:   r.Amount.StringFixed(2),
			Category: r.Category,
			Icon:     r.Icon,
		})
	}
	return yaml.Marshal(out)
}

func ExportTransactionsYAML(txs []domain.Transaction, path string) error {
	return ExportTransactions(txs, path, YAMLEncoder{})
}

// =======================
// ====== ИМПОРТ =========
// =======================

type YAMLImporter struct{}

func (YAMLImporter) parse(data []byte) ([]Row, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var in []txRowYAML
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
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

func ImportTransactionsYAML(path string) ([]Row, error) {
	base := BaseImporter{parser: YAMLImporter{}}
	return base.Import(path)
}
