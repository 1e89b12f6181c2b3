package files

import (
	"errors"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"sber/service"
)

var ErrUnknownFormat = errors.New("unknown file format")

// Template Method pattern for importers.
// Общая структура и шаблон процесса импорта.
type Importer interface {
	parse(data []byte) ([]Row, error)
}

// BaseImporter: каркасный тип, реализующий шаблон метода Import.
type BaseImporter struct {
	parser Importer
}

// Import: общий метод для всех импортёров (CSV, JSON, YAML).
// Шаги: чтение файла → вызов конкретного парсера → пост-валидация.
func (b BaseImporter) Import(path string) ([]Row, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := b.parser.parse(bin)
	if err != nil {
		return nil, err
	}
	out := rows[:0]
	for _, r := range rows {
		if strings.TrimSpace(r.Title) == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// parseAmount accepts the same forms as the transfer form.
func parseAmount(s string) (decimal.Decimal, error) {
	return service.ParseAmount(s)
}
