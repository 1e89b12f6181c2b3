package files

import (
	"strings"

	"github.com/shopspring/decimal"

	"sber/domain"
)

// Row: универсальная запись операции для импорт/экспорт.
// Id и тип в файл не пишутся: при импорте id выдаётся заново, тип
// выводится из знака суммы.
type Row struct {
	Title    string
	Date     string // "14 октября"
	Amount   decimal.Decimal
	Category string
	Icon     string
}

func FromTransactions(txs []domain.Transaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, Row{
			Title:    t.Title,
			Date:     t.Date,
			Amount:   t.Amount,
			Category: t.Category,
			Icon:     string(t.Icon),
		})
	}
	return rows
}

// ToTransaction turns an imported row into an entry ready for the engine.
// Unknown icons fall back to CircleDollarSign; an empty category becomes
// the default one.
func (r Row) ToTransaction() domain.Transaction {
	icon, err := domain.ParseIcon(r.Icon)
	if err != nil {
		icon = domain.IconCircleDollarSign
	}
	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = domain.DefaultTxCategory
	}
	return domain.Transaction{
		Title:    strings.TrimSpace(r.Title),
		Date:     strings.TrimSpace(r.Date),
		Amount:   r.Amount,
		Type:     domain.TypeFor(r.Amount),
		Category: category,
		Icon:     icon,
	}
}

func ToTransactions(rows []Row) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToTransaction())
	}
	return out
}
