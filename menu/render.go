package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"sber/domain"
)

func Draw(m Menu) {
	title := m.Title
	if title == "" {
		title = "Меню"
	}
	fmt.Printf("==== %s ====\n", title)
	for i, it := range m.Items {
		fmt.Printf("%d) %s\n", i+1, it.Field)
	}
}

// FormatMoney renders an amount the ru-RU way: "45 230,50 ₽".
func FormatMoney(d decimal.Decimal, currency string) string {
	d = d.Round(2)
	intPart, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	s := groupThousands(intPart) + "," + frac
	if d.IsNegative() {
		s = "-" + s
	}
	if currency != "" {
		s += " " + currency
	}
	return s
}

// FormatSigned is FormatMoney with an explicit plus for income.
func FormatSigned(d decimal.Decimal, currency string) string {
	s := FormatMoney(d, currency)
	if d.Round(2).IsPositive() {
		s = "+" + s
	}
	return s
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// MaskNumber shows only the last four digits: "•• 2512".
func MaskNumber(n string) string {
	n = strings.TrimSpace(n)
	if r := []rune(n); len(r) > 4 {
		n = string(r[len(r)-4:])
	}
	return "•• " + n
}

func cardLine(i int, c domain.Card) string {
	kind := "дебетовая"
	if c.Type == domain.CardCredit {
		kind = "кредитная"
	}
	line := fmt.Sprintf("%d) %-22s %s  %s  [%s]", i, c.Name, MaskNumber(c.Number), FormatMoney(c.Balance, c.Currency), kind)
	if c.Blocked {
		line += " (заблокирована)"
	}
	return line
}

func txLine(i int, t domain.Transaction) string {
	return fmt.Sprintf("%d) %s %-24s %14s  %s • %s", i, t.Icon.Glyph(), t.Title, FormatSigned(t.Amount, domain.DefaultCurrency), t.Date, t.Category)
}

func printCards(cards []domain.Card) {
	if len(cards) == 0 {
		fmt.Println("Карт нет")
		return
	}
	for i, c := range cards {
		fmt.Println(cardLine(i+1, c))
	}
}

func printTransactions(txs []domain.Transaction) {
	if len(txs) == 0 {
		fmt.Println("Операций нет")
		return
	}
	for i, t := range txs {
		fmt.Println(txLine(i+1, t))
	}
}
