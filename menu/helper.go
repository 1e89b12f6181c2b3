package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"sber/domain"
	"sber/service"
)

func chooseCard(cards []domain.Card, prompt string) (domain.Card, error) {
	if len(cards) == 0 {
		return domain.Card{}, fmt.Errorf("нет карт")
	}
	fmt.Println("=== Карты ===")
	printCards(cards)
	n, err := readInt(prompt)
	if err != nil {
		return domain.Card{}, err
	}
	if n < 1 || n > len(cards) {
		return domain.Card{}, fmt.Errorf("неверный выбор")
	}
	return cards[n-1], nil
}

func chooseTransaction(txs []domain.Transaction) (domain.Transaction, error) {
	if len(txs) == 0 {
		return domain.Transaction{}, fmt.Errorf("операций не найдено")
	}
	fmt.Println("=== Операции ===")
	printTransactions(txs)
	n, err := readInt("Выбери № операции: ")
	if err != nil {
		return domain.Transaction{}, err
	}
	if n < 1 || n > len(txs) {
		return domain.Transaction{}, fmt.Errorf("неверный выбор")
	}
	return txs[n-1], nil
}

// Пустой ввод = nil (не менять).
func readStringOptional(label, current string) *string {
	raw := readLine(fmt.Sprintf("%s (пусто = %q): ", label, current))
	if raw == "" {
		return nil
	}
	return &raw
}

func readAmountOptional(label string, def decimal.Decimal) *decimal.Decimal {
	for {
		raw := readLine(fmt.Sprintf("%s (пусто = %s): ", label, def.StringFixed(2)))
		if raw == "" {
			return nil
		}
		d, err := service.ParseAmount(raw)
		if err != nil {
			fmt.Println("Неверная сумма")
			continue
		}
		return &d
	}
}

func readCardTypeOptional(def domain.CardType) *domain.CardType {
	for {
		raw := strings.ToLower(readLine(fmt.Sprintf("Тип карты (1=дебетовая, 2=кредитная, пусто = %s): ", def)))
		switch raw {
		case "":
			return nil
		case "1", "debit", "дебетовая":
			t := domain.CardDebit
			return &t
		case "2", "credit", "кредитная":
			t := domain.CardCredit
			return &t
		default:
			fmt.Println("Выберите 1 или 2, либо пусто")
		}
	}
}

func readIconOptional(def domain.Icon) *domain.Icon {
	icons := domain.Icons()
	for i, ic := range icons {
		fmt.Printf("%2d) %s %s\n", i+1, ic.Glyph(), ic)
	}
	for {
		raw := readLine(fmt.Sprintf("Иконка (пусто = %s): ", def))
		if raw == "" {
			return nil
		}
		var n int
		if _, err := fmt.Sscanf(raw, "%d", &n); err == nil && n >= 1 && n <= len(icons) {
			return &icons[n-1]
		}
		if ic, err := domain.ParseIcon(raw); err == nil {
			return &ic
		}
		fmt.Println("Неизвестная иконка")
	}
}
