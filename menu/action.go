package menu

import (
	"context"
	"errors"
	"fmt"

	"sber/auth"
	"sber/domain"
	"sber/service"
	"sber/state"
)

// navigate moves the flow to page and remembers it for the next run.
func navigate(d *Deps, p auth.Page) error {
	if d.Flow != nil {
		if err := d.Flow.Navigate(p); err != nil {
			return err
		}
	}
	d.State.LastPage = string(p)
	saveState(d)
	return nil
}

func saveState(d *Deps) {
	if d.StatePath == "" {
		return
	}
	if err := state.Save(d.StatePath, d.State); err != nil {
		d.Log.Warn().Err(err).Msg("save ui state")
	}
}

func actionMain(_ context.Context, d *Deps) error {
	if err := navigate(d, auth.PageMain); err != nil {
		return err
	}
	fmt.Println("=== Главный ===")
	fmt.Println("Всего средств на всех счетах:", FormatMoney(d.Bank.TotalBalance(), domain.DefaultCurrency))
	fmt.Println()
	printCards(d.Bank.ActiveCards())
	fmt.Println("\nПоследние операции:")
	printTransactions(d.Bank.Recent(3))
	return nil
}

func actionCards(_ context.Context, d *Deps) error {
	if err := navigate(d, auth.PageCards); err != nil {
		return err
	}
	fmt.Println("=== Карты ===")
	printCards(d.Bank.Cards())
	return nil
}

func actionWallet(_ context.Context, d *Deps) error {
	if err := navigate(d, auth.PageWallet); err != nil {
		return err
	}
	fmt.Println("=== Кошелёк ===")
	for _, c := range d.Bank.Cards() {
		status := "активна"
		if c.Blocked {
			status = "заблокирована"
		}
		fmt.Printf("%s  %s  (%s)\n", MaskNumber(c.Number), c.Name, status)
	}
	return nil
}

func actionTransfer(ctx context.Context, d *Deps) error {
	if err := navigate(d, auth.PageTransfer); err != nil {
		return err
	}
	cards := d.Bank.ActiveCards()
	src, err := pickSourceCard(d, cards)
	if err != nil {
		return err
	}
	recipient := readLine("Получатель (телефон или имя): ")
	amount := readLine("Сумма: ")
	comment := readLine("Комментарий (необязательно): ")

	res, err := d.Bank.Transfer(ctx, service.TransferInput{
		Recipient:    recipient,
		Amount:       amount,
		SourceCardID: src.ID,
		Comment:      comment,
	})
	if err != nil {
		return transferError(err)
	}
	d.State.SelectedCardID = src.ID
	fmt.Printf("Перевод выполнен: %s. Остаток на %s: %s\n",
		FormatMoney(res.Transaction.Amount.Abs(), res.Card.Currency), MaskNumber(res.Card.Number),
		FormatMoney(res.Card.Balance, res.Card.Currency))
	return navigate(d, auth.PageMain)
}

// pickSourceCard offers the remembered card first.
func pickSourceCard(d *Deps, cards []domain.Card) (domain.Card, error) {
	for _, c := range cards {
		if c.ID == d.State.SelectedCardID {
			if confirm(fmt.Sprintf("Списать с %s %s?", c.Name, MaskNumber(c.Number))) {
				return c, nil
			}
			break
		}
	}
	return chooseCard(cards, "Выбери карту списания №: ")
}

func transferError(err error) error {
	switch {
	case errors.Is(err, service.ErrFillAllFields):
		return fmt.Errorf("заполните все поля")
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fmt.Errorf("недостаточно средств")
	case errors.Is(err, service.ErrInvalidAmount):
		return fmt.Errorf("неверная сумма")
	default:
		return err
	}
}

func actionHistory(_ context.Context, d *Deps) error {
	if err := navigate(d, auth.PageHistory); err != nil {
		return err
	}
	cats := d.Bank.Categories()
	fmt.Println("0) Все категории")
	for i, c := range cats {
		fmt.Printf("%d) %s\n", i+1, c)
	}
	category := ""
	if n, err := readInt("Категория №: "); err == nil && n >= 1 && n <= len(cats) {
		category = cats[n-1]
	}
	fmt.Println("=== История ===")
	printTransactions(d.Bank.History(category))
	return nil
}

func actionAnalytics(_ context.Context, d *Deps) error {
	s := d.Ana.Summary("")
	fmt.Printf("Доходы: %s | Расходы: %s | Итого: %s (%d операций)\n",
		FormatMoney(s.Income, domain.DefaultCurrency), FormatMoney(s.Expense, domain.DefaultCurrency),
		FormatSigned(s.Net, domain.DefaultCurrency), s.Count)

	b := d.Ana.BreakdownByCategory()
	fmt.Println("\nРасходы по категориям:")
	for _, c := range b.Expenses {
		fmt.Printf("  %-20s %s\n", c.Category, FormatMoney(c.Amount, domain.DefaultCurrency))
	}
	fmt.Println("Доходы по категориям:")
	for _, c := range b.Incomes {
		fmt.Printf("  %-20s %s\n", c.Category, FormatMoney(c.Amount, domain.DefaultCurrency))
	}
	return nil
}

func actionProfile(_ context.Context, d *Deps) error {
	if err := navigate(d, auth.PageProfile); err != nil {
		return err
	}
	fmt.Println("=== Профиль ===")
	if d.Flow != nil {
		fmt.Println("Пользователь:", d.Flow.Username())
	}
	fmt.Println("Карт:", len(d.Bank.Cards()))
	fmt.Println("Всего средств:", FormatMoney(d.Bank.TotalBalance(), domain.DefaultCurrency))
	return nil
}

func actionLogout(ctx context.Context, d *Deps) error {
	if d.Flow == nil {
		return nil
	}
	d.Flow.Logout()
	d.Log.Info().Msg("signed out")
	fmt.Println("Вы вышли из аккаунта.")
	return Login(ctx, d)
}
