package menu

import (
	"context"
	"fmt"

	"sber/facade"
	"sber/files"
)

func actionListCards(_ context.Context, d *Deps) error {
	fmt.Println("=== Карты ===")
	printCards(d.Admin.Cards())
	return nil
}

func actionAddCard(ctx context.Context, d *Deps) error {
	c, err := d.Admin.AddCard(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Карта добавлена:", cardLine(len(d.Admin.Cards()), c))
	return nil
}

func actionEditCard(ctx context.Context, d *Deps) error {
	c, err := chooseCard(d.Admin.Cards(), "Выбери карту №: ")
	if err != nil {
		return err
	}
	in := facade.EditCardInput{
		ID:       c.ID,
		Name:     readStringOptional("Название", c.Name),
		Number:   readStringOptional("Номер", c.Number),
		Balance:  readAmountOptional("Баланс", c.Balance),
		Type:     readCardTypeOptional(c.Type),
		Currency: readStringOptional("Валюта", c.Currency),
	}
	c, err = d.Admin.EditCard(ctx, in)
	if err != nil {
		return err
	}
	fmt.Println("Карта обновлена:", cardLine(1, c))
	return nil
}

func actionToggleBlock(ctx context.Context, d *Deps) error {
	c, err := chooseCard(d.Admin.Cards(), "Выбери карту №: ")
	if err != nil {
		return err
	}
	c, err = d.Admin.ToggleBlocked(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.Blocked {
		fmt.Println("Карта заблокирована.")
	} else {
		fmt.Println("Карта разблокирована.")
	}
	return nil
}

func actionDeleteCard(ctx context.Context, d *Deps) error {
	c, err := chooseCard(d.Admin.Cards(), "Выбери карту №: ")
	if err != nil {
		return err
	}
	if !confirm("Удалить карту " + c.Name + "?") {
		return nil
	}
	if err := d.Admin.DeleteCard(ctx, c.ID); err != nil {
		return err
	}
	fmt.Println("Карта удалена.")
	return nil
}

func actionListTxs(_ context.Context, d *Deps) error {
	fmt.Println("=== Операции ===")
	printTransactions(d.Admin.Transactions())
	return nil
}

func actionAddTx(ctx context.Context, d *Deps) error {
	t, err := d.Admin.AddTransaction(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Операция добавлена:", txLine(1, t))
	if confirm("Заполнить сейчас?") {
		return editTx(ctx, d, t.ID)
	}
	return nil
}

func actionEditTx(ctx context.Context, d *Deps) error {
	t, err := chooseTransaction(d.Admin.Transactions())
	if err != nil {
		return err
	}
	return editTx(ctx, d, t.ID)
}

// editTx asks for every field; the type follows the sign of a new amount.
func editTx(ctx context.Context, d *Deps, id int64) error {
	for _, t := range d.Admin.Transactions() {
		if t.ID != id {
			continue
		}
		in := facade.EditTxInput{
			ID:       id,
			Title:    readStringOptional("Название", t.Title),
			Date:     readStringOptional("Дата", t.Date),
			Amount:   readAmountOptional("Сумма (минус = расход)", t.Amount),
			Category: readStringOptional("Категория", t.Category),
			Icon:     readIconOptional(t.Icon),
		}
		t, err := d.Admin.EditTransaction(ctx, in)
		if err != nil {
			return err
		}
		fmt.Println("Операция обновлена:", txLine(1, t))
		return nil
	}
	return facade.ErrNotFound
}

func actionDeleteTx(ctx context.Context, d *Deps) error {
	t, err := chooseTransaction(d.Admin.Transactions())
	if err != nil {
		return err
	}
	if !confirm("Удалить выбранную операцию?") {
		return nil
	}
	if err := d.Admin.DeleteTransaction(ctx, t.ID); err != nil {
		return err
	}
	fmt.Println("Операция удалена.")
	return nil
}

func actionSummary(ctx context.Context, d *Deps) error {
	fmt.Println("Карт:", len(d.Admin.Cards()), "| операций:", len(d.Admin.Transactions()))
	return actionAnalytics(ctx, d)
}

func actionExportTxs(_ context.Context, d *Deps) error {
	path := readLine("Путь к файлу (напр. history.csv, .json, .yaml): ")
	if path == "" {
		path = "history.csv"
	}
	enc, err := files.EncoderFor(path)
	if err != nil {
		return err
	}
	if err := files.ExportTransactions(d.Admin.Transactions(), path, enc); err != nil {
		return err
	}
	fmt.Println("Экспортировано в", path)
	return nil
}

func actionImportTxs(ctx context.Context, d *Deps) error {
	path := readLine("Путь к файлу для импорта: ")
	if path == "" {
		fmt.Println("Файл не указан")
		return nil
	}
	rows, err := files.ImportFile(path)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("Нет записей для импорта")
		return nil
	}
	n, err := d.Admin.Import(ctx, files.ToTransactions(rows))
	if err != nil {
		return err
	}
	d.Log.Info().Str("file", path).Int("rows", n).Msg("transactions imported")
	fmt.Printf("Импортировано операций: %d.\n", n)
	return nil
}

func actionReset(ctx context.Context, d *Deps) error {
	if !confirm("Сбросить карты и операции к начальным?") {
		return nil
	}
	if err := d.Admin.Reset(ctx); err != nil {
		return err
	}
	fmt.Println("Данные сброшены.")
	return nil
}
