package menu

import (
	"context"
	"sort"
)

var actionTitles = map[string]string{
	// банковское приложение
	"main":      "Главный",
	"cards":     "Карты",
	"transfer":  "Перевод",
	"history":   "История",
	"analytics": "Аналитика",
	"profile":   "Профиль",
	"wallet":    "Кошелёк",
	"logout":    "Выйти из аккаунта",

	// админ-панель
	"list_cards":   "Список карт",
	"add_card":     "Добавить карту",
	"edit_card":    "Редактировать карту",
	"toggle_block": "Заблокировать / разблокировать карту",
	"delete_card":  "Удалить карту",
	"list_txs":     "Список операций",
	"add_tx":       "Добавить операцию",
	"edit_tx":      "Редактировать операцию",
	"delete_tx":    "Удалить операцию",
	"summary":      "Сводка",
	"export_txs":   "Экспорт операций (CSV/JSON/YAML)",
	"import_txs":   "Импорт операций (CSV/JSON/YAML)",
	"reset":        "Сбросить данные",

	"exit": "Выход",
}

// Keys lists every registered action in name order.
func Keys() []string {
	out := make([]string, 0, len(actionTitles))
	for k := range actionTitles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func BuildCommands(d *Deps) map[string]Command {
	out := make(map[string]Command, len(actionTitles))
	for key, name := range actionTitles {
		key := key
		out[key] = Command{
			Key:  key,
			Name: name,
			Run:  func(ctx context.Context) error { return Execute(ctx, key, d) },
		}
	}
	return out
}
