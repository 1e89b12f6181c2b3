package menu

import (
	"context"
	"errors"
	"fmt"
)

func Run(ctx context.Context, m Menu, d *Deps) {
	cmds := BuildCommands(d)
	for {
		if ctx.Err() != nil {
			return
		}
		Draw(m)
		idx, err := ReadIndex(len(m.Items))
		if errors.Is(err, errInputClosed) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Println("Неверный ввод")
			WaitEnter()
			fmt.Println()
			continue
		}

		// Берём выбранный пункт меню
		item := m.Items[idx-1]
		key := item.Key

		if key == "exit" || key == "" {
			fmt.Println("Пока!")
			return
		}

		cmd := WithTiming(cmds[key], d.Log, d.TimingsFile)
		if err := cmd.Run(ctx); err != nil {
			if errors.Is(err, errInputClosed) || errors.Is(err, context.Canceled) {
				return
			}
			fmt.Println("Ошибка:", err)
		}

		WaitEnter()
		fmt.Println()
	}
}
