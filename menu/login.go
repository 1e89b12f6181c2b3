package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sber/auth"
)

const backKey = "<"

// Login walks the sign-in steps on stdin until the flow reaches the main
// screen. Any non-empty input is accepted. "<" goes one step back.
func Login(ctx context.Context, d *Deps) error {
	f := d.Flow
	for !f.Authenticated() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch f.Step() {
		case auth.StepUsername:
			err = loginUsername(f)
		case auth.StepPassword:
			err = loginPassword(f)
		case auth.StepSMS:
			err = loginSMS(f)
		case auth.StepPIN:
			err = loginPIN(f)
		}
		if errors.Is(err, errInputClosed) {
			return err
		}
		if err != nil {
			fmt.Println("Ошибка:", describeAuthErr(err))
			continue
		}
		if _, pending := f.Pending(); pending {
			if _, err := auth.Await(ctx, f); err != nil {
				return err
			}
		}
	}
	d.Log.Info().Str("user", f.Username()).Msg("signed in")
	fmt.Printf("\nДобро пожаловать, %s!\n\n", f.Username())
	return nil
}

func describeAuthErr(err error) string {
	switch {
	case errors.Is(err, auth.ErrEmptyInput):
		return "поле не может быть пустым"
	case errors.Is(err, auth.ErrNotDigit):
		return "допустимы только цифры"
	default:
		return err.Error()
	}
}

func loginUsername(f *auth.Flow) error {
	fmt.Println("==== СберБанк Онлайн ====")
	s, err := readLineErr("Логин: ")
	if err != nil {
		return err
	}
	return f.SubmitUsername(s)
}

func loginPassword(f *auth.Flow) error {
	s, err := readLineErr("Пароль (< назад): ")
	if err != nil {
		return err
	}
	if s == backKey {
		return f.Back()
	}
	return f.SubmitPassword(s)
}

// loginSMS types the code digit by digit into the slots starting at the
// focused one. An empty line skips the step.
func loginSMS(f *auth.Flow) error {
	fmt.Printf("Код из СМС отправлен. Повторно через 1:59\n")
	s, err := readLineErr(fmt.Sprintf("Код (%d цифры, пусто = пропустить, < назад): ", auth.SMSLength))
	if err != nil {
		return err
	}
	switch s {
	case "":
		return f.SkipSMS()
	case backKey:
		return f.Back()
	}
	for _, r := range s {
		if err := f.EnterSMSDigit(f.Focus(), string(r)); err != nil {
			return err
		}
		if _, pending := f.Pending(); pending {
			break
		}
	}
	slots := f.SMSSlots()
	fmt.Println(renderSlots(slots[:]))
	return nil
}

// loginPIN presses the keypad: digits fill the next slot, "-" deletes the
// last one.
func loginPIN(f *auth.Flow) error {
	s, err := readLineErr(fmt.Sprintf("ПИН-код (%d цифр, - удалить, < назад): ", auth.PINLength))
	if err != nil {
		return err
	}
	if s == backKey {
		return f.Back()
	}
	for _, r := range strings.ReplaceAll(s, " ", "") {
		if r == '-' {
			err = f.DeletePIN()
		} else {
			err = f.PressPIN(string(r))
		}
		if err != nil {
			return err
		}
	}
	fmt.Println(renderPIN(f.PINFilled()))
	return nil
}

func renderSlots(slots []string) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		if s == "" {
			s = "_"
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func renderPIN(filled int) string {
	return strings.Repeat("● ", filled) + strings.Repeat("○ ", auth.PINLength-filled)
}
