package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var errInputClosed = errors.New("ввод закрыт")

var stdin = bufio.NewReader(os.Stdin)

// readLineErr reports errInputClosed once stdin is exhausted.
func readLineErr(prompt string) (string, error) {
	fmt.Print(prompt)
	s, err := stdin.ReadString('\n')
	if err != nil && (s == "" || !errors.Is(err, io.EOF)) {
		return "", errInputClosed
	}
	return strings.TrimSpace(s), nil
}

func readLine(prompt string) string {
	s, _ := readLineErr(prompt)
	return s
}

func ReadIndex(count int) (int, error) {
	s, err := readLineErr(fmt.Sprintf("Выбор (1..%d): ", count))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("неверный ввод")
	}
	return n, nil
}

func WaitEnter() {
	fmt.Print("\nНажмите Enter для продолжения...")
	_, _ = stdin.ReadString('\n')
}

func readInt(prompt string) (int, error) {
	return strconv.Atoi(readLine(prompt))
}

func confirm(prompt string) bool {
	s := strings.ToLower(readLine(prompt + " [y/N]: "))
	return s == "y" || s == "yes" || s == "д" || s == "да"
}
