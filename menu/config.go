package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrEmptyMenu  = errors.New("menu has no items")
	ErrUnknownKey = errors.New("unknown menu action")
)

// Load reads a menu file: a JSON array of {key, field}. Every key must be a
// registered action.
func Load(path string) (Menu, error) {
	f, err := os.Open(path)
	if err != nil {
		return Menu{}, err
	}
	defer f.Close()

	var items []Item
	if err := json.NewDecoder(f).Decode(&items); err != nil {
		return Menu{}, fmt.Errorf("menu %s: %w", path, err)
	}
	m := Menu{Items: items}
	if err := m.Validate(); err != nil {
		return Menu{}, fmt.Errorf("menu %s: %w", path, err)
	}
	return m, nil
}

func (m Menu) Validate() error {
	if len(m.Items) == 0 {
		return ErrEmptyMenu
	}
	for _, it := range m.Items {
		if _, ok := actionTitles[it.Key]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, it.Key)
		}
	}
	return nil
}
