package domain

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownIcon = errors.New("unknown icon")

// Icon is one of the symbolic names the front ends know how to render.
type Icon string

const (
	IconCircleDollarSign Icon = "CircleDollarSign"
	IconShoppingCart     Icon = "ShoppingCart"
	IconCoffee           Icon = "Coffee"
	IconCar              Icon = "Car"
	IconSmartphone       Icon = "Smartphone"
	IconHome             Icon = "Home"
	IconBriefcase        Icon = "Briefcase"
	IconGift             Icon = "Gift"
	IconArrowUpRight     Icon = "ArrowUpRight"
	IconArrowDownLeft    Icon = "ArrowDownLeft"
	IconUtensils         Icon = "Utensils"
	IconHeart            Icon = "Heart"
)

var iconGlyphs = map[Icon]string{
	IconCircleDollarSign: "¤",
	IconShoppingCart:     "🛒",
	IconCoffee:           "☕",
	IconCar:              "🚕",
	IconSmartphone:       "📱",
	IconHome:             "🏠",
	IconBriefcase:        "💼",
	IconGift:             "🎁",
	IconArrowUpRight:     "↗",
	IconArrowDownLeft:    "↙",
	IconUtensils:         "🍴",
	IconHeart:            "♥",
}

func (i Icon) Valid() bool {
	_, ok := iconGlyphs[i]
	return ok
}

// Glyph returns the terminal symbol for the icon.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconCircleDollarSign]
}

func ParseIcon(s string) (Icon, error) {
	i := Icon(s)
	if !i.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownIcon, s)
	}
	return i, nil
}

func (i *Icon) UnmarshalText(b []byte) error {
	v, err := ParseIcon(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Icons lists every supported icon in name order.
func Icons() []Icon {
	out := make([]Icon, 0, len(iconGlyphs))
	for i := range iconGlyphs {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}
