package auth

import (
	"errors"
	"fmt"
)

type Step int

const (
	StepUsername Step = iota
	StepPassword
	StepSMS
	StepPIN
	StepMain
)

func (s Step) String() string {
	switch s {
	case StepUsername:
		return "username"
	case StepPassword:
		return "password"
	case StepSMS:
		return "sms"
	case StepPIN:
		return "pin"
	case StepMain:
		return "main"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Page is a screen reachable by direct jump once the flow reaches Main.
type Page string

const (
	PageMain     Page = "main"
	PageCards    Page = "cards"
	PageTransfer Page = "transfer"
	PageHistory  Page = "history"
	PageProfile  Page = "profile"
	PageWallet   Page = "wallet"
)

var pages = map[Page]bool{
	PageMain: true, PageCards: true, PageTransfer: true,
	PageHistory: true, PageProfile: true, PageWallet: true,
}

func (p Page) Valid() bool { return pages[p] }

var ErrUnknownVariant = errors.New("unknown auth variant")

// variant is the ordered list of gated steps before Main and the step the
// flow opens on.
type variant struct {
	steps []Step
	start int
}

var variants = map[string]variant{
	"full":  {steps: []Step{StepUsername, StepPassword, StepSMS, StepPIN}},
	"short": {steps: []Step{StepUsername, StepPIN}},
	"pin":   {steps: []Step{StepSMS, StepPIN}, start: 1},
}

func lookupVariant(name string) (variant, error) {
	v, ok := variants[name]
	if !ok {
		return variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}
