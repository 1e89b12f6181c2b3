// Package auth implements the mock sign-in flow: a sequence of gated steps
// that accept any non-empty input and end on the main screen.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SMSLength = 4
	PINLength = 5
)

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrNotDigit         = errors.New("input must be a single digit")
	ErrSlotRange        = errors.New("slot index out of range")
	ErrWrongStep        = errors.New("action is not allowed at this step")
	ErrNotAuthenticated = errors.New("not signed in")
	ErrUnknownPage      = errors.New("unknown page")
)

// Transition is a scheduled auto-advance. Token identifies it; a transition
// whose token is no longer current is stale and never applies.
type Transition struct {
	Token string
	From  Step
	To    Step
	Delay time.Duration
}

type Options struct {
	Variant  string
	SMSDelay time.Duration
	PINDelay time.Duration
}

// Flow is the sign-in state machine. It is not safe for concurrent use.
type Flow struct {
	v        variant
	pos      int
	smsDelay time.Duration
	pinDelay time.Duration

	username string
	password string
	sms      [SMSLength]string
	focus    int
	pin      [PINLength]string
	page     Page
	pending  *Transition

	newToken func() string
}

func NewFlow(o Options) (*Flow, error) {
	v, err := lookupVariant(o.Variant)
	if err != nil {
		return nil, err
	}
	f := &Flow{
		v:        v,
		smsDelay: o.SMSDelay,
		pinDelay: o.PINDelay,
		newToken: uuid.NewString,
	}
	f.reset()
	return f, nil
}

func (f *Flow) reset() {
	f.pos = f.v.start
	f.username, f.password = "", ""
	f.sms = [SMSLength]string{}
	f.focus = 0
	f.pin = [PINLength]string{}
	f.page = ""
	f.pending = nil
}

// Step is the current step; StepMain once every gate is passed.
func (f *Flow) Step() Step {
	if f.pos >= len(f.v.steps) {
		return StepMain
	}
	return f.v.steps[f.pos]
}

func (f *Flow) Authenticated() bool { return f.Step() == StepMain }

func (f *Flow) Username() string { return f.username }

func (f *Flow) Page() Page { return f.page }

func (f *Flow) SMSSlots() [SMSLength]string { return f.sms }

// Focus is the SMS slot that receives the next digit.
func (f *Flow) Focus() int { return f.focus }

func (f *Flow) PINSlots() [PINLength]string { return f.pin }

func (f *Flow) PINFilled() int {
	n := 0
	for _, d := range f.pin {
		if d != "" {
			n++
		}
	}
	return n
}

// Pending returns the scheduled transition, if any.
func (f *Flow) Pending() (Transition, bool) {
	if f.pending == nil {
		return Transition{}, false
	}
	return *f.pending, true
}

func (f *Flow) SubmitUsername(s string) error {
	if f.Step() != StepUsername {
		return ErrWrongStep
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmptyInput
	}
	f.username = s
	f.advance()
	return nil
}

// SubmitPassword accepts any non-empty password; nothing is verified.
func (f *Flow) SubmitPassword(s string) error {
	if f.Step() != StepPassword {
		return ErrWrongStep
	}
	if strings.TrimSpace(s) == "" {
		return ErrEmptyInput
	}
	f.password = s
	f.advance()
	return nil
}

// EnterSMSDigit writes v into slot i. v is one digit or empty (clears the
// slot). A digit moves focus to the next slot; a full code schedules the
// move to the next step.
func (f *Flow) EnterSMSDigit(i int, v string) error {
	if f.Step() != StepSMS {
		return ErrWrongStep
	}
	if i < 0 || i >= SMSLength {
		return ErrSlotRange
	}
	if v != "" && !isDigit(v) {
		return ErrNotDigit
	}
	f.sms[i] = v
	if v == "" {
		f.cancel()
		return nil
	}
	if i < SMSLength-1 {
		f.focus = i + 1
	}
	if full(f.sms[:]) {
		f.schedule(StepSMS, f.smsDelay)
	}
	return nil
}

// SkipSMS leaves the SMS step without a code.
func (f *Flow) SkipSMS() error {
	if f.Step() != StepSMS {
		return ErrWrongStep
	}
	f.cancel()
	f.advance()
	return nil
}

// PressPIN fills the first empty PIN slot. Presses on a full PIN are ignored.
func (f *Flow) PressPIN(d string) error {
	if f.Step() != StepPIN {
		return ErrWrongStep
	}
	if !isDigit(d) {
		return ErrNotDigit
	}
	idx := -1
	for i, v := range f.pin {
		if v == "" {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	f.pin[idx] = d
	if idx == PINLength-1 {
		f.schedule(StepPIN, f.pinDelay)
	}
	return nil
}

// DeletePIN clears the last filled slot and drops any pending transition.
func (f *Flow) DeletePIN() error {
	if f.Step() != StepPIN {
		return ErrWrongStep
	}
	for i := PINLength - 1; i >= 0; i-- {
		if f.pin[i] != "" {
			f.pin[i] = ""
			break
		}
	}
	f.cancel()
	return nil
}

// Fire applies the pending transition identified by token. It reports
// false for a stale token or when the flow has left the transition's step.
func (f *Flow) Fire(token string) bool {
	p := f.pending
	if p == nil || p.Token != token || f.Step() != p.From {
		return false
	}
	f.pending = nil
	f.advance()
	return true
}

// Back returns to the previous gated step, clearing the digit slots of the
// steps involved.
func (f *Flow) Back() error {
	if f.Authenticated() {
		return ErrWrongStep
	}
	f.cancel()
	f.clearSlots(f.Step())
	if f.pos > 0 {
		f.pos--
	}
	f.clearSlots(f.Step())
	return nil
}

func (f *Flow) Navigate(p Page) error {
	if !f.Authenticated() {
		return ErrNotAuthenticated
	}
	if !p.Valid() {
		return ErrUnknownPage
	}
	f.page = p
	return nil
}

// Logout returns the flow to its opening step.
func (f *Flow) Logout() { f.reset() }

func (f *Flow) advance() {
	f.pos++
	if f.Step() == StepMain {
		f.page = PageMain
	}
}

func (f *Flow) schedule(from Step, delay time.Duration) {
	to := StepMain
	if f.pos+1 < len(f.v.steps) {
		to = f.v.steps[f.pos+1]
	}
	f.pending = &Transition{Token: f.newToken(), From: from, To: to, Delay: delay}
}

func (f *Flow) cancel() { f.pending = nil }

func (f *Flow) clearSlots(s Step) {
	switch s {
	case StepSMS:
		f.sms = [SMSLength]string{}
		f.focus = 0
	case StepPIN:
		f.pin = [PINLength]string{}
	}
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func full(slots []string) bool {
	for _, s := range slots {
		if s == "" {
			return false
		}
	}
	return true
}
