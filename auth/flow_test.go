package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sber/auth"
)

func newFlow(t *testing.T, variant string) *auth.Flow {
	t.Helper()
	f, err := auth.NewFlow(auth.Options{Variant: variant, SMSDelay: time.Millisecond, PINDelay: time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func toPIN(t *testing.T, f *auth.Flow) {
	t.Helper()
	if err := f.SubmitUsername("ivan"); err != nil {
		t.Fatal(err)
	}
	if err := f.SubmitPassword("secret"); err != nil {
		t.Fatal(err)
	}
	if err := f.SkipSMS(); err != nil {
		t.Fatal(err)
	}
	if f.Step() != auth.StepPIN {
		t.Fatalf("expected PIN step, got %s", f.Step())
	}
}

func fire(t *testing.T, f *auth.Flow) bool {
	t.Helper()
	p, ok := f.Pending()
	if !ok {
		return false
	}
	return f.Fire(p.Token)
}

func TestFullFlowHappyPath(t *testing.T) {
	f := newFlow(t, "full")
	if f.Step() != auth.StepUsername {
		t.Fatalf("expected username step, got %s", f.Step())
	}
	if err := f.SubmitUsername("ivan"); err != nil {
		t.Fatal(err)
	}
	if err := f.SubmitPassword("anything"); err != nil {
		t.Fatal(err)
	}
	for i, d := range []string{"1", "2", "3", "4"} {
		if err := f.EnterSMSDigit(i, d); err != nil {
			t.Fatal(err)
		}
	}
	p, ok := f.Pending()
	if !ok || p.From != auth.StepSMS || p.To != auth.StepPIN {
		t.Fatalf("expected pending SMS->PIN, got %+v (%v)", p, ok)
	}
	if !f.Fire(p.Token) {
		t.Fatal("expected transition to fire")
	}
	for _, d := range []string{"1", "2", "3", "4", "5"} {
		if err := f.PressPIN(d); err != nil {
			t.Fatal(err)
		}
	}
	moved, err := auth.Await(context.Background(), f)
	if err != nil || !moved {
		t.Fatalf("expected Await to reach main, got %v %v", moved, err)
	}
	if !f.Authenticated() || f.Page() != auth.PageMain {
		t.Errorf("expected main page, got step %s page %q", f.Step(), f.Page())
	}
}

func TestEmptyInputDoesNotAdvance(t *testing.T) {
	f := newFlow(t, "full")
	if err := f.SubmitUsername("   "); !errors.Is(err, auth.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if f.Step() != auth.StepUsername {
		t.Errorf("expected to stay on username, got %s", f.Step())
	}
	_ = f.SubmitUsername("ivan")
	if err := f.SubmitPassword(""); !errors.Is(err, auth.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if f.Step() != auth.StepPassword {
		t.Errorf("expected to stay on password, got %s", f.Step())
	}
}

func TestWrongStep(t *testing.T) {
	f := newFlow(t, "full")
	if err := f.PressPIN("1"); !errors.Is(err, auth.ErrWrongStep) {
		t.Errorf("expected ErrWrongStep, got %v", err)
	}
	if err := f.SubmitPassword("x"); !errors.Is(err, auth.ErrWrongStep) {
		t.Errorf("expected ErrWrongStep, got %v", err)
	}
}

func TestSMSEntry(t *testing.T) {
	f := newFlow(t, "full")
	_ = f.SubmitUsername("ivan")
	_ = f.SubmitPassword("pw")

	if err := f.EnterSMSDigit(0, "a"); !errors.Is(err, auth.ErrNotDigit) {
		t.Fatalf("expected ErrNotDigit, got %v", err)
	}
	if err := f.EnterSMSDigit(0, "12"); !errors.Is(err, auth.ErrNotDigit) {
		t.Fatalf("expected ErrNotDigit for two chars, got %v", err)
	}
	if f.SMSSlots()[0] != "" || f.Focus() != 0 {
		t.Errorf("rejected input must leave the slot unchanged, got %q focus %d", f.SMSSlots()[0], f.Focus())
	}
	for i := 0; i < 3; i++ {
		if err := f.EnterSMSDigit(i, "7"); err != nil {
			t.Fatal(err)
		}
		if f.Focus() != i+1 {
			t.Errorf("after slot %d expected focus %d, got %d", i, i+1, f.Focus())
		}
	}
	if _, ok := f.Pending(); ok {
		t.Error("no transition expected before the last slot")
	}
	if err := f.EnterSMSDigit(4, "1"); !errors.Is(err, auth.ErrSlotRange) {
		t.Errorf("expected ErrSlotRange, got %v", err)
	}
	if err := f.EnterSMSDigit(3, "7"); err != nil {
		t.Fatal(err)
	}
	if f.Focus() != 3 {
		t.Errorf("focus must stay on the last slot, got %d", f.Focus())
	}
	if _, ok := f.Pending(); !ok {
		t.Fatal("expected a pending transition after the last slot")
	}
	if err := f.EnterSMSDigit(1, ""); err != nil {
		t.Fatal(err)
	}
	if _, ok := f.Pending(); ok {
		t.Error("clearing a slot must cancel the pending transition")
	}
}

func TestPINEntryFiveDigitsReachMain(t *testing.T) {
	f := newFlow(t, "full")
	toPIN(t, f)
	for i, d := range []string{"0", "9", "8", "7"} {
		if err := f.PressPIN(d); err != nil {
			t.Fatal(err)
		}
		if f.PINFilled() != i+1 {
			t.Fatalf("expected %d filled, got %d", i+1, f.PINFilled())
		}
		if _, ok := f.Pending(); ok {
			t.Fatalf("no transition expected after %d digits", i+1)
		}
	}
	if err := f.PressPIN("6"); err != nil {
		t.Fatal(err)
	}
	if !fire(t, f) {
		t.Fatal("expected transition after the fifth digit")
	}
	if f.Step() != auth.StepMain {
		t.Errorf("expected main, got %s", f.Step())
	}
}

func TestPINDeleteRemovesLastFilled(t *testing.T) {
	f := newFlow(t, "full")
	toPIN(t, f)
	for _, d := range []string{"1", "2", "3"} {
		_ = f.PressPIN(d)
	}
	if err := f.DeletePIN(); err != nil {
		t.Fatal(err)
	}
	slots := f.PINSlots()
	if slots[0] != "1" || slots[1] != "2" || slots[2] != "" {
		t.Errorf("expected [1 2 _ _ _], got %v", slots)
	}
	if f.Step() != auth.StepPIN {
		t.Errorf("delete must not transition, got %s", f.Step())
	}
	_ = f.PressPIN("4")
	if f.PINSlots()[2] != "4" {
		t.Errorf("next press should refill slot 2, got %v", f.PINSlots())
	}
}

func TestPINDeleteCancelsPendingTransition(t *testing.T) {
	f := newFlow(t, "full")
	toPIN(t, f)
	for _, d := range []string{"1", "2", "3", "4", "5"} {
		_ = f.PressPIN(d)
	}
	stale, ok := f.Pending()
	if !ok {
		t.Fatal("expected pending transition")
	}
	_ = f.DeletePIN()
	if f.Fire(stale.Token) {
		t.Fatal("stale transition must not fire after delete")
	}
	if f.Step() != auth.StepPIN || f.PINFilled() != 4 {
		t.Errorf("expected PIN step with 4 digits, got %s/%d", f.Step(), f.PINFilled())
	}

	_ = f.PressPIN("5")
	fresh, _ := f.Pending()
	if fresh.Token == stale.Token {
		t.Error("a new entry sequence needs a new token")
	}
	if f.Fire(stale.Token) {
		t.Error("old token must stay stale")
	}
	if !f.Fire(fresh.Token) {
		t.Error("fresh token should fire")
	}
}

func TestExtraPINPressesIgnored(t *testing.T) {
	f := newFlow(t, "full")
	toPIN(t, f)
	for _, d := range []string{"1", "2", "3", "4", "5"} {
		_ = f.PressPIN(d)
	}
	first, _ := f.Pending()
	if err := f.PressPIN("9"); err != nil {
		t.Fatal(err)
	}
	second, _ := f.Pending()
	if first.Token != second.Token {
		t.Error("pressing a full PIN must not reschedule")
	}
	if err := f.PressPIN("x"); !errors.Is(err, auth.ErrNotDigit) {
		t.Errorf("expected ErrNotDigit, got %v", err)
	}
}

func TestBackCancelsPendingTransition(t *testing.T) {
	f := newFlow(t, "full")
	_ = f.SubmitUsername("ivan")
	_ = f.SubmitPassword("pw")
	for i := 0; i < auth.SMSLength; i++ {
		_ = f.EnterSMSDigit(i, "1")
	}
	p, _ := f.Pending()
	if err := f.Back(); err != nil {
		t.Fatal(err)
	}
	if f.Step() != auth.StepPassword {
		t.Fatalf("expected password step, got %s", f.Step())
	}
	if f.Fire(p.Token) {
		t.Error("transition must not fire after going back")
	}
	_ = f.SubmitPassword("pw")
	if f.SMSSlots() != [auth.SMSLength]string{} {
		t.Errorf("SMS slots should be cleared on re-entry, got %v", f.SMSSlots())
	}
}

func TestVariants(t *testing.T) {
	short := newFlow(t, "short")
	_ = short.SubmitUsername("ivan")
	if short.Step() != auth.StepPIN {
		t.Errorf("short: expected PIN after login, got %s", short.Step())
	}

	pin := newFlow(t, "pin")
	if pin.Step() != auth.StepPIN {
		t.Errorf("pin: expected to open on PIN, got %s", pin.Step())
	}
	_ = pin.Back()
	if pin.Step() != auth.StepSMS {
		t.Errorf("pin: expected back to SMS, got %s", pin.Step())
	}

	if _, err := auth.NewFlow(auth.Options{Variant: "otp"}); !errors.Is(err, auth.ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestNavigateRequiresMain(t *testing.T) {
	f := newFlow(t, "short")
	if err := f.Navigate(auth.PageCards); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	_ = f.SubmitUsername("ivan")
	for _, d := range []string{"1", "1", "1", "1", "1"} {
		_ = f.PressPIN(d)
	}
	fire(t, f)
	for _, p := range []auth.Page{auth.PageCards, auth.PageTransfer, auth.PageHistory, auth.PageProfile, auth.PageWallet, auth.PageMain} {
		if err := f.Navigate(p); err != nil {
			t.Errorf("Navigate(%s): %v", p, err)
		}
	}
	if err := f.Navigate("settings"); !errors.Is(err, auth.ErrUnknownPage) {
		t.Errorf("expected ErrUnknownPage, got %v", err)
	}
	f.Logout()
	if f.Step() != auth.StepUsername || f.Authenticated() {
		t.Errorf("expected logout to reset, got %s", f.Step())
	}
}

func TestAwaitRespectsContext(t *testing.T) {
	f, err := auth.NewFlow(auth.Options{Variant: "pin", PINDelay: time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{"1", "2", "3", "4", "5"} {
		_ = f.PressPIN(d)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	moved, err := auth.Await(ctx, f)
	if moved || !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled wait, got %v %v", moved, err)
	}
	if f.Step() != auth.StepPIN {
		t.Errorf("cancelled wait must not transition, got %s", f.Step())
	}
}
