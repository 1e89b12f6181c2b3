package storage_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"sber/domain"
	"sber/storage"
)

func TestCardsRoundTrip(t *testing.T) {
	in := domain.DefaultCards()
	b, err := storage.EncodeCards(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := storage.DecodeCards(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d cards, got %d", len(in), len(out))
	}
	for i := range in {
		if !in[i].Balance.Equal(out[i].Balance) {
			t.Errorf("card %d balance: %s != %s", in[i].ID, in[i].Balance, out[i].Balance)
		}
		in[i].Balance, out[i].Balance = decimal.Zero, decimal.Zero
		if !reflect.DeepEqual(in[i], out[i]) {
			t.Errorf("card mismatch:\n%+v\n%+v", in[i], out[i])
		}
	}
}

func TestTransactionsRoundTripKeepsOrder(t *testing.T) {
	in := domain.DefaultTransactions()
	b, err := storage.EncodeTransactions(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := storage.DecodeTransactions(b)
	if err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if in[i].ID != out[i].ID || !in[i].Amount.Equal(out[i].Amount) || in[i].Title != out[i].Title {
			t.Errorf("position %d: %+v != %+v", i, in[i], out[i])
		}
	}
}

func TestDecodeWebFrontEndFormat(t *testing.T) {
	raw := `[{"id":1712345678901,"name":"СберКарта","number":"2512","balance":1000.5,"type":"debit","currency":"₽"},
	         {"id":2,"name":"Кредитка","number":"4771","balance":0,"type":"credit","currency":"₽","blocked":true}]`
	cards, err := storage.DecodeCards([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if !cards[0].Balance.Equal(decimal.RequireFromString("1000.5")) {
		t.Errorf("unexpected balance %s", cards[0].Balance)
	}
	if !cards[1].Blocked {
		t.Error("expected second card to be blocked")
	}
}

func TestDecodeRejectsCorruptValues(t *testing.T) {
	cards := map[string]string{
		"not json":     `{oops`,
		"not an array": `{"id":1}`,
		"null":         `null`,
		"string bal":   `[{"id":1,"name":"a","number":"1","balance":"abc","type":"debit","currency":"₽"}]`,
		"bad type":     `[{"id":1,"name":"a","number":"1","balance":1,"type":"gold","currency":"₽"}]`,
		"duplicate id": `[{"id":1,"name":"a","number":"1","balance":1,"type":"debit","currency":"₽"},{"id":1,"name":"b","number":"2","balance":1,"type":"debit","currency":"₽"}]`,
	}
	for name, raw := range cards {
		t.Run("cards/"+name, func(t *testing.T) {
			_, err := storage.DecodeCards([]byte(raw))
			if !storage.IsCorrupt(err) {
				t.Errorf("expected corrupt error, got %v", err)
			}
		})
	}

	txs := map[string]string{
		"unknown icon":  `[{"id":1,"title":"a","date":"1 мая","amount":-1,"type":"expense","category":"c","icon":"Rocket"}]`,
		"sign mismatch": `[{"id":1,"title":"a","date":"1 мая","amount":-1,"type":"income","category":"c","icon":"Coffee"}]`,
		"trailing":      `[] []`,
		"null":          ` null `,
		"number":        `42`,
	}
	for name, raw := range txs {
		t.Run("transactions/"+name, func(t *testing.T) {
			_, err := storage.DecodeTransactions([]byte(raw))
			if !storage.IsCorrupt(err) {
				t.Errorf("expected corrupt error, got %v", err)
			}
		})
	}
}
