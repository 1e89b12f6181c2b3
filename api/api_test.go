package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sber/api"
	"sber/domain"
	"sber/repo"
	"sber/service"
	"sber/storage"
)

type fixture struct {
	srv *httptest.Server
}

func newFixture(t *testing.T, store storage.Store) fixture {
	t.Helper()
	log := zerolog.Nop()
	engine := service.NewAccountService(
		repo.NewCardRepo(store, log),
		repo.NewTransactionRepo(store, log),
		repo.NewLedger(store),
		domain.Factory{Now: func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) }},
		service.Policy{Floor: decimal.Zero},
		log,
	)
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(engine, store, log)))
	t.Cleanup(srv.Close)
	return fixture{srv: srv}
}

func (f fixture) do(t *testing.T, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, f.srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestHealth(t *testing.T) {
	f := newFixture(t, storage.NewMemoryStore())
	resp, err := http.Get(f.srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("expected a request id header")
	}
}

func TestListCardsSeedsDefaults(t *testing.T) {
	f := newFixture(t, storage.NewMemoryStore())
	resp, err := http.Get(f.srv.URL + "/api/cards")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var cards []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&cards); err != nil {
		t.Fatal(err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0]["balance"] != 45230.5 {
		t.Errorf("balance should be a JSON number, got %#v", cards[0]["balance"])
	}
}

func TestTransferEndpoint(t *testing.T) {
	f := newFixture(t, storage.NewMemoryStore())

	resp, body := f.do(t, http.MethodPost, "/api/transfer", `{"recipient":"Ivan","amount":"500","source_card_id":1}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	card := body["card"].(map[string]any)
	if card["balance"] != 44730.5 {
		t.Errorf("unexpected balance %v", card["balance"])
	}

	resp, body = f.do(t, http.MethodPost, "/api/transfer", `{"recipient":"Ivan","amount":1000000,"source_card_id":1}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d (%v)", resp.StatusCode, body)
	}
	resp, _ = f.do(t, http.MethodPost, "/api/transfer", `{"recipient":"","amount":"5","source_card_id":1}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCardLifecycle(t *testing.T) {
	f := newFixture(t, storage.NewMemoryStore())

	resp, body := f.do(t, http.MethodPost, "/api/cards", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	id := int64(body["id"].(float64))
	path := "/api/cards/" + strconv.FormatInt(id, 10)

	resp, body = f.do(t, http.MethodPut, path, `{"name":"Зарплатная","balance":"1 000,50","blocked":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if body["name"] != "Зарплатная" || body["balance"] != 1000.5 || body["blocked"] != true {
		t.Errorf("unexpected card %v", body)
	}

	resp, _ = f.do(t, http.MethodPut, path, `{"type":"gold"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for bad type, got %d", resp.StatusCode)
	}

	resp, _ = f.do(t, http.MethodDelete, path, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
	resp, _ = f.do(t, http.MethodDelete, path, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestTransactions(t *testing.T) {
	f := newFixture(t, storage.NewMemoryStore())

	resp, body := f.do(t, http.MethodPost, "/api/transactions", `{"title":"Кешбэк","amount":150,"category":"Бонусы","icon":"Gift"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", resp.StatusCode, body)
	}
	if body["type"] != "income" || body["date"] != "14 октября" {
		t.Errorf("unexpected transaction %v", body)
	}

	resp, _ = f.do(t, http.MethodPost, "/api/transactions", `{"title":"X","amount":-5,"type":"income"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for sign mismatch, got %d", resp.StatusCode)
	}

	resp, _ = f.do(t, http.MethodPut, "/api/transactions/424242", `{"title":"X"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}

	r, err := http.Get(f.srv.URL + "/api/transactions?category=" + url.QueryEscape("Бонусы"))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Body.Close()
	var list []map[string]any
	_ = json.NewDecoder(r.Body).Decode(&list)
	if len(list) != 1 {
		t.Errorf("expected 1 filtered transaction, got %d", len(list))
	}
}

func TestRequestsSeeExternalWrites(t *testing.T) {
	inner := storage.NewMemoryStore()
	f := newFixture(t, storage.NewCachedStore(inner))
	f.do(t, http.MethodGet, "/api/cards", "")

	// another session writes behind the cache
	cards := []domain.Card{{ID: 9, Name: "Чужая", Number: "9999", Balance: decimal.NewFromInt(1), Type: domain.CardDebit, Currency: "₽"}}
	if err := repo.NewCardRepo(inner, zerolog.Nop()).Save(context.Background(), cards); err != nil {
		t.Fatal(err)
	}

	resp, body := f.do(t, http.MethodPost, "/api/reload", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := body["cards"].([]any); len(got) != 1 {
		t.Errorf("expected reloaded cards, got %v", got)
	}

	resp, body = f.do(t, http.MethodPost, "/api/reset", "")
	if resp.StatusCode != http.StatusOK || len(body["cards"].([]any)) != 3 {
		t.Errorf("reset should restore defaults, got %d %v", resp.StatusCode, body)
	}
}
