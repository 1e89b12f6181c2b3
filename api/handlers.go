package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"sber/domain"
	"sber/facade"
	"sber/service"
	"sber/storage"
)

var errBadRequest = errors.New("bad request")

// Engine is the account engine plus the reload the API runs before every
// request so it sees writes made by other sessions.
type Engine interface {
	facade.Engine
	Load(ctx context.Context) error
}

// Handler serialises every request through one mutex; the engine itself is
// single-threaded.
type Handler struct {
	mu     sync.Mutex
	engine Engine
	cache  interface{ Invalidate() }
	admin  facade.AdminFacade
	bank   facade.BankFacade
	log    zerolog.Logger
}

// NewHandler builds the handler. When store is a read-through cache it is
// dropped before each reload.
func NewHandler(engine Engine, store storage.Store, log zerolog.Logger) *Handler {
	h := &Handler{
		engine: engine,
		admin:  facade.AdminFacade{Engine: engine},
		bank:   facade.BankFacade{Engine: engine},
		log:    log.With().Str("component", "api").Logger(),
	}
	if c, ok := store.(interface{ Invalidate() }); ok {
		h.cache = c
	}
	return h
}

func (h *Handler) synced(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.cache != nil {
			h.cache.Invalidate()
		}
		if err := h.engine.Load(r.Context()); err != nil {
			h.fail(w, err)
			return
		}
		if err := fn(w, r); err != nil {
			h.fail(w, err)
		}
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, facade.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, service.ErrFillAllFields),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyCardName),
		errors.Is(err, domain.ErrEmptyCurrency),
		errors.Is(err, domain.ErrInvalidCardType),
		errors.Is(err, domain.ErrBalanceBelowFloor),
		errors.Is(err, domain.ErrEmptyTxTitle),
		errors.Is(err, domain.ErrEmptyCategory),
		errors.Is(err, domain.ErrInvalidTxType),
		errors.Is(err, domain.ErrUnknownIcon),
		errors.Is(err, domain.ErrTypeSignMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads an optional JSON body; an empty body leaves v untouched and
// reports false.
func decode(r *http.Request, v any) (bool, error) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return true, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id", errBadRequest)
	}
	return id, nil
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, cardsJSON(h.admin.Cards()))
	return nil
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) error {
	c, err := h.admin.AddCard(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, toCardJSON(c))
	return nil
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	var req editCardRequest
	if _, err := decode(r, &req); err != nil {
		return err
	}
	in := facade.EditCardInput{
		ID:       id,
		Name:     req.Name,
		Number:   req.Number,
		Currency: req.Currency,
		Blocked:  req.Blocked,
	}
	if req.Balance != nil {
		b, err := service.ParseAmount(string(*req.Balance))
		if err != nil {
			return err
		}
		in.Balance = &b
	}
	if req.Type != nil {
		t, err := domain.ParseCardType(*req.Type)
		if err != nil {
			return err
		}
		in.Type = &t
	}
	c, err := h.admin.EditCard(r.Context(), in)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, toCardJSON(c))
	return nil
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteCard(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) error {
	txs := h.bank.History(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, transactionsJSON(txs))
	return nil
}

// CreateTransaction adds a blank entry for an empty body, otherwise the
// entry described by the body under a fresh id.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) error {
	var req transactionRequest
	ok, err := decode(r, &req)
	if err != nil {
		return err
	}
	var t domain.Transaction
	if !ok {
		t, err = h.admin.AddTransaction(r.Context())
	} else {
		t, err = h.insert(r, req)
	}
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, toTransactionJSON(t))
	return nil
}

func (h *Handler) insert(r *http.Request, req transactionRequest) (domain.Transaction, error) {
	if req.Title == nil || req.Amount == nil {
		return domain.Transaction{}, service.ErrFillAllFields
	}
	amount, err := service.ParseAmount(string(*req.Amount))
	if err != nil {
		return domain.Transaction{}, err
	}
	t := domain.Transaction{
		Title:    *req.Title,
		Amount:   amount,
		Category: domain.DefaultTxCategory,
		Icon:     domain.IconCircleDollarSign,
	}
	if req.Date != nil {
		t.Date = *req.Date
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Icon != nil {
		if t.Icon, err = domain.ParseIcon(*req.Icon); err != nil {
			return domain.Transaction{}, err
		}
	}
	if req.Type != nil {
		tt, err := domain.ParseTxType(*req.Type)
		if err != nil {
			return domain.Transaction{}, err
		}
		if !domain.TypeAgrees(tt, amount) {
			return domain.Transaction{}, domain.ErrTypeSignMismatch
		}
	}
	return h.engine.InsertTransaction(r.Context(), t)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	var req transactionRequest
	if _, err := decode(r, &req); err != nil {
		return err
	}
	in := facade.EditTxInput{ID: id, Title: req.Title, Date: req.Date, Category: req.Category}
	if req.Amount != nil {
		a, err := service.ParseAmount(string(*req.Amount))
		if err != nil {
			return err
		}
		in.Amount = &a
	}
	if req.Type != nil {
		tt, err := domain.ParseTxType(*req.Type)
		if err != nil {
			return err
		}
		in.Type = &tt
	}
	if req.Icon != nil {
		icon, err := domain.ParseIcon(*req.Icon)
		if err != nil {
			return err
		}
		in.Icon = &icon
	}
	t, err := h.admin.EditTransaction(r.Context(), in)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, toTransactionJSON(t))
	return nil
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteTransaction(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) error {
	var req transferRequest
	if _, err := decode(r, &req); err != nil {
		return err
	}
	res, err := h.bank.Transfer(r.Context(), service.TransferInput{
		Recipient:    req.Recipient,
		Amount:       string(req.Amount),
		SourceCardID: req.SourceCardID,
		Comment:      req.Comment,
	})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, transferResponse{
		Card:        toCardJSON(res.Card),
		Transaction: toTransactionJSON(res.Transaction),
	})
	return nil
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) error {
	if err := h.admin.Reset(r.Context()); err != nil {
		return err
	}
	return h.snapshot(w)
}

// Reload needs no work of its own: every request already reloads.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) error {
	return h.snapshot(w)
}

func (h *Handler) snapshot(w http.ResponseWriter) error {
	writeJSON(w, http.StatusOK, map[string]any{
		"cards":        cardsJSON(h.admin.Cards()),
		"transactions": transactionsJSON(h.admin.Transactions()),
	})
	return nil
}
