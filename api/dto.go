package api

import (
	"encoding/json"
	"strings"

	"sber/domain"
)

// Money goes over the wire as a JSON number, as the web front end stores it.
type cardJSON struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Number   string      `json:"number"`
	Balance  json.Number `json:"balance"`
	Type     string      `json:"type"`
	Currency string      `json:"currency"`
	Blocked  bool        `json:"blocked"`
}

type transactionJSON struct {
	ID       int64       `json:"id"`
	Title    string      `json:"title"`
	Date     string      `json:"date"`
	Amount   json.Number `json:"amount"`
	Type     string      `json:"type"`
	Category string      `json:"category"`
	Icon     string      `json:"icon"`
}

func toCardJSON(c domain.Card) cardJSON {
	return cardJSON{
		ID:       c.ID,
		Name:     c.Name,
		Number:   c.Number,
		Balance:  json.Number(c.Balance.String()),
		Type:     string(c.Type),
		Currency: c.Currency,
		Blocked:  c.Blocked,
	}
}

func toTransactionJSON(t domain.Transaction) transactionJSON {
	return transactionJSON{
		ID:       t.ID,
		Title:    t.Title,
		Date:     t.Date,
		Amount:   json.Number(t.Amount.String()),
		Type:     string(t.Type),
		Category: t.Category,
		Icon:     string(t.Icon),
	}
}

func cardsJSON(cs []domain.Card) []cardJSON {
	out := make([]cardJSON, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCardJSON(c))
	}
	return out
}

func transactionsJSON(ts []domain.Transaction) []transactionJSON {
	out := make([]transactionJSON, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTransactionJSON(t))
	}
	return out
}

// amountText accepts an amount sent either as a JSON number or a string
// such as "1 500,50"; parsing is left to the engine.
type amountText string

func (a *amountText) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*a = amountText(v)
		return nil
	}
	if s == "null" {
		*a = ""
		return nil
	}
	*a = amountText(s)
	return nil
}

type editCardRequest struct {
	Name     *string     `json:"name"`
	Number   *string     `json:"number"`
	Balance  *amountText `json:"balance"`
	Type     *string     `json:"type"`
	Currency *string     `json:"currency"`
	Blocked  *bool       `json:"blocked"`
}

type transactionRequest struct {
	Title    *string     `json:"title"`
	Date     *string     `json:"date"`
	Amount   *amountText `json:"amount"`
	Type     *string     `json:"type"`
	Category *string     `json:"category"`
	Icon     *string     `json:"icon"`
}

type transferRequest struct {
	Recipient    string     `json:"recipient"`
	Amount       amountText `json:"amount"`
	SourceCardID int64      `json:"source_card_id"`
	Comment      string     `json:"comment"`
}

type transferResponse struct {
	Card        cardJSON        `json:"card"`
	Transaction transactionJSON `json:"transaction"`
}

type errorResponse struct {
	Error string `json:"error"`
}
