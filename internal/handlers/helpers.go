package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/otterbank/bank/internal/models"
	"github.com/otterbank/bank/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type transactionResponse struct {
	ID        string       `json:"id"`
	From      string       `json:"from"`
	To        string       `json:"to"`
	Amount    models.Money `json:"amount"`
	Timestamp time.Time    `json:"timestamp"`
}

func newTransactionResponse(tx *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID.String(),
		From:      tx.From.String(),
		To:        tx.To.String(),
		Amount:    tx.Amount,
		Timestamp: tx.Timestamp,
	}
}

type accountResponse struct {
	IBAN             string `json:"iban"`
	AccountType      string `json:"accountType"`
	ReferenceAccount string `json:"referenceAccount,omitempty"`
}

func newAccountResponse(account *models.Account) accountResponse {
	resp := accountResponse{
		IBAN:        string(account.IBAN),
		AccountType: string(account.Type),
	}
	if ref, ok := account.ReferenceCheckingAccount(); ok {
		resp.ReferenceAccount = string(ref)
	}
	return resp
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

// writeSubmitError maps a Submit failure to a response: policy rejections are
// 422 with the cause, everything else is an internal fault.
func (h *Handler) writeSubmitError(w http.ResponseWriter, err error) {
	var violation *service.PolicyViolation
	if errors.As(err, &violation) {
		h.writeError(w, http.StatusUnprocessableEntity, violation.Cause)
		return
	}
	h.logger.Error("unexpected error during submit", "error", err)
	h.writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeJSON(r *http.Request, into any) error {
	return json.NewDecoder(r.Body).Decode(into)
}
