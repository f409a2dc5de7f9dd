package handlers

import (
	"net/http"

	"github.com/otterbank/bank/internal/models"
)

type depositRequest struct {
	To     models.IBAN  `json:"to"`
	Amount models.Money `json:"amount"`
}

// Deposit handles POST /transfers/deposit
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.admission.Submit(r.Context(), models.NewDeposit(req.To, req.Amount))
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newTransactionResponse(tx))
}

type withdrawRequest struct {
	From   models.IBAN  `json:"from"`
	Amount models.Money `json:"amount"`
}

// Withdraw handles POST /transfers/withdraw
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.admission.Submit(r.Context(), models.NewWithdrawal(req.From, req.Amount))
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newTransactionResponse(tx))
}

type transferRequest struct {
	From   models.IBAN  `json:"from"`
	To     models.IBAN  `json:"to"`
	Amount models.Money `json:"amount"`
}

// Transfer handles POST /transfers/transfer
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.admission.Submit(r.Context(), models.NewTransfer(req.From, req.To, req.Amount))
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newTransactionResponse(tx))
}
