package handlers

import (
	"net/http"
	"time"

	"github.com/otterbank/bank/internal/models"
)

type balanceResponse struct {
	IBAN      string       `json:"iban"`
	Balance   models.Money `json:"balance"`
	Timestamp time.Time    `json:"timestamp"`
}

type historyResponse struct {
	IBAN         string                `json:"iban"`
	Balance      models.Money          `json:"balance"`
	Timestamp    time.Time             `json:"timestamp"`
	Transactions []transactionResponse `json:"transactions"`
}

// GetBalance handles GET /accounts/{iban}
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	iban := models.IBAN(r.PathValue("iban"))

	balance, err := h.state.Balance(r.Context(), iban)
	if err != nil {
		h.logger.Error("failed to derive balance", "iban", iban, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, balanceResponse{
		IBAN:      string(iban),
		Balance:   balance,
		Timestamp: time.Now().UTC(),
	})
}

// GetHistory handles GET /accounts/{iban}/history
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	iban := models.IBAN(r.PathValue("iban"))

	balance, err := h.state.Balance(r.Context(), iban)
	if err != nil {
		h.logger.Error("failed to derive balance", "iban", iban, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	transactions, err := h.state.History(r.Context(), iban)
	if err != nil {
		h.logger.Error("failed to load history", "iban", iban, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]transactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, newTransactionResponse(tx))
	}

	h.writeJSON(w, http.StatusOK, historyResponse{
		IBAN:         string(iban),
		Balance:      balance,
		Timestamp:    time.Now().UTC(),
		Transactions: out,
	})
}
