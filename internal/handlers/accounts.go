package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/otterbank/bank/internal/models"
)

// CreateChecking handles POST /accounts/create/checking
func (h *Handler) CreateChecking(w http.ResponseWriter, r *http.Request) {
	account, err := h.accounts.CreateChecking(r.Context())
	if err != nil {
		h.logger.Error("failed to create checking account", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, newAccountResponse(account))
}

// CreatePersonalLoan handles POST /accounts/create/personalloan
func (h *Handler) CreatePersonalLoan(w http.ResponseWriter, r *http.Request) {
	account, err := h.accounts.CreatePersonalLoan(r.Context())
	if err != nil {
		h.logger.Error("failed to create personal loan account", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, newAccountResponse(account))
}

// CreateSavings handles POST /accounts/create/{reference}/savings
func (h *Handler) CreateSavings(w http.ResponseWriter, r *http.Request) {
	reference := models.IBAN(r.PathValue("reference"))

	account, err := h.accounts.CreateSavings(r.Context(), reference)
	if errors.Is(err, models.ErrAccountNotFound) {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to create savings account", "reference", reference, "error", err)
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, newAccountResponse(account))
}

// ListAccounts handles GET /accounts, optionally filtered by accountTypes.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	var types []models.AccountType
	for _, value := range r.URL.Query()["accountTypes"] {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				types = append(types, models.AccountType(name))
			}
		}
	}

	accounts, err := h.accounts.List(r.Context(), types)
	if err != nil {
		h.logger.Error("failed to list accounts", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, newAccountResponse(account))
	}
	h.writeJSON(w, http.StatusOK, out)
}
