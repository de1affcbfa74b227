package api

import (
	"net/http"

	"github.com/santosferr/ledger-api/internal/api/shared"
	"github.com/santosferr/ledger-api/internal/service"
)

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	ledgerService service.LedgerService
}

// NewAccountHandler creates a new AccountHandler.
// Panics if ledgerService is nil, as this is a programming error.
func NewAccountHandler(ledgerService service.LedgerService) *AccountHandler {
	if ledgerService == nil {
		panic("ledgerService cannot be nil")
	}
	return &AccountHandler{
		ledgerService: ledgerService,
	}
}

// CreateAccount handles POST /api/accounts requests.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.ledgerService.CreateAccount(r.Context(), req.Name, req.Identifier)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AccountResponse{
		Identifier: account.Identifier,
		Name:       account.Name,
		Balance:    account.Balance,
	})
}

// Deposit handles POST /api/deposits requests.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.ledgerService.Deposit(r.Context(), req.Identifier, req.Amount)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BalanceResponse{
		Identifier: account.Identifier,
		Balance:    account.Balance,
	})
}

// Transfer handles POST /api/transfers requests.
// A successful transfer responds with the JSON literal true, the contract
// the ledger's existing clients expect.
func (h *AccountHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.ledgerService.Transfer(r.Context(), req.Origin, req.Destination, req.Amount); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, true)
}
