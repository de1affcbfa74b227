package api

// Common request/response structures

// CreateAccountRequest defines the payload for the account creation endpoint.
type CreateAccountRequest struct {
	Name       string `json:"name"       validate:"required"`
	Identifier string `json:"identifier" validate:"required,len=11,numeric"`
}

// DepositRequest defines the payload for the deposit endpoint.
type DepositRequest struct {
	Identifier string  `json:"identifier" validate:"required,len=11,numeric"`
	Amount     float64 `json:"amount"     validate:"required,gt=0"`
}

// TransferRequest defines the payload for the transfer endpoint.
type TransferRequest struct {
	Origin      string  `json:"origin"      validate:"required,len=11,numeric"`
	Destination string  `json:"destination" validate:"required,len=11,numeric"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
}

// AccountResponse defines the representation of an account returned by the
// creation endpoint.
type AccountResponse struct {
	Identifier string  `json:"identifier"`
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
}

// BalanceResponse defines the representation returned after a deposit.
type BalanceResponse struct {
	Identifier string  `json:"identifier"`
	Balance    float64 `json:"balance"`
}
