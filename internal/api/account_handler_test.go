package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santosferr/ledger-api/internal/domain"
	"github.com/santosferr/ledger-api/internal/platform/memory"
	"github.com/santosferr/ledger-api/internal/service"
)

// failingLedgerService returns the configured error from every operation.
type failingLedgerService struct {
	err error
}

func (s *failingLedgerService) CreateAccount(ctx context.Context, name, identifier string) (*domain.Account, error) {
	return nil, s.err
}

func (s *failingLedgerService) Deposit(ctx context.Context, identifier string, amount float64) (*domain.Account, error) {
	return nil, s.err
}

func (s *failingLedgerService) Transfer(ctx context.Context, originID, destinationID string, amount float64) error {
	return s.err
}

func newHandler(t *testing.T) *AccountHandler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.NewLedgerService(memory.NewMemoryAccountStore(), logger)
	require.NoError(t, err)
	return NewAccountHandler(svc)
}

func doJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func createAccount(t *testing.T, h *AccountHandler, name, identifier string) {
	t.Helper()
	body, err := json.Marshal(CreateAccountRequest{Name: name, Identifier: identifier})
	require.NoError(t, err)
	w := doJSON(t, h.CreateAccount, string(body))
	require.Equal(t, http.StatusCreated, w.Code, "fixture account creation failed: %s", w.Body.String())
}

func TestNewAccountHandler_NilService(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewAccountHandler(nil) })
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Parallel()

	t.Run("creates account", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)

		w := doJSON(t, h.CreateAccount, `{"name":"Ana","identifier":"11122233344"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp AccountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "11122233344", resp.Identifier)
		assert.Equal(t, "Ana", resp.Name)
		assert.Zero(t, resp.Balance)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)

		w := doJSON(t, h.CreateAccount, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects short identifier", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)

		w := doJSON(t, h.CreateAccount, `{"name":"Ana","identifier":"123"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects non-numeric identifier", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)

		w := doJSON(t, h.CreateAccount, `{"name":"Ana","identifier":"1112223334a"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)

		w := doJSON(t, h.CreateAccount, `{"identifier":"11122233344"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate identifier returns 403", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)
		createAccount(t, h, "Ana", "11122233344")

		w := doJSON(t, h.CreateAccount, `{"name":"Bia","identifier":"11122233344"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("service failure returns sanitized 500", func(t *testing.T) {
		t.Parallel()
		h := NewAccountHandler(&failingLedgerService{err: errors.New("pg down at db:5432")})

		w := doJSON(t, h.CreateAccount, `{"name":"Ana","identifier":"11122233344"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db:5432")
	})
}

func TestAccountHandler_Deposit(t *testing.T) {
	t.Parallel()

	t.Run("credits and returns the new balance", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)
		createAccount(t, h, "Ana", "11122233344")

		w := doJSON(t, h.Deposit, `{"identifier":"11122233344","amount":500}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "11122233344", resp.Identifier)
		assert.Equal(t, 500.0, resp.Balance)
	})

	t.Run("amount above the limit returns 403", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)
		createAccount(t, h, "Ana", "11122233344")

		w := doJSON(t, h.Deposit, `{"identifier":"11122233344","amount":2500}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "limit")
	})

	t.Run("unknown account returns 404", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)

		w := doJSON(t, h.Deposit, `{"identifier":"99988877766","amount":100}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-positive amount returns 400", func(t *testing.T) {
		t.Parallel()
		h := newHandler(t)
		createAccount(t, h, "Ana", "11122233344")

		w := doJSON(t, h.Deposit, `{"identifier":"11122233344","amount":-10}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_Transfer(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *AccountHandler {
		t.Helper()
		h := newHandler(t)
		createAccount(t, h, "Ana", "11122233344")
		createAccount(t, h, "Bia", "55566677788")
		w := doJSON(t, h.Deposit, `{"identifier":"11122233344","amount":500}`)
		require.Equal(t, http.StatusOK, w.Code)
		return h
	}

	t.Run("moves funds and responds true", func(t *testing.T) {
		t.Parallel()
		h := setup(t)

		w := doJSON(t, h.Transfer,
			`{"origin":"11122233344","destination":"55566677788","amount":500}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true\n", w.Body.String())

		w = doJSON(t, h.Deposit, `{"identifier":"55566677788","amount":1}`)
		var resp BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 501.0, resp.Balance)
	})

	t.Run("insufficient funds returns 403", func(t *testing.T) {
		t.Parallel()
		h := setup(t)

		w := doJSON(t, h.Transfer,
			`{"origin":"11122233344","destination":"55566677788","amount":501}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Insufficient funds")
	})

	t.Run("unknown destination returns 404", func(t *testing.T) {
		t.Parallel()
		h := setup(t)

		w := doJSON(t, h.Transfer,
			`{"origin":"11122233344","destination":"99988877766","amount":100}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("self transfer returns 400", func(t *testing.T) {
		t.Parallel()
		h := setup(t)

		w := doJSON(t, h.Transfer,
			`{"origin":"11122233344","destination":"11122233344","amount":100}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		h := setup(t)

		w := doJSON(t, h.Transfer, `{"origin":"11122233344","amount":100}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestAccountHandler_TransferBody guards the exact success payload shape.
func TestAccountHandler_TransferBody(t *testing.T) {
	t.Parallel()

	h := newHandler(t)
	createAccount(t, h, "Ana", "11122233344")
	createAccount(t, h, "Bia", "55566677788")
	w := doJSON(t, h.Deposit, `{"identifier":"11122233344","amount":200}`)
	require.Equal(t, http.StatusOK, w.Code)

	body, err := json.Marshal(TransferRequest{
		Origin:      "11122233344",
		Destination: "55566677788",
		Amount:      200,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.Write(body)
	req := httptest.NewRequest(http.MethodPost, "/api/transfers", &buf)
	rec := httptest.NewRecorder()
	h.Transfer(rec, req)

	var result bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result)
}
