package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/santosferr/ledger-api/internal/domain"
	"github.com/santosferr/ledger-api/internal/store"
)

// MockAccountStore is a testify mock implementation of store.AccountStore.
type MockAccountStore struct {
	mock.Mock
}

var _ store.AccountStore = (*MockAccountStore)(nil)

func (m *MockAccountStore) Exists(ctx context.Context, identifier string) (bool, error) {
	args := m.Called(ctx, identifier)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountStore) GetByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	args := m.Called(ctx, identifier)
	if acc := args.Get(0); acc != nil {
		return acc.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) AdjustBalance(ctx context.Context, identifier string, delta float64) (*domain.Account, error) {
	args := m.Called(ctx, identifier, delta)
	if acc := args.Get(0); acc != nil {
		return acc.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	args := m.Called(tx)
	return args.Get(0).(store.AccountStore)
}
