package memory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/santosferr/ledger-api/internal/domain"
	"github.com/santosferr/ledger-api/internal/store"
)

// MemoryAccountStore implements store.AccountStore with a mutex-guarded map.
// Every operation holds the store lock for its full read-modify-write, which
// makes mutations on the same identifier linearizable with respect to each
// other. Returned accounts are copies; callers never share memory with the
// store's internal state.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewMemoryAccountStore creates an empty in-memory account store.
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		accounts: make(map[string]*domain.Account),
	}
}

// Ensure MemoryAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*MemoryAccountStore)(nil)

// WithTx implements store.AccountStore.WithTx
// The in-memory store has no transaction support; it returns itself so the
// service layer can treat both backends uniformly.
func (s *MemoryAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return s
}

// Exists implements store.AccountStore.Exists
func (s *MemoryAccountStore) Exists(ctx context.Context, identifier string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[identifier]
	return ok, nil
}

// GetByIdentifier implements store.AccountStore.GetByIdentifier
func (s *MemoryAccountStore) GetByIdentifier(
	ctx context.Context,
	identifier string,
) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[identifier]
	if !ok {
		return nil, store.ErrAccountNotFound
	}

	snapshot := *account
	return &snapshot, nil
}

// Create implements store.AccountStore.Create
// The map membership check and insert happen under one lock, so two
// concurrent creates of the same identifier cannot both succeed.
func (s *MemoryAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.Identifier]; ok {
		return store.ErrAccountExists
	}

	stored := *account
	s.accounts[account.Identifier] = &stored
	return nil
}

// AdjustBalance implements store.AccountStore.AdjustBalance
func (s *MemoryAccountStore) AdjustBalance(
	ctx context.Context,
	identifier string,
	delta float64,
) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[identifier]
	if !ok {
		return nil, store.ErrAccountNotFound
	}

	account.Balance += delta
	account.UpdatedAt = time.Now().UTC()

	snapshot := *account
	return &snapshot, nil
}
