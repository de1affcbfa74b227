package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/santosferr/ledger-api/internal/domain"
	"github.com/santosferr/ledger-api/internal/store"
)

// DepositCeiling is the maximum amount accepted by a single deposit.
// This is a fixed policy constant of the ledger, not a configuration value.
const DepositCeiling float64 = 2000

// Credit-leg retry policy for transfers. Once the debit has been applied the
// service is committed to completing the credit, so transient store failures
// on the second leg are retried before the operation is escalated.
const (
	defaultCreditAttempts   = 3
	defaultCreditRetryDelay = 50 * time.Millisecond
)

// LedgerService provides the account ledger operations: account creation,
// deposits bounded by the per-transaction ceiling, and atomic transfers
// between two accounts.
type LedgerService interface {
	// CreateAccount creates a new account with a zero balance.
	// Returns ErrInvalidInput, ErrAccountExists, or a LedgerError.
	CreateAccount(ctx context.Context, name, identifier string) (*domain.Account, error)

	// Deposit adds amount to the account's balance and returns the updated
	// account. Returns ErrInvalidInput, ErrDepositLimitExceeded,
	// ErrAccountNotFound, or a LedgerError.
	Deposit(ctx context.Context, identifier string, amount float64) (*domain.Account, error)

	// Transfer atomically moves amount from the origin account to the
	// destination account. Returns ErrInvalidInput, ErrAccountNotFound,
	// ErrInsufficientFunds, or a LedgerError.
	Transfer(ctx context.Context, originID, destinationID string, amount float64) error
}

// ledgerServiceImpl implements the LedgerService interface.
// It holds no per-request state: the lock table and the store are shared
// across all requests, so concurrency correctness is a property of the
// service, not of instance lifetime.
type ledgerServiceImpl struct {
	accounts store.AccountStore
	locks    *accountLocks
	logger   *slog.Logger

	creditAttempts   int
	creditRetryDelay time.Duration
}

// NewLedgerService creates a new LedgerService backed by the given account
// store. Returns an error if any dependency is nil.
func NewLedgerService(accounts store.AccountStore, logger *slog.Logger) (LedgerService, error) {
	if accounts == nil {
		return nil, fmt.Errorf("account store cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &ledgerServiceImpl{
		accounts:         accounts,
		locks:            newAccountLocks(),
		logger:           logger.With("component", "ledger_service"),
		creditAttempts:   defaultCreditAttempts,
		creditRetryDelay: defaultCreditRetryDelay,
	}, nil
}

// CreateAccount creates a new account with the given name and identifier.
// Validation runs before any store call, and the existence check runs before
// the write; the store's uniqueness constraint still has the last word when
// two creations race.
func (s *ledgerServiceImpl) CreateAccount(
	ctx context.Context,
	name, identifier string,
) (*domain.Account, error) {
	account, err := domain.NewAccount(name, identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.locks.lock(identifier)
	defer s.locks.unlock(identifier)

	exists, err := s.accounts.Exists(ctx, identifier)
	if err != nil {
		s.logger.Error("failed to check account existence",
			"identifier", identifier,
			"error", err)
		return nil, NewLedgerError("create_account", "existence check failed", err)
	}
	if exists {
		return nil, ErrAccountExists
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			// Lost the creation race; surface the same outcome as the
			// explicit existence check.
			return nil, ErrAccountExists
		}
		s.logger.Error("failed to create account",
			"identifier", identifier,
			"error", err)
		return nil, NewLedgerError("create_account", "store create failed", err)
	}

	s.logger.Info("account created",
		"identifier", account.Identifier)
	return account, nil
}

// Deposit adds amount to the identified account's balance.
// Checks run cheapest-first: amount and identifier format, then the ceiling,
// then account existence, and only then the balance mutation.
func (s *ledgerServiceImpl) Deposit(
	ctx context.Context,
	identifier string,
	amount float64,
) (*domain.Account, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateIdentifier(identifier); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if amount > DepositCeiling {
		return nil, ErrDepositLimitExceeded
	}

	s.locks.lock(identifier)
	defer s.locks.unlock(identifier)

	exists, err := s.accounts.Exists(ctx, identifier)
	if err != nil {
		s.logger.Error("failed to check account existence",
			"identifier", identifier,
			"error", err)
		return nil, NewLedgerError("deposit", "existence check failed", err)
	}
	if !exists {
		return nil, ErrAccountNotFound
	}

	account, err := s.accounts.AdjustBalance(ctx, identifier, amount)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("failed to credit deposit",
			"identifier", identifier,
			"error", err)
		return nil, NewLedgerError("deposit", "balance adjustment failed", err)
	}

	s.logger.Debug("deposit applied",
		"identifier", identifier,
		"balance", account.Balance)
	return account, nil
}

// Transfer moves amount from the origin account to the destination account.
//
// The operation walks a fixed sequence: validate, check existence, check
// funds, debit, credit. Both account locks are held (in lexicographic order)
// from the existence check through the final credit, so the funds check
// cannot be invalidated by a concurrent debit and the pair of balances is
// never observed mid-transfer by another ledger operation. Once the debit
// has been applied, the credit leg is retried on transient failures; if the
// retries are exhausted the imbalance is logged for manual reconciliation
// and the call fails.
func (s *ledgerServiceImpl) Transfer(
	ctx context.Context,
	originID, destinationID string,
	amount float64,
) error {
	// Validating
	if err := domain.ValidateAmount(amount); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateIdentifier(originID); err != nil {
		return fmt.Errorf("%w: origin %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateIdentifier(destinationID); err != nil {
		return fmt.Errorf("%w: destination %v", ErrInvalidInput, err)
	}
	if originID == destinationID {
		return fmt.Errorf("%w: origin and destination are the same account", ErrInvalidInput)
	}

	s.locks.lockPair(originID, destinationID)
	defer s.locks.unlockPair(originID, destinationID)

	// CheckingExistence
	for _, identifier := range []string{originID, destinationID} {
		exists, err := s.accounts.Exists(ctx, identifier)
		if err != nil {
			s.logger.Error("failed to check account existence",
				"identifier", identifier,
				"error", err)
			return NewLedgerError("transfer", "existence check failed", err)
		}
		if !exists {
			return ErrAccountNotFound
		}
	}

	// CheckingFunds
	origin, err := s.accounts.GetByIdentifier(ctx, originID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		s.logger.Error("failed to read origin balance",
			"identifier", originID,
			"error", err)
		return NewLedgerError("transfer", "balance read failed", err)
	}
	if origin.Balance-amount < 0 {
		return ErrInsufficientFunds
	}

	// Debiting and Crediting. A store that supports multi-key transactions
	// applies both legs as one atomic unit: a failed credit rolls the debit
	// back, so no reconciliation path is needed. Stores without that
	// capability fall through to the two-leg protocol below.
	if transferStore, ok := s.accounts.(store.TransferStore); ok {
		if err := transferStore.TransferBalances(ctx, originID, destinationID, amount); err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				return ErrAccountNotFound
			}
			s.logger.Error("atomic transfer failed, rolled back",
				"origin", originID,
				"destination", destinationID,
				"error", err)
			return NewLedgerError("transfer", "atomic transfer failed", err)
		}

		s.logger.Info("transfer completed",
			"origin", originID,
			"destination", destinationID,
			"amount", amount)
		return nil
	}

	// Debiting
	if _, err := s.accounts.AdjustBalance(ctx, originID, -amount); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		s.logger.Error("failed to debit origin",
			"origin", originID,
			"error", err)
		return NewLedgerError("transfer", "debit leg failed", err)
	}

	// Crediting. The debit is durable at this point, so failure here is no
	// longer a clean rejection: retry, and escalate only when retries are
	// exhausted.
	if err := s.creditWithRetry(ctx, destinationID, amount); err != nil {
		s.logger.Error("transfer debited origin without matching credit; manual reconciliation required",
			"origin", originID,
			"destination", destinationID,
			"amount", amount,
			"attempts", s.creditAttempts,
			"error", err)
		return &LedgerError{
			Operation: "transfer",
			Message:   "credit leg failed after debit was applied",
			Err:       err,
		}
	}

	s.logger.Info("transfer completed",
		"origin", originID,
		"destination", destinationID,
		"amount", amount)
	return nil
}

// creditWithRetry applies the credit leg of a transfer, retrying transient
// store failures up to the configured number of attempts.
func (s *ledgerServiceImpl) creditWithRetry(
	ctx context.Context,
	destinationID string,
	amount float64,
) error {
	var lastErr error
	for attempt := 1; attempt <= s.creditAttempts; attempt++ {
		_, lastErr = s.accounts.AdjustBalance(ctx, destinationID, amount)
		if lastErr == nil {
			return nil
		}

		// Accounts are never deleted, so a missing destination here cannot
		// be fixed by retrying.
		if errors.Is(lastErr, store.ErrAccountNotFound) {
			return lastErr
		}

		if attempt < s.creditAttempts {
			s.logger.Warn("credit leg failed, retrying",
				"destination", destinationID,
				"attempt", attempt,
				"error", lastErr)

			select {
			case <-ctx.Done():
				return fmt.Errorf("credit retry aborted: %w", ctx.Err())
			case <-time.After(s.creditRetryDelay):
			}
		}
	}
	return lastErr
}
