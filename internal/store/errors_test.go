package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorChains(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrAccountNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrAccountExists, ErrDuplicate)

	wrapped := fmt.Errorf("get account: %w", ErrAccountNotFound)
	assert.ErrorIs(t, wrapped, ErrAccountNotFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrAccountNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrAccountNotFound)))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(errors.New("something else")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrAccountExists))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("formats with wrapped error", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection refused")
		err := NewStoreError("account", "create", "insert failed", cause)

		assert.Contains(t, err.Error(), "create operation on account failed")
		assert.Contains(t, err.Error(), "connection refused")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("formats without wrapped error", func(t *testing.T) {
		t.Parallel()
		err := NewStoreError("account", "adjust_balance", "no rows updated", nil)

		assert.Equal(t,
			"adjust_balance operation on account failed: no rows updated",
			err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("supports errors.As", func(t *testing.T) {
		t.Parallel()
		var storeErr *StoreError
		wrapped := fmt.Errorf("outer: %w",
			NewStoreError("account", "get", "scan failed", ErrAccountNotFound))

		assert.ErrorAs(t, wrapped, &storeErr)
		assert.Equal(t, "get", storeErr.Operation)
		assert.ErrorIs(t, wrapped, ErrAccountNotFound)
	})
}
