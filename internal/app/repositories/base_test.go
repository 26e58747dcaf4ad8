package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interconnect/backend/internal/pkg/apperrors"
)

func TestStoreErr(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		err := storeErr("error listing users", fmt.Errorf("query: %w", context.DeadlineExceeded))

		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		var ce *apperrors.CustomError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, apperrors.CodeStoreTimeout, ce.Code)
		assert.Equal(t, "internal server error", apperrors.PublicMessage(err))
	})

	t.Run("other failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := storeErr("error listing users", cause)

		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
		assert.ErrorIs(t, err, cause)
		var ce *apperrors.CustomError
		require.ErrorAs(t, err, &ce)
		assert.Empty(t, ce.Code)
	})
}

func TestWithTimeout_Default(t *testing.T) {
	ctx, cancel := pgBase{}.withTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.LessOrEqual(t, time.Until(deadline), defaultQueryTimeout)
}
