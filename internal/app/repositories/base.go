package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interconnect/backend/internal/db"
	"github.com/interconnect/backend/internal/pkg/apperrors"
	"github.com/interconnect/backend/internal/pkg/dberrors"
	"github.com/interconnect/backend/internal/pkg/logger"
)

const defaultQueryTimeout = 5 * time.Second

// pgBase is embedded by every Postgres repository.
type pgBase struct {
	pool     *pgxpool.Pool
	database *db.PostgresDB
	timeout  time.Duration
}

// withTimeout bounds a single store call.
func (b pgBase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := b.timeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// storeErr wraps an unexpected driver error so that it surfaces as a store
// failure. Calls cut off by the query timeout are tagged and logged apart.
func storeErr(op string, err error) error {
	if dberrors.IsTimeout(err) {
		logger.Warn().Err(err).Str("op", op).Msg("Store call timed out")
		ce := apperrors.NewCustomError(apperrors.ErrStoreUnavailable, op).WithCode(apperrors.CodeStoreTimeout)
		ce.Cause = err
		return ce
	}
	return apperrors.NewStoreError(op, err)
}
