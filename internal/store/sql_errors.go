package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification labels a failed note store call in the logs. Nothing
// retries on it; it only separates transient store trouble, client
// disconnects and real failures when reading them.
type ErrorClassification int

const (
	// NonRetryable is the default: constraint, syntax and data errors, and
	// anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a lost connection, a
	// deadlock or a busy database file.
	Retryable

	// Cancelled marks calls abandoned because the caller's context ended,
	// typically an HTTP client that disconnected mid-request.
	Cancelled
)

func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case Cancelled:
		return "cancelled"
	default:
		return "non-retryable"
	}
}

// isContextError reports whether err comes from the caller's context rather
// than from the database.
func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// PostgresErrorClassifier classifies errors returned by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps a *pgconn.PgError from err and classifies its SQLSTATE
// with [ClassifyPgError]. Context errors are [Cancelled].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	if isContextError(err) {
		return Cancelled
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a PostgreSQL SQLSTATE to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40: transaction rollback
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 53: pool exhausted on the server side
	case pgerrcode.TooManyConnections: // 53300
		return Retryable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow, // 57P03
		pgerrcode.AdminShutdown: // 57P01
		return Retryable

	// pgx cancels the running statement when the request context ends
	case pgerrcode.QueryCanceled: // 57014
		return Cancelled
	}

	return NonRetryable
}
