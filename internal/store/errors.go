package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an insert violates the UNIQUE
	// constraint on username or email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a single-record lookup matches nothing.
	ErrUserNotFound = errors.New("user was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrBeginningTransaction is returned when a transaction cannot be opened.
	ErrBeginningTransaction = errors.New("error beginning transaction")

	// ErrCommittingTransaction is returned when a transaction fails to commit.
	ErrCommittingTransaction = errors.New("error committing transaction")
)

// Connection errors.
var (
	// ErrUnsupportedDSN is returned when the DSN matches no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrConnectingDB is returned when the database cannot be opened or pinged.
	ErrConnectingDB = errors.New("error connecting to database")
)
