package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It works against the "users" table on PostgreSQL and SQLite alike; the
// dialect only changes the placeholder format of the rendered queries.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", string(db.Dialect())).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Status, &u.CreatedAt)
	return u, err
}

// FindUsersByUsernameOrEmail implements [UserRepository].
func (r *userRepository) FindUsersByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	query, args, err := r.buildFindByUsernameOrEmailQuery(username, email)
	if err != nil {
		return nil, err
	}

	return r.queryUsers(ctx, "*userRepository.FindUsersByUsernameOrEmail", query, args)
}

// FindUserByUsername implements [UserRepository].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := r.buildFindByColumnQuery("username", username)
	if err != nil {
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.FindUserByUsername", query, args)
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := r.buildFindByColumnQuery("id", id)
	if err != nil {
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.FindUserByID", query, args)
}

// CreateUser persists a new user and returns the stored record.
//
// The INSERT returns only the generated id. The record is read back inside
// the same transaction, so a concurrent delete cannot turn a successful
// insert into [ErrUserNotFound] and both backends report the defaults
// (status, created_at) through the same column types.
//
// Error handling:
//   - UNIQUE violation (PostgreSQL 23505, SQLite CONSTRAINT_UNIQUE) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
//   - Scan failure → wrapped [ErrScanningRow].
//   - Begin or commit failure → wrapped [ErrBeginningTransaction] / [ErrCommittingTransaction].
func (r *userRepository) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildCreateUserQuery(username, email, passwordHash)
	if err != nil {
		return models.User{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, query, args...)

	// create user in db
	if err = row.Err(); err != nil {
		return models.User{}, r.insertError(log, err)
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		// some drivers only report the constraint failure on scan
		if isUniqueViolation(err) {
			return models.User{}, r.insertError(log, err)
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// read saved user back before commit
	query, args, err = r.buildFindByColumnQuery("id", id)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Int64("user_id", id).Msg("error reading created user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return user, nil
}

func (r *userRepository) insertError(log *logger.Logger, err error) error {
	if isUniqueViolation(err) {
		log.Debug().Str("func", "*userRepository.CreateUser").Msg("unique constraint violation")
		return ErrUserAlreadyExists
	}
	log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error executing insert")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// DeleteUser implements [UserRepository].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteUserQuery(id)
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error executing delete")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error reading rows affected")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

// ListUsers implements [UserRepository].
func (r *userRepository) ListUsers(ctx context.Context, limit uint64) ([]models.User, error) {
	query, args, err := r.buildListUsersQuery(limit)
	if err != nil {
		return nil, err
	}

	return r.queryUsers(ctx, "*userRepository.ListUsers", query, args)
}

func (r *userRepository) queryUser(ctx context.Context, fn, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) queryUsers(ctx context.Context, fn, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
