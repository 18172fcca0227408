package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the column order every user query selects and scanUser reads.
var userColumns = []string{"id", "username", "email", "password", "status", "created_at"}

func (r *userRepository) buildFindByUsernameOrEmailQuery(username, email string) (string, []any, error) {
	query, args, err := r.db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *userRepository) buildFindByColumnQuery(column string, value any) (string, []any, error) {
	query, args, err := r.db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *userRepository) buildCreateUserQuery(username, email, passwordHash string) (string, []any, error) {
	query, args, err := r.db.builder().
		Insert(usersTable).
		Columns("username", "email", "password").
		Values(username, email, passwordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *userRepository) buildDeleteUserQuery(id int64) (string, []any, error) {
	query, args, err := r.db.builder().
		Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *userRepository) buildListUsersQuery(limit uint64) (string, []any, error) {
	builder := r.db.builder().
		Select(userColumns...).
		From(usersTable).
		OrderBy("id")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
