package user

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listUsersQuery   = `SELECT id, name, email, age FROM users ORDER BY id DESC`
	getUserByIDQuery = `SELECT id, name, email, age FROM users WHERE id = $1`

	insertUserQuery = `
		INSERT INTO users (name, email, age)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	updateUserQuery = `
		UPDATE users
		SET name = $1,
			email = $2,
			age = $3
		WHERE id = $4
	`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]User, error) {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Age); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	var user User
	err := r.db.QueryRow(getUserByIDQuery, id).Scan(&user.ID, &user.Name, &user.Email, &user.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	var id int
	err := r.db.QueryRow(insertUserQuery, user.Name, user.Email, user.Age).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}

	user.ID = id
	return user, nil
}

func (r *PostgresRepository) Update(id int, userUpdate User) (User, error) {
	result, err := r.db.Exec(updateUserQuery, userUpdate.Name, userUpdate.Email, userUpdate.Age, id)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}

	userUpdate.ID = id
	return userUpdate, nil
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// rejection (SQLSTATE 23505). The driver-specific check stays inside this
// file; callers only ever see ErrEmailExists.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
