package user

import (
	"database/sql"
	"errors"
)

type SQLiteRepo struct {
	DB *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{DB: db}
}

func (r *SQLiteRepo) Create(user *User) error {
	_, err := r.DB.Exec(
		"INSERT INTO users (id, email, first_name, last_name, user_name, password) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.FirstName, user.LastName, user.UserName, user.Password,
	)
	return err
}

func (r *SQLiteRepo) FindByEmail(email string) (*User, error) {
	return r.findOne("SELECT id, email, first_name, last_name, user_name, password FROM users WHERE email = ?", email)
}

func (r *SQLiteRepo) FindByID(id string) (*User, error) {
	return r.findOne("SELECT id, email, first_name, last_name, user_name, password FROM users WHERE id = ?", id)
}

func (r *SQLiteRepo) UpdateUserName(id, userName string) (*User, error) {
	_, err := r.DB.Exec("UPDATE users SET user_name = ? WHERE id = ?", userName, id)
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *SQLiteRepo) findOne(query, arg string) (*User, error) {
	var u User
	err := r.DB.QueryRow(query, arg).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.UserName, &u.Password,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &u, nil
}
