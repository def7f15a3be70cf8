package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	"argentbank/pkg/user"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

// LoadDB opens the stub's user database, creates the schema, and seeds the
// two demo accounts on first run.
func LoadDB(path string) *sql.DB {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Cannot connect to DB:", err)
	}
	if err := migrate(db); err != nil {
		log.Fatal("Cannot create tables:", err)
	}
	if err := seed(db); err != nil {
		log.Fatal("Cannot seed demo users:", err)
	}
	return db
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			user_name  TEXT NOT NULL DEFAULT '',
			password   TEXT NOT NULL
		)
	`)
	return err
}

// seed inserts the canonical Argent Bank demo users when the table is
// empty.
func seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repo := user.NewSQLiteRepo(db)
	demo := []struct {
		email, password, firstName, lastName, userName string
	}{
		{"tony@stark.com", "password123", "Tony", "Stark", "Iron"},
		{"steve@rogers.com", "password456", "Steve", "Rogers", "Captain"},
	}

	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		err = repo.Create(&user.User{
			ID:        uuid.NewString(),
			Email:     d.email,
			FirstName: d.firstName,
			LastName:  d.lastName,
			UserName:  d.userName,
			Password:  string(hash),
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.email, err)
		}
	}
	return nil
}
