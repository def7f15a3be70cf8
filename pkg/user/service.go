package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type ServiceInterface interface {
	Login(email, password string) (*User, error)
	Profile(id string) (*User, error)
	UpdateUserName(id, userName string) (*User, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	return user, nil
}

func (s *Service) Profile(id string) (*User, error) {
	return s.Repo.FindByID(id)
}

func (s *Service) UpdateUserName(id, userName string) (*User, error) {
	if userName == "" {
		return nil, errors.New("userName is required")
	}
	return s.Repo.UpdateUserName(id, userName)
}
