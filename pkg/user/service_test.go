package user_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"argentbank/pkg/user"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(u *user.User) error {
	return m.Called(u).Error(0)
}

func (m *mockRepo) FindByEmail(email string) (*user.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindByID(id string) (*user.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) UpdateUserName(id, userName string) (*user.User, error) {
	args := m.Called(id, userName)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Login(t *testing.T) {
	repo := new(mockRepo)
	svc := user.NewService(repo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		repo.On("FindByEmail", "tony@stark.com").Return(&user.User{
			ID:       "uid",
			Email:    "tony@stark.com",
			Password: string(hashed),
		}, nil)

		u, err := svc.Login("tony@stark.com", "correct")

		assert.NoError(t, err)
		assert.Equal(t, "tony@stark.com", u.Email)
	})

	t.Run("not found", func(t *testing.T) {
		repo.On("FindByEmail", "ghost@nowhere.com").Return(nil, errors.New("user not found"))

		u, err := svc.Login("ghost@nowhere.com", "any")

		assert.Error(t, err)
		assert.Nil(t, u)
		assert.Equal(t, "user not found", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		u, err := svc.Login("tony@stark.com", "wrong")

		assert.Error(t, err)
		assert.Nil(t, u)
		assert.Equal(t, "invalid credentials", err.Error())
	})
}

func TestService_UpdateUserName(t *testing.T) {
	repo := new(mockRepo)
	svc := user.NewService(repo)

	t.Run("success", func(t *testing.T) {
		repo.On("UpdateUserName", "uid", "IronMan").Return(&user.User{ID: "uid", UserName: "IronMan"}, nil)

		u, err := svc.UpdateUserName("uid", "IronMan")

		assert.NoError(t, err)
		assert.Equal(t, "IronMan", u.UserName)
	})

	t.Run("empty name", func(t *testing.T) {
		u, err := svc.UpdateUserName("uid", "")

		assert.Error(t, err)
		assert.Nil(t, u)
		repo.AssertNotCalled(t, "UpdateUserName", "uid", "")
	})
}
