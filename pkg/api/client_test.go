package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"argentbank/pkg/api"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@b.com","password":"pw123"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  200,
			"message": "User successfully logged in",
			"body":    map[string]string{"token": "T1"},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	token, err := client.Login(context.Background(), "a@b.com", "pw123")

	assert.NoError(t, err)
	assert.Equal(t, "T1", token)
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"status": 401, "message": "invalid credentials"})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	token, err := client.Login(context.Background(), "a@b.com", "wrong")

	assert.Empty(t, token)
	var apiErr *api.Error
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/profile", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  200,
			"message": "Successfully got user profile data",
			"body": map[string]string{
				"firstName": "Tony",
				"lastName":  "Stark",
				"userName":  "Iron",
				"email":     "tony@stark.com",
			},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	profile, err := client.FetchProfile(context.Background(), "T1")

	assert.NoError(t, err)
	assert.Equal(t, &api.Profile{
		FirstName: "Tony",
		LastName:  "Stark",
		UserName:  "Iron",
		Email:     "tony@stark.com",
	}, profile)
}

func TestUpdateUserName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/user/profile", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"userName":"Bob"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  200,
			"message": "Successfully updated user profile",
			"body": map[string]string{
				"firstName": "A",
				"lastName":  "B",
				"userName":  "Bob",
				"email":     "a@b.com",
			},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	profile, err := client.UpdateUserName(context.Background(), "T1", "Bob")

	assert.NoError(t, err)
	assert.Equal(t, "Bob", profile.UserName)
}

func TestErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	_, err := client.FetchProfile(context.Background(), "T1")

	var apiErr *api.Error
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := api.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "a@b.com", "pw123")

	assert.Error(t, err)
	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr))
}
