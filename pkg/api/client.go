package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Profile is the user record as the remote service returns it. The session
// layer caches it but never interprets it beyond the name fields.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName,omitempty"`
	Email     string `json:"email"`
}

// Error is a non-2xx response from the remote service.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

type ClientInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
	FetchProfile(ctx context.Context, token string) (*Profile, error)
	UpdateUserName(ctx context.Context, token, userName string) (*Profile, error)
}

// Client talks to the remote auth/profile service over its REST endpoints.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    http.DefaultClient,
	}
}

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenBody struct {
	Token string `json:"token"`
}

type updateForm struct {
	UserName string `json:"userName"`
}

// envelope is the {status, message, body} wrapper the service uses for
// every response. On non-2xx only message is reliable.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var body tokenBody
	err := c.do(ctx, http.MethodPost, "/user/login", "", loginForm{Email: email, Password: password}, &body)
	if err != nil {
		return "", err
	}
	return body.Token, nil
}

func (c *Client) FetchProfile(ctx context.Context, token string) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodPost, "/user/profile", token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateUserName(ctx context.Context, token, userName string) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodPut, "/user/profile", token, updateForm{UserName: userName}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload, out any) error {
	var reqBody bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&reqBody).Encode(payload); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Body) > 0 {
		if err := json.Unmarshal(env.Body, out); err != nil {
			return fmt.Errorf("decode body: %w", err)
		}
	}
	return nil
}
