package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"argentbank/pkg/claims"
	"argentbank/pkg/user"

	jwt "github.com/dgrijalva/jwt-go"
)

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateForm struct {
	UserName string `json:"userName"`
}

type Handler struct {
	Service user.ServiceInterface
	Logger  *slog.Logger
}

// envelope is the response wrapper every endpoint writes, matching what
// the front-end client expects: {status, message, body}.
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Body    any    `json:"body,omitempty"`
}

func NewUserHandler(service user.ServiceInterface, logger *slog.Logger) *Handler {
	return &Handler{
		Service: service,
		Logger:  logger,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if req.Email == "" || req.Password == "" {
		WriteResp(w, h.Logger, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	u, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		if ok := WriteResp(w, h.Logger, http.StatusUnauthorized, err.Error(), nil); ok {
			h.Logger.Error("login", "error", err.Error(), "email", req.Email)
		}
		return
	}

	GenerateToken(u, w, h.Logger)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	c, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
	if !ok {
		WriteResp(w, h.Logger, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	u, err := h.Service.Profile(c.User.ID)
	if err != nil {
		if ok := WriteResp(w, h.Logger, http.StatusNotFound, err.Error(), nil); ok {
			h.Logger.Error("profile", "error", err.Error(), "user", c.User.ID)
		}
		return
	}

	WriteResp(w, h.Logger, http.StatusOK, "Successfully got user profile data", u)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	c, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
	if !ok {
		WriteResp(w, h.Logger, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req UpdateForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	u, err := h.Service.UpdateUserName(c.User.ID, req.UserName)
	if err != nil {
		if ok := WriteResp(w, h.Logger, http.StatusBadRequest, err.Error(), nil); ok {
			h.Logger.Error("update profile", "error", err.Error(), "user", c.User.ID)
		}
		return
	}

	WriteResp(w, h.Logger, http.StatusOK, "Successfully updated user profile", u)
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		WriteResp(w, slog.Default(), http.StatusBadRequest, "invalid Content-Type", nil)
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		WriteResp(w, slog.Default(), http.StatusBadRequest, "bad json", nil)
		return false
	}

	return true
}

func GenerateToken(u *user.User, w http.ResponseWriter, logger *slog.Logger) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]string{
			"id":    u.ID,
			"email": u.Email,
		},
		"iat": time.Now().UTC().Unix(),
		"exp": time.Now().Add(time.Hour * 1).UTC().Unix(),
	})
	JWTSecret := os.Getenv("JWT_SECRET")
	tokenString, err := token.SignedString([]byte(JWTSecret))
	if err != nil {
		logger.Error("token signing", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if ok := WriteResp(w, logger, http.StatusOK, "User successfully logged in", map[string]string{"token": tokenString}); ok {
		logger.Info("login", "user", u.ID)
	}
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, status int, message string, body any) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope{Status: status, Message: message, Body: body}); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}
