package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"argentbank/pkg/claims"

	jwt "github.com/dgrijalva/jwt-go"
)

// CheckJWT guards the profile routes. It validates the Bearer token and
// puts the parsed claims on the request context; anything invalid gets a
// 401 with a {message} body the client surfaces as a session expiry.
func CheckJWT() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				unauthorized(w)
				return
			}

			token := strings.TrimPrefix(auth, "Bearer ")

			hashSecretGetter := func(token *jwt.Token) (interface{}, error) {
				method, ok := token.Method.(*jwt.SigningMethodHMAC)
				if !ok || method.Alg() != "HS256" {
					return nil, jwt.ErrSignatureInvalid
				}
				JWTSecret := os.Getenv("JWT_SECRET")
				return []byte(JWTSecret), nil
			}

			_claims_ := &claims.Claims{}

			_token_, err := jwt.ParseWithClaims(token, _claims_, hashSecretGetter)
			if err != nil || !_token_.Valid || _claims_.User.ID == "" {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claims.TokenContextKey, _claims_)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"status":401,"message":"unauthorized"}`))
}
