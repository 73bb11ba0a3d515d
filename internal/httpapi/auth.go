package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCookie - имя cookie, в которой сервис аутентификации выдает токен.
const TokenCookie = "token"

// Claims - утверждения токена, выданного сервисом аутентификации.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

// Authenticator проверяет токены. Выдача токенов происходит вне этого сервиса.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Verify проверяет подпись и срок действия токена.
func (a *Authenticator) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || strings.TrimSpace(claims.UserID) == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Middleware требует валидный токен из cookie или заголовка Authorization.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "access denied"})
			return
		}
		claims, err := a.Verify(tokenString)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid token"})
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// ActingUser возвращает id пользователя, установленный Middleware.
func ActingUser(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
