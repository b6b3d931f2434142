package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nikhilsahni7/medquery/internal/config"
	"github.com/nikhilsahni7/medquery/internal/utils"
)

type contextKey string

const UserIDKey contextKey = "userID"

var jwtSecret = config.Envs.SecretKey

// AuthMiddleware validates the session cookie and stores the authenticated
// user's id in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie("token")
		if err != nil {
			utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, ok := claims["userId"].(string)
		if !ok || userID == "" {
			utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if _, err := uuid.Parse(userID); err != nil {
			utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUserID extracts the authenticated user's id set by AuthMiddleware.
func CurrentUserID(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := ctx.Value(UserIDKey).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
