package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// Auth закрывает админские маршруты статическим токеном.
// Токен принимается либо в X-Admin-Token, либо как Bearer в Authorization.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(adminTokenHeader)
			if presented == "" {
				auth := r.Header.Get("Authorization")
				if strings.HasPrefix(auth, "Bearer ") {
					presented = strings.TrimPrefix(auth, "Bearer ")
				}
			}

			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, "missing or invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
