package middleware

import (
	"net/http"

	"travel-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminKey guards destructive routes. The caller sends the plain admin key in
// the X-Admin-Key header; the config stores only its bcrypt hash.
func AdminKey(admin utils.AdminConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if admin.KeyHash == "" {
				logger.Warn("Admin key not configured, rejecting request",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access not configured")
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing admin key")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(admin.KeyHash), []byte(key)); err != nil {
				logger.Warn("Admin key mismatch",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
