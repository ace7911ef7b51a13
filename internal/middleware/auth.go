// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nimbushr/catalog/internal/auth"
	"github.com/nimbushr/catalog/internal/service"
)

type UserContextKey string

var ClaimsKey UserContextKey = "catalog_claims"

// Role names recognized by the route guards. These mirror the seeded roles
// catalog.
const (
	RoleAdmin    = "Admin"
	RoleHR       = "HR"
	RoleManager  = "Manager"
	RoleTeamLead = "Team Lead"
)

// PermissionChecker is the external authorization hook. Satisfied by
// auth.PermifyService; nil means token roles decide alone.
type PermissionChecker interface {
	CheckPermission(ctx context.Context, entity auth.Entity, permission string, subject auth.Subject) (bool, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			// Check Bearer prefix
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			// Validate token
			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			ctx = service.WithRequestMeta(ctx, chimw.GetReqID(ctx), r.RemoteAddr)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the validated claims set by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims
}

// RequireRoles rejects requests whose token carries none of the given roles.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if !claims.HasRole(roles...) {
				respondWithError(w, http.StatusForbidden, "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireCatalogManage guards the write routes. When an external checker is
// configured its decision is authoritative; otherwise the Admin role claim
// decides.
func RequireCatalogManage(checker PermissionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			if checker != nil {
				allowed, err := checker.CheckPermission(r.Context(),
					auth.Entity{Type: "catalog", ID: "system"},
					"manage",
					auth.Subject{Type: "user", ID: claims.UserID},
				)
				if err != nil {
					slog.Error("permission check failed", "user_id", claims.UserID, "error", err)
					respondWithError(w, http.StatusInternalServerError, "Permission check failed")
					return
				}
				if !allowed {
					respondWithError(w, http.StatusForbidden, "Insufficient permissions")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !claims.HasRole(RoleAdmin) {
				respondWithError(w, http.StatusForbidden, "Admin role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]interface{}{
		"success": false,
		"message": message,
		"error":   message,
	})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
