package middleware

import (
    "context"
    "net/http"
    "strings"

    "github.com/akashsp-05/manchikoppa-portal/config"
    "github.com/akashsp-05/manchikoppa-portal/utils"
)

type contextKey string

const (
    emailContextKey   contextKey = "session_email"
    isAdminContextKey contextKey = "session_is_admin"
)

// AdminOnly validates the bearer token and rejects anyone who is not
// the configured administrator. The admin decision is made once, here,
// by email equality; downstream code receives an explicit flag instead
// of reading session state.
func AdminOnly(next http.HandlerFunc) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        authHeader := r.Header.Get("Authorization")
        if authHeader == "" {
            writeAuthError(w, "Authorization header is required")
            return
        }

        tokenParts := strings.Split(authHeader, " ")
        if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
            writeAuthError(w, "Invalid authorization header format")
            return
        }

        claims, err := utils.ValidateJWT(tokenParts[1])
        if err != nil {
            writeAuthError(w, "Invalid token")
            return
        }

        isAdmin := claims.Email == config.AdminEmail()
        if !isAdmin {
            w.Header().Set("Content-Type", "application/json")
            w.WriteHeader(http.StatusForbidden)
            w.Write([]byte(`{"error": "Admin access required"}`))
            return
        }

        ctx := context.WithValue(r.Context(), emailContextKey, claims.Email)
        ctx = context.WithValue(ctx, isAdminContextKey, isAdmin)
        next(w, r.WithContext(ctx))
    }
}

// SessionEmail returns the authenticated email, or "" for anonymous
// requests.
func SessionEmail(r *http.Request) string {
    if email, ok := r.Context().Value(emailContextKey).(string); ok {
        return email
    }
    return ""
}

// IsAdmin reports whether the request passed the AdminOnly gate.
func IsAdmin(r *http.Request) bool {
    if isAdmin, ok := r.Context().Value(isAdminContextKey).(bool); ok {
        return isAdmin
    }
    return false
}

func writeAuthError(w http.ResponseWriter, message string) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusUnauthorized)
    w.Write([]byte(`{"error": "` + message + `"}`))
}
