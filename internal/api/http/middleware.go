package httpapi

import (
	"net/http"
	"strings"
)

// Auth guards staff and admin routes with static bearer tokens. The admin
// token also passes staff checks. An empty configured token disables the
// corresponding check, which keeps local development friction-free.
type Auth struct {
	StaffToken string
	AdminToken string
}

func NewAuth(staffToken, adminToken string) *Auth {
	return &Auth{StaffToken: staffToken, AdminToken: adminToken}
}

func (a *Auth) RequireStaff(next http.HandlerFunc) http.HandlerFunc {
	return a.require(next, false)
}

func (a *Auth) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.require(next, true)
}

func (a *Auth) require(next http.HandlerFunc, adminOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.StaffToken == "" && a.AdminToken == "" {
			next(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			respondError(w, http.StatusUnauthorized, "Bearer token required")
			return
		}

		// Each case requires its token to be configured; otherwise an unset
		// token ("") would match an empty bearer value.
		switch {
		case a.AdminToken != "" && token == a.AdminToken:
			next(w, r)
		case a.StaffToken != "" && token == a.StaffToken:
			if adminOnly {
				respondError(w, http.StatusForbidden, "Access denied")
				return
			}
			next(w, r)
		default:
			respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		}
	}
}
