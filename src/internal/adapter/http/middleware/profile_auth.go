package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/api-sage/freelance-billing/src/internal/logger"
)

const profileIDHeader = "Profile-Id"

type profileContextKey struct{}

// ProfileAuth resolves the Profile-Id header to a full profile record and
// injects it into the request context. The resolved record is what the
// services trust for role and ownership checks.
func ProfileAuth(profiles repo_interfaces.ProfileRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(profileIDHeader))
			profileID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || profileID <= 0 {
				logger.Info("profile auth middleware missing or malformed profile id", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			profile, err := profiles.GetByID(r.Context(), profileID)
			if err != nil {
				logger.Info("profile auth middleware unknown profile", logger.Fields{
					"method":    r.Method,
					"path":      r.URL.Path,
					"profileId": profileID,
				})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), profileContextKey{}, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ProfileFromContext(ctx context.Context) (domain.Profile, bool) {
	profile, ok := ctx.Value(profileContextKey{}).(domain.Profile)
	return profile, ok
}
