package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/aaANDkk/sutdychat/auth"
	"github.com/aaANDkk/sutdychat/models"
)

type contextKey string

const actorKey contextKey = "actor"

// requireAuth validates the bearer token and loads the acting account into
// the request context. The core trusts this identity as given.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, auth.ErrInvalidToken)
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, err)
			return
		}

		// The account must still resolve; a token for a purged account
		// is as good as no token.
		account, err := s.accounts.GetByID(r.Context(), claims.AccountID)
		if err != nil {
			writeError(w, auth.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorFrom returns the authenticated account stored by requireAuth.
func actorFrom(r *http.Request) *models.Account {
	account, _ := r.Context().Value(actorKey).(*models.Account)
	return account
}
