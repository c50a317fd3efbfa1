// Package api provides the HTTP server for StudyChat. It maps the core
// operations to endpoints and translates core failures into status codes.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aaANDkk/sutdychat/service"
)

// Server is the StudyChat HTTP API server.
type Server struct {
	accounts service.AccountService
	friends  service.FriendService
	messages service.MessageService
	ledger   service.LedgerService
	prizes   service.PrizeService

	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewServer creates a new API server.
func NewServer(
	accounts service.AccountService,
	friends service.FriendService,
	messages service.MessageService,
	ledger service.LedgerService,
	prizes service.PrizeService,
	jwtSecret []byte,
	tokenValidity time.Duration,
) *Server {
	return &Server{
		accounts:      accounts,
		friends:       friends,
		messages:      messages,
		ledger:        ledger,
		prizes:        prizes,
		jwtSecret:     jwtSecret,
		tokenValidity: tokenValidity,
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/register", s.handleRegister)
	r.Post("/token", s.handleToken)
	r.Get("/prizes", s.handleListPrizes)

	// Everything below requires an authenticated actor.
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/users/me", s.handleMe)
		r.Get("/users/username/{username}", s.handleUserByUsername)

		r.Post("/friends", s.handleAddFriend)
		r.Delete("/friends/{friendID}", s.handleDeleteFriend)
		r.Get("/friends", s.handleListFriends)

		r.Post("/messages", s.handleSendMessage)
		r.Get("/messages/{friendID}", s.handleHistory)

		r.Get("/coins", s.handleCoins)
		r.Get("/coin-records", s.handleCoinRecords)

		r.Post("/prizes/{prizeID}/redeem", s.handleRedeemPrize)
	})

	return r
}
