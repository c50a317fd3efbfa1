package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aaANDkk/sutdychat/auth"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "username, email and password are required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	account, err := s.accounts.Register(r.Context(), req.Username, req.Email, hash)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleToken implements the password login flow. Credentials arrive
// form-encoded, matching the original client.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid form body"})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	account, err := s.accounts.GetByUsername(r.Context(), username)
	if err != nil {
		// One message for both unknown user and bad password.
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: "incorrect username or password"})
		return
	}
	if !auth.CheckPassword(account.CredentialHash, password) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: "incorrect username or password"})
		return
	}

	token, err := auth.GenerateToken(account.ID, account.Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toAccountResponse(actorFrom(r)))
}

func (s *Server) handleUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	account, err := s.accounts.GetByUsername(r.Context(), username)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}
