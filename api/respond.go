package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/aaANDkk/sutdychat/auth"
	"github.com/aaANDkk/sutdychat/models"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// accountResponse is the caller-visible view of an account. The credential
// hash never leaves the server.
type accountResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Coins     int64     `json:"coins"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountResponse(a *models.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Coins:     a.Coins,
		CreatedAt: a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// writeError translates core failures into status codes. Business-rule
// errors are reported verbatim; anything unrecognized is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrDuplicateIdentity),
		errors.Is(err, models.ErrAlreadyLinked),
		errors.Is(err, models.ErrInsufficientBalance):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUnknownAccount),
		errors.Is(err, models.ErrNotLinked),
		errors.Is(err, models.ErrPrizeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrNotFriends):
		status = http.StatusForbidden
	case errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		writeJSON(w, status, errorResponse{Detail: "internal server error"})
		return
	}

	writeJSON(w, status, errorResponse{Detail: err.Error()})
}
