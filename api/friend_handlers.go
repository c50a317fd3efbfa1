package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aaANDkk/sutdychat/models"
)

type addFriendRequest struct {
	FriendID int64 `json:"friend_id"`
}

type friendLinkResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"user_id"`
	FriendID  int64     `json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toFriendLinkResponse(l *models.FriendLink) friendLinkResponse {
	return friendLinkResponse{
		ID:        l.ID,
		OwnerID:   l.OwnerID,
		FriendID:  l.FriendID,
		CreatedAt: l.CreatedAt,
	}
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	var req addFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	link, err := s.friends.Link(r.Context(), actorFrom(r).ID, req.FriendID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFriendLinkResponse(link))
}

func (s *Server) handleDeleteFriend(w http.ResponseWriter, r *http.Request) {
	friendID, err := strconv.ParseInt(chi.URLParam(r, "friendID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid friend id"})
		return
	}

	if err := s.friends.Unlink(r.Context(), actorFrom(r).ID, friendID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "friend removed"})
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := s.friends.ListFriends(r.Context(), actorFrom(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]accountResponse, 0, len(friends))
	for _, friend := range friends {
		resp = append(resp, toAccountResponse(friend))
	}

	writeJSON(w, http.StatusOK, resp)
}
