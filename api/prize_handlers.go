package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aaANDkk/sutdychat/models"
)

type prizeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	ImageURL    string `json:"image_url"`
	Available   bool   `json:"available"`
}

func toPrizeResponse(p *models.Prize) prizeResponse {
	return prizeResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Cost:        p.Cost,
		ImageURL:    p.ImageURL,
		Available:   p.Available,
	}
}

type redemptionResponse struct {
	Message          string `json:"message"`
	PrizeID          int64  `json:"prize_id"`
	CoinRecordID     int64  `json:"coin_record_id"`
	RemainingBalance int64  `json:"remaining_balance"`
}

func (s *Server) handleListPrizes(w http.ResponseWriter, r *http.Request) {
	prizes, err := s.prizes.ListAvailable(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]prizeResponse, 0, len(prizes))
	for _, prize := range prizes {
		resp = append(resp, toPrizeResponse(prize))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRedeemPrize(w http.ResponseWriter, r *http.Request) {
	prizeID, err := strconv.ParseInt(chi.URLParam(r, "prizeID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid prize id"})
		return
	}

	result, err := s.prizes.Redeem(r.Context(), actorFrom(r).ID, prizeID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, redemptionResponse{
		Message:          "redeemed " + result.Prize.Name,
		PrizeID:          result.Prize.ID,
		CoinRecordID:     result.CoinRecordID,
		RemainingBalance: result.RemainingBalance,
	})
}
