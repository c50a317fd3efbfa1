package api

import (
	"net/http"
	"time"

	"github.com/aaANDkk/sutdychat/models"
)

// coinRecordLimit caps how many ledger entries the records endpoint returns.
const coinRecordLimit = 100

type coinRecordResponse struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"user_id"`
	Amount    int64     `json:"amount"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func toCoinRecordResponse(c *models.CoinRecord) coinRecordResponse {
	return coinRecordResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		Amount:    c.Amount,
		Reason:    c.Reason,
		CreatedAt: c.CreatedAt,
	}
}

func (s *Server) handleCoins(w http.ResponseWriter, r *http.Request) {
	// Re-read the balance rather than trusting the actor snapshot taken
	// at auth time.
	account, err := s.accounts.GetByID(r.Context(), actorFrom(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"coins": account.Coins})
}

func (s *Server) handleCoinRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.ledger.Records(r.Context(), actorFrom(r).ID, coinRecordLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]coinRecordResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, toCoinRecordResponse(record))
	}

	writeJSON(w, http.StatusOK, resp)
}
