package httpapi

import "net/http"

type settleRequest struct {
	EventID    string  `json:"eventId" validate:"required"`
	DebtorID   string  `json:"debtorId" validate:"required"`
	CreditorID string  `json:"creditorId" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

type settleResponse struct {
	SettlementID string `json:"settlementId"`
	Message      string `json:"message"`
}

func (a *API) handleCreateSettlement(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if err := a.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	settlement, err := a.settlements.Create(r.Context(), req.EventID, UserID(r.Context()), req.DebtorID, req.CreditorID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, settleResponse{
		SettlementID: settlement.ID,
		Message:      "Debt successfully marked as settled.",
	})
}
