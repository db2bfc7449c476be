package httpapi

import (
	"net/http"

	"settleup/internal/models"
)

type splitPayload struct {
	UserID string  `json:"user" validate:"required"`
	Owes   float64 `json:"owes" validate:"gte=0"`
}

type addTransactionRequest struct {
	Description string         `json:"description" validate:"required,max=200"`
	TotalAmount float64        `json:"totalAmount" validate:"required,gt=0"`
	Splits      []splitPayload `json:"splitDetails" validate:"required,min=1,dive"`
}

func (a *API) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var req addTransactionRequest
	if err := a.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	splits := make([]models.Split, len(req.Splits))
	for i, split := range req.Splits {
		splits[i] = models.Split{DebtorID: split.UserID, Owed: split.Owes}
	}

	// The payer is the caller: you record expenses you paid for.
	transaction, err := a.transactions.Add(r.Context(), r.PathValue("eventId"), UserID(r.Context()), req.Description, req.TotalAmount, splits)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionPayload(transaction))
}
