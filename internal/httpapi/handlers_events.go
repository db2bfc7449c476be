package httpapi

import (
	"net/http"

	"settleup/internal/models"
	"settleup/internal/reconcile"
)

type createEventRequest struct {
	EventName string `json:"eventName" validate:"required,max=100"`
	Currency  string `json:"currency" validate:"required,len=3,uppercase"`
}

type addMemberRequest struct {
	Username string `json:"username" validate:"required"`
}

type eventPayload struct {
	ID        string   `json:"id"`
	EventName string   `json:"eventName"`
	Currency  string   `json:"currency"`
	CreatorID string   `json:"creatorId"`
	MemberIDs []string `json:"members"`
	CreatedAt int64    `json:"createdAt"`
}

func toEventPayload(e *models.Event) eventPayload {
	return eventPayload{
		ID:        e.ID,
		EventName: e.Name,
		Currency:  e.Currency,
		CreatorID: e.CreatorID,
		MemberIDs: e.MemberIDs,
		CreatedAt: e.CreatedAt,
	}
}

func (a *API) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := a.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event, err := a.events.Create(r.Context(), UserID(r.Context()), req.EventName, req.Currency)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventPayload(event))
}

func (a *API) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := a.events.ListForUser(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	payload := make([]eventPayload, len(events))
	for i, event := range events {
		payload[i] = toEventPayload(event)
	}
	writeJSON(w, http.StatusOK, payload)
}

type transactionPayload struct {
	ID          string         `json:"id"`
	PayerID     string         `json:"payerId"`
	Description string         `json:"description"`
	TotalAmount float64        `json:"totalAmount"`
	Splits      []splitPayload `json:"splitDetails"`
	CreatedAt   int64          `json:"createdAt"`
}

type eventDetailsResponse struct {
	eventPayload
	Members      []userPayload        `json:"memberDetails"`
	Transactions []transactionPayload `json:"transactions"`
}

func toTransactionPayload(tx *models.Transaction) transactionPayload {
	splits := make([]splitPayload, len(tx.Splits))
	for i, split := range tx.Splits {
		splits[i] = splitPayload{UserID: split.DebtorID, Owes: split.Owed}
	}
	return transactionPayload{
		ID:          tx.ID,
		PayerID:     tx.PayerID,
		Description: tx.Description,
		TotalAmount: tx.Total,
		Splits:      splits,
		CreatedAt:   tx.CreatedAt,
	}
}

func (a *API) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	details, err := a.events.Get(r.Context(), r.PathValue("eventId"), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := eventDetailsResponse{
		eventPayload: toEventPayload(details.Event),
		Members:      []userPayload{},
		Transactions: []transactionPayload{},
	}
	for _, id := range details.Event.MemberIDs {
		if user, ok := details.Members[id]; ok {
			resp.Members = append(resp.Members, toUserPayload(user))
		}
	}
	for _, tx := range details.Transactions {
		resp.Transactions = append(resp.Transactions, toTransactionPayload(tx))
	}

	writeJSON(w, http.StatusOK, resp)
}

// summaryResponse is the reconciliation result plus the derived event
// status. A settled event is just one whose instruction list is empty;
// nothing blocks further transactions on it.
type summaryResponse struct {
	*reconcile.Summary
	Status string `json:"status"`
}

func (a *API) handleEventSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.events.Summary(r.Context(), r.PathValue("eventId"), UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	status := models.EventStatusActive
	if summary.Settled() {
		status = models.EventStatusSettled
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: summary, Status: status})
}

func (a *API) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := a.decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	event, err := a.events.AddMember(r.Context(), r.PathValue("eventId"), UserID(r.Context()), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event.MemberIDs)
}
