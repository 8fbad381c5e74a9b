package transitdemo

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/transit-demo/store"
	"github.com/theoremus-urban-solutions/transit-demo/ticket"
)

type ticketRequest struct {
	RouteID       string `json:"routeId"`
	PassengerType string `json:"passengerType"`
	Quantity      int    `json:"quantity"`
	Date          string `json:"date"`
}

// handleIssueTicket serves POST /api/tickets: prices the requested route
// for the passenger type and returns a display ticket with a QR code.
// Nothing is stored.
func (api *API) handleIssueTicket(w http.ResponseWriter, r *http.Request) {
	var req ticketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.RouteID == "" {
		writeError(w, http.StatusBadRequest, "routeId is required", nil)
		return
	}
	if req.Quantity < 1 || req.Quantity > maxTicketCount {
		writeError(w, http.StatusBadRequest, "quantity must be between 1 and 10", map[string]any{"quantity": req.Quantity})
		return
	}
	if req.PassengerType == "" {
		req.PassengerType = store.PassengerAdult
	}
	route := api.store.FindRouteByID(req.RouteID)
	if route == nil {
		writeError(w, http.StatusNotFound, "route not found", map[string]any{"routeId": req.RouteID})
		return
	}
	t, err := ticket.Issue(route, req.PassengerType, req.Quantity, req.Date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue ticket", map[string]any{"internal": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, t)
}
