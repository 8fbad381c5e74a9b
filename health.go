package transitdemo

import (
	"net/http"
)

type healthResponse struct {
	Status    string `json:"status"`
	Routes    int    `json:"routes"`
	Vehicles  int    `json:"vehicles"`
	Schedules int    `json:"schedules"`
}

func (api *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Routes:    len(api.store.Routes()),
		Vehicles:  len(api.store.Vehicles()),
		Schedules: len(api.store.Schedules()),
	}
	writeJSON(w, http.StatusOK, resp)
}
