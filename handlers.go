package transitdemo

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transit-demo/auth"
	"github.com/theoremus-urban-solutions/transit-demo/store"
)

// Placeholder text substituted when a schedule references a missing
// route or vehicle. Dangling references are expected data, not errors.
const (
	unknownRoute   = "Unknown Route"
	notAvailable   = "N/A"
	bearerPrefix   = "Bearer "
	maxTicketCount = 10
)

// API adapts the data store, auth, and ticket collaborators to HTTP.
// The store itself never touches presentation concerns.
type API struct {
	store *store.Store
	auth  *auth.Authenticator
}

func NewAPI(st *store.Store, a *auth.Authenticator) *API {
	return &API{store: st, auth: a}
}

type routesResponse struct {
	Routes []store.Route `json:"routes"`
	Count  int           `json:"count"`
}

// handleRoutes serves GET /api/routes with search/type/active filters.
func (api *API) handleRoutes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	active := q.Get("active")
	if active != "" && active != "active" && active != "inactive" {
		writeError(w, http.StatusBadRequest, "active must be 'active' or 'inactive'", nil)
		return
	}
	routes := api.store.FilterRoutes(q.Get("search"), q.Get("type"), active)
	writeJSON(w, http.StatusOK, routesResponse{Routes: routes, Count: len(routes)})
}

// handleRouteByID serves GET /api/routes/{id}.
func (api *API) handleRouteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	route := api.store.FindRouteByID(id)
	if route == nil {
		writeError(w, http.StatusNotFound, "route not found", map[string]any{"id": id})
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// scheduleRow is a schedule joined with display fields from its route
// and vehicle. Unresolved references carry placeholder text instead.
type scheduleRow struct {
	store.Schedule
	RouteName     string `json:"routeName"`
	VehicleNumber string `json:"vehicleNumber"`
}

type schedulesResponse struct {
	Schedules []scheduleRow `json:"schedules"`
	Count     int           `json:"count"`
}

// handleSchedules serves GET /api/schedules with search/routeId/status
// filters. Search text is matched against the joined route.
func (api *API) handleSchedules(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := q.Get("status")
	switch status {
	case "", store.ScheduleOnTime, store.ScheduleDelayed, store.ScheduleCancelled:
	default:
		writeError(w, http.StatusBadRequest, "unknown schedule status: "+status, nil)
		return
	}
	schedules := api.store.FilterSchedules(q.Get("search"), q.Get("routeId"), status)
	rows := make([]scheduleRow, 0, len(schedules))
	for _, sch := range schedules {
		row := scheduleRow{Schedule: sch, RouteName: unknownRoute, VehicleNumber: notAvailable}
		if route := api.store.FindRouteByID(sch.RouteID); route != nil {
			row.RouteName = route.Name
		}
		if v := api.store.FindVehicleByID(sch.VehicleID); v != nil {
			row.VehicleNumber = v.Number
		}
		rows = append(rows, row)
	}
	writeJSON(w, http.StatusOK, schedulesResponse{Schedules: rows, Count: len(rows)})
}

type vehiclesResponse struct {
	Vehicles []store.Vehicle `json:"vehicles"`
	Count    int             `json:"count"`
}

func (api *API) handleVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles := api.store.Vehicles()
	writeJSON(w, http.StatusOK, vehiclesResponse{Vehicles: vehicles, Count: len(vehicles)})
}

func (api *API) handleVehicleByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	v := api.store.FindVehicleByID(id)
	if v == nil {
		writeError(w, http.StatusNotFound, "vehicle not found", map[string]any{"id": id})
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type logsResponse struct {
	Logs  []store.LogEntry `json:"logs"`
	Count int              `json:"count"`
}

func (api *API) handleLogs(w http.ResponseWriter, r *http.Request) {
	logs := api.store.Logs()
	writeJSON(w, http.StatusOK, logsResponse{Logs: logs, Count: len(logs)})
}

func (api *API) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.store.Analytics())
}

// handleAdminStats serves GET /api/admin/stats. Admin session required.
func (api *API) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	session, ok := api.sessionFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required", nil)
		return
	}
	if session.Role != auth.RoleAdmin {
		writeError(w, http.StatusForbidden, "admin role required", nil)
		return
	}
	writeJSON(w, http.StatusOK, api.store.AdminStats())
}

type viewResponse struct {
	View string `json:"view"`
	Path string `json:"path"`
}

// handleView serves GET /api/views/{name}: resolves a page path to its
// view identifier through the lookup table.
func (api *API) handleView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	v, ok := ResolveView(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown view", map[string]any{"path": name})
		return
	}
	writeJSON(w, http.StatusOK, viewResponse{View: v.String(), Path: name})
}
