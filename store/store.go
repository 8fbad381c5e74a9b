package store

import (
	"strings"
)

// Store holds the five loaded collections. Written once by LoadAll, read
// many times; no locking is required.
type Store struct {
	routes    []Route
	vehicles  []Vehicle
	schedules []Schedule
	logs      []LogEntry
	analytics Analytics
}

// New builds a store directly from in-memory collections. Used by tests
// and by callers that source data outside the fetch client.
func New(routes []Route, vehicles []Vehicle, schedules []Schedule, logs []LogEntry, analytics Analytics) *Store {
	return &Store{
		routes:    routes,
		vehicles:  vehicles,
		schedules: schedules,
		logs:      logs,
		analytics: analytics,
	}
}

// Accessor methods

func (s *Store) Routes() []Route { return s.routes }

func (s *Store) Vehicles() []Vehicle { return s.vehicles }

func (s *Store) Schedules() []Schedule { return s.schedules }

func (s *Store) Logs() []LogEntry { return s.logs }

func (s *Store) Analytics() Analytics { return s.analytics }

// FindRouteByID returns the first route with the given id, or nil.
func (s *Store) FindRouteByID(id string) *Route {
	for i := range s.routes {
		if s.routes[i].ID == id {
			return &s.routes[i]
		}
	}
	return nil
}

// FindVehicleByID returns the first vehicle with the given id, or nil.
func (s *Store) FindVehicleByID(id string) *Vehicle {
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			return &s.vehicles[i]
		}
	}
	return nil
}

// FilterRoutes returns routes whose name, start point, or end point
// contains search (case-insensitive), optionally narrowed by exact type
// and by active state ("active"/"inactive"). An empty search matches
// every route. Source order is preserved.
func (s *Store) FilterRoutes(search, routeType, active string) []Route {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]Route, 0, len(s.routes))
	for _, r := range s.routes {
		if needle != "" && !routeMatches(&r, needle) {
			continue
		}
		if routeType != "" && r.Type != routeType {
			continue
		}
		if active == "active" && !r.IsActive {
			continue
		}
		if active == "inactive" && r.IsActive {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterSchedules returns schedules matched through their joined route:
// search is applied to the route's name, start point, and end point, so a
// schedule whose routeId does not resolve never matches a non-empty
// search term (an empty term matches unconditionally). routeID and
// status are exact-match. Source order is preserved.
func (s *Store) FilterSchedules(search, routeID, status string) []Schedule {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]Schedule, 0, len(s.schedules))
	for _, sch := range s.schedules {
		if needle != "" {
			r := s.FindRouteByID(sch.RouteID)
			if r == nil || !routeMatches(r, needle) {
				continue
			}
		}
		if routeID != "" && sch.RouteID != routeID {
			continue
		}
		if status != "" && sch.Status != status {
			continue
		}
		out = append(out, sch)
	}
	return out
}

// AdminStats counts predicate matches over the held collections. It is
// recomputed on each call; the store never changes after load, so repeat
// calls return identical values.
func (s *Store) AdminStats() Stats {
	st := Stats{
		TotalVehicles: len(s.vehicles),
		TotalRoutes:   len(s.routes),
		TotalLogs:     len(s.logs),
	}
	for _, v := range s.vehicles {
		if v.Status == VehicleActive {
			st.ActiveVehicles++
		}
	}
	for _, r := range s.routes {
		if r.IsActive {
			st.ActiveRoutes++
		}
	}
	for _, l := range s.logs {
		if l.Severity == SeverityHigh {
			st.HighSeverityLogs++
		}
	}
	return st
}

func routeMatches(r *Route, needle string) bool {
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.StartPoint), needle) ||
		strings.Contains(strings.ToLower(r.EndPoint), needle)
}
