package store

import (
	"strings"
	"testing"
)

func newTestStore() *Store {
	routes := []Route{
		{ID: "1", Name: "Downtown Express", StartPoint: "Central Station", EndPoint: "Harbor Terminal", Price: 2.5, IsActive: true, Type: "bus"},
		{ID: "2", Name: "Airport Link", StartPoint: "Central Station", EndPoint: "Airport", Price: 4.0, IsActive: true, Type: "train"},
		{ID: "3", Name: "Riverside Loop", StartPoint: "Old Bridge", EndPoint: "Old Bridge", Price: 2.0, IsActive: false, Type: "tram"},
	}
	vehicles := []Vehicle{
		{ID: "v1", Number: "BUS-4501", Status: VehicleActive},
		{ID: "v2", Number: "TRN-1200", Status: VehicleActive},
		{ID: "v3", Number: "TRM-0815", Status: VehicleMaintenance},
	}
	schedules := []Schedule{
		{ID: "s1", RouteID: "1", VehicleID: "v1", Status: ScheduleOnTime},
		{ID: "s2", RouteID: "2", VehicleID: "v2", Status: ScheduleDelayed, DelayMinutes: 12},
		{ID: "s3", RouteID: "99", VehicleID: "v9", Status: ScheduleCancelled},
	}
	logs := []LogEntry{
		{ID: "l1", Severity: SeverityMedium},
		{ID: "l2", Severity: SeverityHigh},
		{ID: "l3", Severity: SeverityLow},
	}
	return New(routes, vehicles, schedules, logs, Analytics{})
}

func TestFilterRoutes_SelfMatch(t *testing.T) {
	s := newTestStore()
	// Every route must match a search for its own name, regardless of case.
	for _, r := range s.Routes() {
		got := s.FilterRoutes(strings.ToUpper(r.Name), "", "")
		found := false
		for _, g := range got {
			if g.ID == r.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("FilterRoutes(%q) should include route %s", r.Name, r.ID)
		}
	}
}

func TestFilterRoutes_CombinedFilters(t *testing.T) {
	s := newTestStore()

	tests := []struct {
		name      string
		search    string
		routeType string
		active    string
		wantIDs   []string
	}{
		{name: "search with type and active", search: "downtown", routeType: "bus", active: "active", wantIDs: []string{"1"}},
		{name: "search with wrong type", search: "downtown", routeType: "train", wantIDs: []string{}},
		{name: "empty search matches all", wantIDs: []string{"1", "2", "3"}},
		{name: "start point match", search: "central", wantIDs: []string{"1", "2"}},
		{name: "inactive only", active: "inactive", wantIDs: []string{"3"}},
		{name: "no match", search: "nonexistent", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.FilterRoutes(tt.search, tt.routeType, tt.active)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d routes, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterRoutes_PreservesOrder(t *testing.T) {
	s := newTestStore()
	got := s.FilterRoutes("", "", "")
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Errorf("source order not preserved: %s before %s", got[i-1].ID, got[i].ID)
		}
	}
}

func TestFilterSchedules_JoinedSearch(t *testing.T) {
	s := newTestStore()

	// Schedules with a resolvable route match through the route's fields.
	got := s.FilterSchedules("express", "", "")
	if len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("search 'express' = %v, want [s1]", scheduleIDs(got))
	}

	// A schedule whose routeId does not resolve never matches a
	// non-empty search term...
	got = s.FilterSchedules("anything", "", "")
	for _, sch := range got {
		if sch.ID == "s3" {
			t.Error("dangling schedule s3 matched a non-empty search")
		}
	}

	// ...but an empty search matches unconditionally.
	got = s.FilterSchedules("", "", "")
	if len(got) != 3 {
		t.Fatalf("empty search returned %d schedules, want 3", len(got))
	}
}

func TestFilterSchedules_ExactFilters(t *testing.T) {
	s := newTestStore()

	tests := []struct {
		name    string
		routeID string
		status  string
		wantIDs []string
	}{
		{name: "by route id", routeID: "2", wantIDs: []string{"s2"}},
		{name: "by status", status: ScheduleDelayed, wantIDs: []string{"s2"}},
		{name: "status of dangling schedule", status: ScheduleCancelled, wantIDs: []string{"s3"}},
		{name: "route and status mismatch", routeID: "1", status: ScheduleDelayed, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.FilterSchedules("", tt.routeID, tt.status)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", scheduleIDs(got), tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFindRouteByID(t *testing.T) {
	s := newTestStore()
	if r := s.FindRouteByID("2"); r == nil || r.Name != "Airport Link" {
		t.Errorf("FindRouteByID(2) = %v, want Airport Link", r)
	}
	if r := s.FindRouteByID("missing"); r != nil {
		t.Errorf("FindRouteByID(missing) = %v, want nil", r)
	}
}

func TestFindVehicleByID(t *testing.T) {
	s := newTestStore()
	if v := s.FindVehicleByID("v3"); v == nil || v.Number != "TRM-0815" {
		t.Errorf("FindVehicleByID(v3) = %v, want TRM-0815", v)
	}
	if v := s.FindVehicleByID(""); v != nil {
		t.Errorf("FindVehicleByID(\"\") = %v, want nil", v)
	}
}

func TestAdminStats(t *testing.T) {
	s := newTestStore()
	got := s.AdminStats()
	want := Stats{
		TotalVehicles:    3,
		ActiveVehicles:   2,
		TotalRoutes:      3,
		ActiveRoutes:     2,
		TotalLogs:        3,
		HighSeverityLogs: 1,
	}
	if got != want {
		t.Errorf("AdminStats() = %+v, want %+v", got, want)
	}

	// Recomputation over an unchanged store is idempotent.
	if again := s.AdminStats(); again != got {
		t.Errorf("second AdminStats() = %+v, differs from first %+v", again, got)
	}
}

func scheduleIDs(schedules []Schedule) []string {
	ids := make([]string, len(schedules))
	for i, s := range schedules {
		ids[i] = s.ID
	}
	return ids
}
