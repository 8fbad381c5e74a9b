// Package helpers provides shared fixtures for the integration tests.
package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/theoremus-urban-solutions/transit-demo/store"
)

// SampleRoutes returns a small route collection covering active and
// inactive routes of different types.
func SampleRoutes() []store.Route {
	return []store.Route{
		{
			ID: "1", Name: "Downtown Express", Number: "101",
			StartPoint: "Central Station", EndPoint: "Harbor Terminal",
			Stops:    []string{"Central Station", "City Hall", "Market Square", "Harbor Terminal"},
			Duration: 35, Frequency: 10, Price: 2.5, IsActive: true, Type: "bus",
		},
		{
			ID: "2", Name: "Airport Link", Number: "202",
			StartPoint: "Central Station", EndPoint: "Airport",
			Stops:    []string{"Central Station", "Exhibition Grounds", "Airport"},
			Duration: 25, Frequency: 15, Price: 4.0, IsActive: true, Type: "train",
		},
		{
			ID: "3", Name: "Riverside Loop", Number: "303",
			StartPoint: "Old Bridge", EndPoint: "Old Bridge",
			Stops:    []string{"Old Bridge", "Riverside Park", "University", "Old Bridge"},
			Duration: 40, Frequency: 20, Price: 2.0, IsActive: false, Type: "tram",
		},
	}
}

func SampleVehicles() []store.Vehicle {
	return []store.Vehicle{
		{ID: "v1", Number: "BUS-4501", Type: "bus", Capacity: 60, Driver: "Maria Petrova", Status: store.VehicleActive},
		{ID: "v2", Number: "TRN-1200", Type: "train", Capacity: 240, Driver: "Ivan Dimitrov", Status: store.VehicleActive},
		{ID: "v3", Number: "TRM-0815", Type: "tram", Capacity: 90, Driver: "Elena Georgieva", Status: store.VehicleMaintenance},
	}
}

// SampleSchedules includes one schedule ("s3") whose route and vehicle
// ids resolve to nothing.
func SampleSchedules() []store.Schedule {
	return []store.Schedule{
		{ID: "s1", RouteID: "1", VehicleID: "v1", DriverID: "d1", DepartureTime: "08:00", ArrivalTime: "08:35", Status: store.ScheduleOnTime, Date: "2025-11-03"},
		{ID: "s2", RouteID: "2", VehicleID: "v2", DriverID: "d2", DepartureTime: "08:15", ArrivalTime: "08:40", Status: store.ScheduleDelayed, DelayMinutes: 12, Date: "2025-11-03"},
		{ID: "s3", RouteID: "99", VehicleID: "v9", DriverID: "d3", DepartureTime: "09:00", ArrivalTime: "09:40", Status: store.ScheduleCancelled, Date: "2025-11-03"},
	}
}

func SampleLogs() []store.LogEntry {
	return []store.LogEntry{
		{ID: "l1", Type: "delay", Severity: store.SeverityMedium, Description: "Airport Link delayed 12 minutes", Timestamp: "2025-11-03T08:17:00Z"},
		{ID: "l2", Type: "breakdown", Severity: store.SeverityHigh, Description: "Tram withdrawn for brake inspection", Timestamp: "2025-11-03T07:02:00Z"},
		{ID: "l3", Type: "maintenance", Severity: store.SeverityLow, Description: "Terminal cleaning completed", Timestamp: "2025-11-02T22:40:00Z"},
	}
}

func SampleAnalytics() store.Analytics {
	return store.Analytics{
		DailyDelays: []store.SeriesPoint{{Date: "2025-11-02", Value: 5}, {Date: "2025-11-03", Value: 6}},
		TicketsSold: []store.SeriesPoint{{Date: "2025-11-02", Value: 198}, {Date: "2025-11-03", Value: 430}},
		Revenue:     []store.SeriesPoint{{Date: "2025-11-02", Value: 515.5}, {Date: "2025-11-03", Value: 1185.0}},
	}
}

// NewStore builds a store directly from the sample collections.
func NewStore() *store.Store {
	return store.New(SampleRoutes(), SampleVehicles(), SampleSchedules(), SampleLogs(), SampleAnalytics())
}

// ServeSources starts an httptest server exposing the five sample
// collections as JSON documents and returns matching Sources. The
// server is closed with the test.
func ServeSources(t *testing.T) store.Sources {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(path string, v any) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(v); err != nil {
				t.Errorf("encode %s: %v", path, err)
			}
		})
	}
	serve("/routes.json", SampleRoutes())
	serve("/vehicles.json", SampleVehicles())
	serve("/schedules.json", SampleSchedules())
	serve("/logs.json", SampleLogs())
	serve("/analytics.json", SampleAnalytics())

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return store.Sources{
		Routes:    srv.URL + "/routes.json",
		Vehicles:  srv.URL + "/vehicles.json",
		Schedules: srv.URL + "/schedules.json",
		Logs:      srv.URL + "/logs.json",
		Analytics: srv.URL + "/analytics.json",
	}
}
