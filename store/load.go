package store

import (
	"context"
)

// Sources names the five collection documents.
type Sources struct {
	Routes    string
	Vehicles  string
	Schedules string
	Logs      string
	Analytics string
}

// LoadError wraps the first fetch or parse failure encountered by LoadAll.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string { return "load " + e.Source + ": " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// LoadAll fetches all five collections concurrently and returns a fully
// populated store. The fetches are independent and unordered; the result
// is built only after every one has completed. If any fetch fails the
// whole load fails with a LoadError and no store is returned - there is
// no partial-success state and no retry.
func LoadAll(ctx context.Context, client *Client, src Sources) (*Store, error) {
	var (
		routes    []Route
		vehicles  []Vehicle
		schedules []Schedule
		logs      []LogEntry
		analytics Analytics
	)
	parts := []struct {
		name   string
		source string
		dest   any
	}{
		{"routes", src.Routes, &routes},
		{"vehicles", src.Vehicles, &vehicles},
		{"schedules", src.Schedules, &schedules},
		{"logs", src.Logs, &logs},
		{"analytics", src.Analytics, &analytics},
	}

	errs := make(chan error, len(parts))
	for _, p := range parts {
		go func(name, source string, dest any) {
			if err := client.FetchJSON(ctx, source, dest); err != nil {
				errs <- &LoadError{Source: name, Err: err}
				return
			}
			errs <- nil
		}(p.name, p.source, p.dest)
	}

	var firstErr error
	for range parts {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return &Store{
		routes:    routes,
		vehicles:  vehicles,
		schedules: schedules,
		logs:      logs,
		analytics: analytics,
	}, nil
}
