/*
Package store holds the five transit collections in memory and answers
read-only derived queries over them.

The collections (routes, vehicles, schedules, logs, analytics) are
bulk-loaded once by LoadAll from five independent JSON sources and never
mutated afterwards, so the store is safe for concurrent readers without
locking. Parse the sources once at startup and keep the store for the
process lifetime; every query is a cheap in-memory scan.

A schedule may reference a route or vehicle id that does not exist in
its collection. That is legal data, not an error: lookups return nil and
callers substitute placeholder text at render time. Only LoadAll can
fail, and it fails as a whole - there is no partially loaded store.
*/
package store
