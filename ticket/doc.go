// Package ticket synthesizes display tickets for the demo purchase flow.
//
// A ticket is priced from the route's fare table, given a fresh id, and
// rendered as a QR code for on-screen display. Tickets are returned to
// the caller only: they are never written back into any collection and
// never persisted.
package ticket
