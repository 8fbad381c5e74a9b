// Package auth implements the demo login collaborator: a fixed table of
// credential/role pairs checked in memory, with session tokens that live
// for the process lifetime. It performs no hashing and holds no real
// accounts; the data store is not involved in authentication.
package auth
