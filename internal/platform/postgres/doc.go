// Package postgres contains the PostgreSQL implementations of the store
// interfaces. Uniqueness rules (login, topic title+message) are enforced
// by database indexes; this package translates the resulting constraint
// violations into the store package's sentinel errors.
package postgres
