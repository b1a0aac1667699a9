// Package mocks provides hand-rolled mock implementations of the store
// and auth interfaces for handler and middleware tests. Every mock keeps
// an in-memory default behavior and exposes function fields to override
// individual methods per test.
package mocks
