// Package api contains the HTTP handlers, request/response models, and
// error-to-status mapping for the forum API. The wire surface (paths and
// JSON keys) is Portuguese for compatibility with existing clients;
// everything behind it is mapped to the domain types.
package api
