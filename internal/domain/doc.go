// Package domain contains the core entities of the forum: users, topics,
// and replies, together with their validation rules and the ownership
// predicates used by the API layer. Entities carry no persistence or
// transport concerns.
package domain
