package model

import "time"

// Actor is the authenticated admin identity performing a mutating action.
// It is derived once by the auth middleware and threaded explicitly into
// service calls so handlers never read it from ambient state.
type Actor struct {
	ID   int
	Name string
}

// AuditLogEntry is an immutable record of an administrative action.
// Entries are appended alongside the mutation they describe and are never
// updated or deleted by this system.
type AuditLogEntry struct {
	ID        int64     `json:"id"`
	ActorID   int       `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
