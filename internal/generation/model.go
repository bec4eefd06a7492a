// Package generation records how suggestion generation runs were used.
package generation

import "time"

// Session is one run of the suggestion generator for an owner.
type Session struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Proposed  int       `db:"proposed"`
	Accepted  int       `db:"accepted"`
	CreatedAt time.Time `db:"created_at"`
}

// Totals sums an owner's sessions.
type Totals struct {
	Sessions int64 `db:"sessions"`
	Proposed int64 `db:"proposed"`
	Accepted int64 `db:"accepted"`
}
