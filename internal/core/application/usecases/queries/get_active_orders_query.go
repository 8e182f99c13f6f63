// Package queries contains read-side operations of the CQRS split. Query
// handlers read the database directly with raw SQL; they never load or touch
// aggregates.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order not yet delivered or cancelled,
// for the dispatch board on the dashboard.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active-order board.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the dispatch board.
type GetActiveOrdersQueryResponse struct {
	ID         kernel.UUID
	Status     string
	CourierID  *kernel.UUID
	SenderName string
	Total      int
	CODAmount  int
	CreatedAt  time.Time
}
