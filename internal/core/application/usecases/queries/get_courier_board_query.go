package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierBoardQueryIsNotConstructed = errors.New(
	"GetCourierBoardQuery must be created via NewGetCourierBoardQuery constructor",
)

// GetCourierBoardQuery retrieves one courier's open workload: every
// non-terminal order currently bound to them. The bot renders this as the
// courier's job list.
type GetCourierBoardQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierBoardQuery creates a query for a courier's job list.
func NewGetCourierBoardQuery(courierID kernel.UUID) (GetCourierBoardQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierBoardQuery{}, err
	}

	return GetCourierBoardQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierBoardQueryIsNotConstructed)
}

// CourierID returns the courier whose board is requested.
func (q GetCourierBoardQuery) CourierID() kernel.UUID { return q.courierID }

// GetCourierBoardQueryResponse is one open job on a courier's board.
type GetCourierBoardQueryResponse struct {
	ID             kernel.UUID
	Status         string
	SenderName     string
	SenderAddress  string
	Total          int
	CODAmount      int
	TalanganAmount int
	CreatedAt      time.Time
}
