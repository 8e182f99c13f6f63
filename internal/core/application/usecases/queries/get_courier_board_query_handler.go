package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierBoardQueryHandler reads a courier's open jobs from the orders table.
type GetCourierBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierBoardQueryHandler creates a handler for courier job lists.
func NewGetCourierBoardQueryHandler(db *gorm.DB) GetCourierBoardQueryHandler {
	return GetCourierBoardQueryHandler{db: db}
}

// Handle returns the courier's non-terminal orders, oldest first.
func (h GetCourierBoardQueryHandler) Handle(
	ctx context.Context,
	query GetCourierBoardQuery,
) ([]GetCourierBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetCourierBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			sender_name,
			sender_address,
			total,
			cod_amount,
			talangan_amount,
			created_at
		FROM orders
		WHERE courier_id = ?
		  AND status NOT IN ('DELIVERED', 'CANCELLED')
		ORDER BY created_at, id
	`, query.CourierID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCourierBoardQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Status,
			&resp.SenderName,
			&resp.SenderAddress,
			&resp.Total,
			&resp.CODAmount,
			&resp.TalanganAmount,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
