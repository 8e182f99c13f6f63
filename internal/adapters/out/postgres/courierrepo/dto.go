// Package courierrepo persists courier aggregates.
package courierrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the database row for a courier aggregate. An empty pairing
// code means none is outstanding.
type CourierDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"not null"`
	Phone string

	Online bool
	Active bool

	ChatID int64 `gorm:"index"`

	PairingCode      string `gorm:"index"`
	PairingExpiresAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Phone:            aggregate.Phone(),
		Online:           aggregate.IsOnline(),
		Active:           aggregate.IsActive(),
		ChatID:           aggregate.ChatID(),
		PairingCode:      aggregate.PairingCode(),
		PairingExpiresAt: aggregate.PairingExpiresAt(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id, dto.Name, dto.Phone,
		dto.Online, dto.Active,
		dto.ChatID,
		dto.PairingCode, dto.PairingExpiresAt,
	)
}
