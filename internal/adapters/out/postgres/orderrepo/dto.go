// Package orderrepo persists order aggregates. Scalar fields map to columns
// for querying; the proof-of-delivery photos and the audit trail travel as
// jsonb documents because nothing queries inside them relationally.
package orderrepo

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. The version column
// carries the optimistic-concurrency token the Update path compares on.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Version   int        `gorm:"not null"`
	Status    string     `gorm:"type:varchar(32);not null;index"`
	CourierID *uuid.UUID `gorm:"type:uuid;index"`

	SenderName    string
	SenderPhone   string
	SenderAddress string

	PickupLat  float64
	PickupLon  float64
	DropoffLat float64
	DropoffLon float64

	PickupFee   int
	DeliveryFee int
	ExpressFee  int
	Subtotal    int
	Total       int

	CodAmount          int `gorm:"column:cod_amount"`
	CodCollected       bool
	CodSettled         bool
	TalanganAmount     int
	TalanganReimbursed bool

	PodPhotos []byte `gorm:"type:jsonb"`
	Audit     []byte `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// podPhotoJSON is the jsonb shape of one proof-of-delivery photo.
type podPhotoJSON struct {
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploadedBy"`
	At         time.Time `json:"at"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	photos := make([]podPhotoJSON, 0, len(aggregate.PODPhotos()))
	for _, p := range aggregate.PODPhotos() {
		photos = append(photos, podPhotoJSON{URL: p.URL(), UploadedBy: p.UploadedBy(), At: p.At()})
	}

	rawPhotos, err := json.Marshal(photos)
	if err != nil {
		return OrderDTO{}, err
	}

	rawAudit, err := json.Marshal(aggregate.Audit())
	if err != nil {
		return OrderDTO{}, err
	}

	pricing := aggregate.Pricing()

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		Version:   aggregate.Version(),
		Status:    aggregate.Status().String(),
		CourierID: courierID,

		SenderName:    aggregate.Sender().Name(),
		SenderPhone:   aggregate.Sender().Phone(),
		SenderAddress: aggregate.Sender().Address(),

		PickupLat:  aggregate.Pickup().Lat(),
		PickupLon:  aggregate.Pickup().Lon(),
		DropoffLat: aggregate.Dropoff().Lat(),
		DropoffLon: aggregate.Dropoff().Lon(),

		PickupFee:   pricing.PickupFee(),
		DeliveryFee: pricing.DeliveryFee(),
		ExpressFee:  pricing.ExpressFee(),
		Subtotal:    pricing.Subtotal(),
		Total:       pricing.Total(),

		CodAmount:          aggregate.CODAmount(),
		CodCollected:       aggregate.CODCollected(),
		CodSettled:         aggregate.CODSettled(),
		TalanganAmount:     aggregate.TalanganAmount(),
		TalanganReimbursed: aggregate.TalanganReimbursed(),

		PodPhotos: rawPhotos,
		Audit:     rawAudit,
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	sender, err := order.NewSender(dto.SenderName, dto.SenderPhone, dto.SenderAddress)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewPoint(dto.PickupLat, dto.PickupLon)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewPoint(dto.DropoffLat, dto.DropoffLon)
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(dto.PickupFee, dto.DeliveryFee, dto.ExpressFee, dto.Subtotal, dto.Total)
	if err != nil {
		return nil, err
	}

	var rawPhotos []podPhotoJSON
	if len(dto.PodPhotos) > 0 {
		if err = json.Unmarshal(dto.PodPhotos, &rawPhotos); err != nil {
			return nil, err
		}
	}

	photos := make([]order.PODPhoto, 0, len(rawPhotos))
	for _, p := range rawPhotos {
		photo, photoErr := order.NewPODPhoto(p.URL, p.UploadedBy, p.At)
		if photoErr != nil {
			return nil, photoErr
		}
		photos = append(photos, photo)
	}

	var audit []order.AuditEvent
	if len(dto.Audit) > 0 {
		if err = json.Unmarshal(dto.Audit, &audit); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id, dto.Version, status, courierID, sender, pickup, dropoff, pricing,
		dto.CodAmount, dto.CodCollected, dto.CodSettled,
		dto.TalanganAmount, dto.TalanganReimbursed,
		photos, audit,
	)
}
