package order

import (
	"time"

	"dispatch/internal/pkg/errs"
)

// Sender holds the customer contact details for an order. Immutable after
// creation; explicit edit operations live outside the dispatch core.
type Sender struct {
	name    string
	phone   string
	address string
}

// NewSender creates a Sender. Name is mandatory; phone and address may be
// empty for walk-in intake.
func NewSender(name, phone, address string) (Sender, error) {
	if name == "" {
		return Sender{}, errs.NewValueIsRequiredError("sender name")
	}
	return Sender{name: name, phone: phone, address: address}, nil
}

// Name returns the sender's name.
func (s Sender) Name() string { return s.name }

// Phone returns the sender's contact number.
func (s Sender) Phone() string { return s.phone }

// Address returns the sender's street address.
func (s Sender) Address() string { return s.address }

// PODPhoto is one proof-of-delivery photo record. The sequence on an order is
// append-only and ordered by upload time.
type PODPhoto struct {
	url        string
	uploadedBy string
	at         time.Time
}

// NewPODPhoto creates a photo record pointing at an already-stored image.
func NewPODPhoto(url, uploadedBy string, at time.Time) (PODPhoto, error) {
	if url == "" {
		return PODPhoto{}, errs.NewValueIsRequiredError("photo url")
	}
	return PODPhoto{url: url, uploadedBy: uploadedBy, at: at.UTC()}, nil
}

// URL returns the stored image reference.
func (p PODPhoto) URL() string { return p.url }

// UploadedBy returns the identifier of the uploading courier.
func (p PODPhoto) UploadedBy() string { return p.uploadedBy }

// At returns the upload timestamp (UTC).
func (p PODPhoto) At() time.Time { return p.at }
