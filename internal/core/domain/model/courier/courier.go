package courier

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// PairingCodeTTL is how long a generated pairing code stays valid.
const PairingCodeTTL = 5 * time.Minute

// pairingCodeLength is the number of characters in a pairing code.
const pairingCodeLength = 6

// pairingCodeAlphabet avoids ambiguous characters (0/O, 1/I/L).
const pairingCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

var (
	// ErrCourierIsNotConstructed is returned when a Courier was not created
	// through NewCourier or RestoreCourier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")

	// ErrCourierInactive is returned when an operation requires an active
	// courier (assignment) but the courier is deactivated.
	ErrCourierInactive = errors.New("courier is deactivated")

	// ErrPairingCodeInvalid is returned when the presented pairing code does
	// not match the outstanding one, or none is outstanding.
	ErrPairingCodeInvalid = errors.New("pairing code is invalid")

	// ErrPairingCodeExpired is returned when the pairing code is past its TTL.
	ErrPairingCodeExpired = errors.New("pairing code has expired")
)

// Courier is the aggregate root for a delivery agent. It owns identity and
// contact details, the availability flags an admin or the courier themselves
// can toggle, and the linked Telegram chat identity used by the bot interface.
type Courier struct {
	id    kernel.UUID
	name  string
	phone string

	online bool
	active bool

	// chatID is the linked Telegram chat; zero means not linked yet.
	chatID int64

	pairingCode      string
	pairingExpiresAt time.Time

	guard guard.ConstructorGuard
}

// NewCourier registers a new courier. New couriers start active (assignable)
// but offline and unlinked.
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Courier{
		id:     id,
		name:   name,
		phone:  phone,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	name, phone string,
	online, active bool,
	chatID int64,
	pairingCode string,
	pairingExpiresAt time.Time,
) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Courier{
		id:               id,
		name:             name,
		phone:            phone,
		online:           online,
		active:           active,
		chatID:           chatID,
		pairingCode:      pairingCode,
		pairingExpiresAt: pairingExpiresAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// Phone returns the courier's contact number.
func (c *Courier) Phone() string { return c.phone }

// IsOnline reports whether the courier marked themselves available for work.
func (c *Courier) IsOnline() bool { return c.online }

// IsActive reports whether the courier may be assigned orders at all.
func (c *Courier) IsActive() bool { return c.active }

// ChatID returns the linked Telegram chat, or zero when unlinked.
func (c *Courier) ChatID() int64 { return c.chatID }

// PairingCode returns the outstanding pairing code, empty when none.
func (c *Courier) PairingCode() string { return c.pairingCode }

// PairingExpiresAt returns when the outstanding pairing code lapses.
func (c *Courier) PairingExpiresAt() time.Time { return c.pairingExpiresAt }

// SetOnline toggles the courier's self-reported availability.
func (c *Courier) SetOnline(online bool) {
	c.online = online
}

// Activate re-enables assignment for the courier.
func (c *Courier) Activate() {
	c.active = true
}

// Deactivate blocks the courier from new assignments. Active orders are not
// touched; the admin reassigns those explicitly.
func (c *Courier) Deactivate() {
	c.active = false
}

// GeneratePairingCode issues a new one-time code valid for PairingCodeTTL.
// Any previously outstanding code is replaced.
func (c *Courier) GeneratePairingCode(now time.Time) (string, error) {
	buf := make([]byte, pairingCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating pairing code: %w", err)
	}
	for i, b := range buf {
		buf[i] = pairingCodeAlphabet[int(b)%len(pairingCodeAlphabet)]
	}

	c.pairingCode = string(buf)
	c.pairingExpiresAt = now.Add(PairingCodeTTL).UTC()

	return c.pairingCode, nil
}

// LinkChat consumes a pairing code and binds the Telegram chat to the courier.
// The code is single use: it is cleared on success and on expiry.
func (c *Courier) LinkChat(code string, chatID int64, now time.Time) error {
	if code == "" || c.pairingCode == "" || code != c.pairingCode {
		return ErrPairingCodeInvalid
	}
	if now.After(c.pairingExpiresAt) {
		c.clearPairingCode()
		return ErrPairingCodeExpired
	}
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatId")
	}

	c.chatID = chatID
	c.clearPairingCode()

	return nil
}

// ExpirePairingCode clears an outstanding code once it is past its TTL.
// Returns true when something was cleared; used by the cleanup job.
func (c *Courier) ExpirePairingCode(now time.Time) bool {
	if c.pairingCode == "" || !now.After(c.pairingExpiresAt) {
		return false
	}
	c.clearPairingCode()
	return true
}

func (c *Courier) clearPairingCode() {
	c.pairingCode = ""
	c.pairingExpiresAt = time.Time{}
}
