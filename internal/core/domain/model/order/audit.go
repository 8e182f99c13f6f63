package order

import (
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// Audit event kinds. Status transitions use StatusEventKind instead of a fixed
// constant so the event name always carries the canonical status spelling.
const (
	EventOrderCreated       = "ORDER_CREATED"
	EventOrderAssigned      = "ORDER_ASSIGNED"
	EventOrderAccepted      = "ORDER_ACCEPTED"
	EventOrderRejected      = "ORDER_REJECTED"
	EventOrderCancelled     = "ORDER_CANCELLED"
	EventPODUploaded        = "POD_UPLOADED"
	EventIssueReported      = "ISSUE_REPORTED"
	EventCODCollected       = "COD_COLLECTED"
	EventCODSettled         = "COD_SETTLED"
	EventTalanganReimbursed = "TALANGAN_REIMBURSED"
)

// StatusEventKind builds the audit event kind for a status transition,
// e.g. "STATUS_DELIVERED".
func StatusEventKind(s Status) string {
	return "STATUS_" + s.String()
}

// ActorType identifies who performed a mutation on an order.
type ActorType int

const (
	// ActorUnknown represents an invalid actor type.
	ActorUnknown ActorType = iota
	// ActorAdmin is a dashboard administrator.
	ActorAdmin
	// ActorCourier is a delivery courier acting through the bot or dashboard.
	ActorCourier
	// ActorSystem is the service itself (jobs, migrations).
	ActorSystem
)

// getActorTypeStrings returns the wire spelling for every ActorType.
func getActorTypeStrings() map[ActorType]string {
	return map[ActorType]string{
		ActorAdmin:   "ADMIN",
		ActorCourier: "COURIER",
		ActorSystem:  "SYSTEM",
	}
}

// ActorTypeFromString parses the wire spelling of an actor type.
func ActorTypeFromString(s string) (ActorType, error) {
	for at, name := range getActorTypeStrings() {
		if name == s {
			return at, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause("actorType",
		fmt.Errorf("%q is not a known actor type", s))
}

// String returns the wire spelling of the actor type.
func (at ActorType) String() string {
	if s, ok := getActorTypeStrings()[at]; ok {
		return s
	}
	return "UNKNOWN"
}

// Actor is the identity performing a mutation: a type plus an identifier
// (admin username, courier UUID, or job name for system actors).
type Actor struct {
	actorType ActorType
	id        string
}

// NewAdminActor creates an admin actor with the given identifier.
func NewAdminActor(id string) Actor {
	return Actor{actorType: ActorAdmin, id: id}
}

// NewCourierActor creates a courier actor with the given identifier.
func NewCourierActor(id string) Actor {
	return Actor{actorType: ActorCourier, id: id}
}

// NewSystemActor creates a system actor, typically named after the job acting.
func NewSystemActor(id string) Actor {
	return Actor{actorType: ActorSystem, id: id}
}

// Type returns the actor type.
func (a Actor) Type() ActorType {
	return a.actorType
}

// ID returns the actor identifier.
func (a Actor) ID() string {
	return a.id
}

// IsAdmin reports whether the actor is an administrator.
func (a Actor) IsAdmin() bool {
	return a.actorType == ActorAdmin
}

// AuditEvent is one immutable entry in an order's audit trail. Events are
// appended in mutation order and never reordered; when two events share a
// timestamp, their position in the trail is the tiebreak.
type AuditEvent struct {
	kind      string
	at        time.Time
	actorType ActorType
	actorID   string
	meta      map[string]string
}

// NewAuditEvent creates an audit event. The metadata map is copied so later
// changes by the caller cannot reach into the trail.
func NewAuditEvent(kind string, at time.Time, actor Actor, meta map[string]string) AuditEvent {
	copied := make(map[string]string, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return AuditEvent{
		kind:      kind,
		at:        at.UTC(),
		actorType: actor.Type(),
		actorID:   actor.ID(),
		meta:      copied,
	}
}

// Kind returns the event kind, e.g. "ORDER_REJECTED" or "STATUS_DELIVERED".
func (e AuditEvent) Kind() string { return e.kind }

// At returns the event timestamp (UTC).
func (e AuditEvent) At() time.Time { return e.at }

// ActorType returns who performed the mutation.
func (e AuditEvent) ActorType() ActorType { return e.actorType }

// ActorID returns the identifier of the performing actor.
func (e AuditEvent) ActorID() string { return e.actorID }

// Meta returns a copy of the event metadata.
func (e AuditEvent) Meta() map[string]string {
	copied := make(map[string]string, len(e.meta))
	for k, v := range e.meta {
		copied[k] = v
	}
	return copied
}

// auditEventJSON is the persisted wire shape of an audit event. External
// reporting tooling reads this format; field names must stay stable.
type auditEventJSON struct {
	Event     string            `json:"event"`
	At        string            `json:"at"`
	ActorType string            `json:"actorType"`
	ActorID   string            `json:"actorId"`
	Meta      map[string]string `json:"meta"`
}

// MarshalJSON serializes the event in the stable reporting format with an
// ISO-8601 timestamp.
func (e AuditEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(auditEventJSON{
		Event:     e.kind,
		At:        e.at.Format(time.RFC3339Nano),
		ActorType: e.actorType.String(),
		ActorID:   e.actorID,
		Meta:      e.meta,
	})
}

// UnmarshalJSON restores an event from its persisted form, rejecting unknown
// actor types and malformed timestamps.
func (e *AuditEvent) UnmarshalJSON(data []byte) error {
	var dto auditEventJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	at, err := time.Parse(time.RFC3339Nano, dto.At)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("at", err)
	}

	actorType, err := ActorTypeFromString(dto.ActorType)
	if err != nil {
		return err
	}

	meta := dto.Meta
	if meta == nil {
		meta = map[string]string{}
	}

	*e = AuditEvent{
		kind:      dto.Event,
		at:        at.UTC(),
		actorType: actorType,
		actorID:   dto.ActorID,
		meta:      meta,
	}
	return nil
}
