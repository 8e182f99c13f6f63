package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand records a delivery problem (address wrong, recipient
// absent, vehicle breakdown) on the order's audit trail without moving the
// status. The admin follows up out of band.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierID   kernel.UUID
	issueType   string
	description string

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a command reporting a delivery problem.
func NewReportIssueCommand(orderID, courierID kernel.UUID, issueType, description string) (ReportIssueCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return ReportIssueCommand{}, err
	}
	if issueType == "" {
		return ReportIssueCommand{}, errs.NewValueIsRequiredError("issueType")
	}

	return ReportIssueCommand{
		orderID:     orderID,
		courierID:   courierID,
		issueType:   issueType,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c ReportIssueCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the reporting courier.
func (c ReportIssueCommand) CourierID() kernel.UUID { return c.courierID }

// IssueType returns the issue category.
func (c ReportIssueCommand) IssueType() string { return c.issueType }

// Description returns the free-text detail, possibly empty.
func (c ReportIssueCommand) Description() string { return c.description }
