package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ReportIssueCommandHandler appends an issue report to an order's audit trail.
type ReportIssueCommandHandler struct {
	mutator orderMutator
}

// NewReportIssueCommandHandler creates a handler for issue reporting.
func NewReportIssueCommandHandler(uowFactory OrderUoWFactory, notifier ports.OrderChangeNotifier) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		mutator: newOrderMutator(uowFactory, notifier),
	}
}

// Handle processes the issue report.
func (h ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.Mutate(ctx, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.ReportIssue(cmd.CourierID(), cmd.IssueType(), cmd.Description())
	})
}
